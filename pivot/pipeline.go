package pivot

import "github.com/sirupsen/logrus"

// Pipeline runs the full flip-cost computation. It holds no state between
// runs; Run is a pure function of its input tables.
type Pipeline struct {
	Rules  RuleSet
	Strict bool // abort on the first malformed row instead of skipping its vote
}

// NewPipeline creates a pipeline with the given rule set.
func NewPipeline(rules RuleSet, strict bool) *Pipeline {
	return &Pipeline{Rules: rules, Strict: strict}
}

// Result holds everything a run produces: the intermediate candidate table,
// the ranked cost table, the flip curve, and the distribution summary.
type Result struct {
	Candidates []CandidateVote
	Costs      []CostRecord
	Curve      []CurvePoint
	Summary    CostSummary
}

// Run executes the pipeline over the input tables. Running twice on
// identical inputs yields identical results. A malformed numeric field
// excludes that row's vote (logged at warn level) unless Strict is set, in
// which case the run aborts with the offending RowError.
func (p *Pipeline) Run(votes []RollCallVote, memberVotes []MemberVote, members []Member) (*Result, error) {
	votes, memberVotes, err := p.validate(votes, memberVotes)
	if err != nil {
		return nil, err
	}

	candidates := FilterCandidates(votes, p.Rules)
	logrus.Infof("selected %d failed cloture motions from %d roll calls", len(candidates), len(votes))

	groups := JoinEligible(candidates, memberVotes, members)
	pivots := RankPivotal(candidates, groups)
	logrus.Infof("%d votes have a full flipping coalition", len(pivots))

	ranked, curve := RankCosts(ComputeCosts(pivots))

	return &Result{
		Candidates: candidates,
		Costs:      ranked,
		Curve:      curve,
		Summary:    Summarize(ranked),
	}, nil
}

// validate screens the numeric fields the pipeline derives from. Votes with
// a malformed row anywhere in their data contribute nothing downstream.
func (p *Pipeline) validate(votes []RollCallVote, memberVotes []MemberVote) ([]RollCallVote, []MemberVote, error) {
	bad := make(map[VoteKey]bool)

	for _, v := range votes {
		if rowErr := checkVote(v); rowErr != nil {
			if p.Strict {
				return nil, nil, rowErr
			}
			logrus.Warnf("excluding vote: %v", rowErr)
			bad[v.Key()] = true
		}
	}
	for _, mv := range memberVotes {
		if rowErr := checkMemberVote(mv); rowErr != nil {
			if p.Strict {
				return nil, nil, rowErr
			}
			logrus.Warnf("excluding vote: %v", rowErr)
			bad[mv.VoteKey()] = true
		}
	}
	if len(bad) == 0 {
		return votes, memberVotes, nil
	}

	keptVotes := make([]RollCallVote, 0, len(votes))
	for _, v := range votes {
		if !bad[v.Key()] {
			keptVotes = append(keptVotes, v)
		}
	}
	keptMemberVotes := make([]MemberVote, 0, len(memberVotes))
	for _, mv := range memberVotes {
		if !bad[mv.VoteKey()] {
			keptMemberVotes = append(keptMemberVotes, mv)
		}
	}
	return keptVotes, keptMemberVotes, nil
}
