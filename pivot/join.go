package pivot

import "sort"

// Probability bounds for a flippable Nay. 100 is excluded: a fully certain
// vote is treated as unflippable regardless of rule changes.
const (
	minFlippableProbability = 50.0
	maxFlippableProbability = 100.0
)

// EligibleVote is one flippable Nay position on one candidate vote, joined
// to its member's ideological position.
type EligibleVote struct {
	Vote        VoteKey
	ICPSR       int
	Cast        CastCode
	Probability float64
	Member      Member
}

// JoinEligible restricts member votes to the candidate roll calls, keeps only
// Nay-family positions with probability in [50, 100), and joins each to its
// member record. Member votes referencing an unknown roll call or member are
// silently dropped (inner-join semantics over partial historical coverage).
// Each group is sorted ascending by probability, ties broken by member
// identifier so repeated runs produce identical orderings.
func JoinEligible(candidates []CandidateVote, memberVotes []MemberVote, members []Member) map[VoteKey][]EligibleVote {
	candidateKeys := make(map[VoteKey]bool, len(candidates))
	for _, c := range candidates {
		candidateKeys[c.Key()] = true
	}
	memberByKey := make(map[MemberKey]Member, len(members))
	for _, m := range members {
		memberByKey[m.Key()] = m
	}

	groups := make(map[VoteKey][]EligibleVote)
	for _, mv := range memberVotes {
		key := mv.VoteKey()
		if !candidateKeys[key] {
			continue
		}
		if !mv.Cast.IsNay() {
			continue
		}
		if mv.Probability < minFlippableProbability || mv.Probability >= maxFlippableProbability {
			continue
		}
		member, ok := memberByKey[mv.MemberKey()]
		if !ok {
			continue
		}
		groups[key] = append(groups[key], EligibleVote{
			Vote:        key,
			ICPSR:       mv.ICPSR,
			Cast:        mv.Cast,
			Probability: mv.Probability,
			Member:      member,
		})
	}

	for key := range groups {
		group := groups[key]
		sort.Slice(group, func(i, j int) bool {
			if group[i].Probability != group[j].Probability {
				return group[i].Probability < group[j].Probability
			}
			return group[i].ICPSR < group[j].ICPSR
		})
	}
	return groups
}
