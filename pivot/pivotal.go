package pivot

import "github.com/sirupsen/logrus"

// PivotalVote identifies the boundary of one candidate vote's minimal
// flipping coalition: the least-certain VotesNeeded eligible Nays would have
// to flip, and the member at rank VotesNeeded is the hardest to persuade
// among them. Members sharing that boundary probability are all retained.
type PivotalVote struct {
	Candidate   CandidateVote
	Probability float64        // boundary probability, shared by all Members
	Members     []EligibleVote // everyone tied at the boundary, in group order
}

// RankPivotal selects the pivotal member(s) for each candidate vote. Groups
// with fewer than VotesNeeded eligible Nays are dropped: cloture could not be
// flipped even by converting every flippable opponent. Output order follows
// the candidates slice, keeping the pipeline deterministic.
func RankPivotal(candidates []CandidateVote, groups map[VoteKey][]EligibleVote) []PivotalVote {
	pivots := make([]PivotalVote, 0, len(candidates))
	for _, c := range candidates {
		group := groups[c.Key()]
		if len(group) < c.VotesNeeded {
			logrus.Debugf("vote %d-%d: %d eligible nays, need %d; excluded",
				c.Congress, c.Roll, len(group), c.VotesNeeded)
			continue
		}

		// group is sorted ascending by probability; rank VotesNeeded is the
		// boundary. Everyone sharing its probability is equally pivotal.
		boundary := group[c.VotesNeeded-1].Probability
		var tied []EligibleVote
		for _, ev := range group {
			if ev.Probability == boundary {
				tied = append(tied, ev)
			}
		}

		pivots = append(pivots, PivotalVote{
			Candidate:   c,
			Probability: boundary,
			Members:     tied,
		})
	}
	return pivots
}
