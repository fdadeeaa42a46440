package pivot

import (
	"math"
	"strings"

	"github.com/sirupsen/logrus"
)

// clotureRejected is the result label identifying a failed cloture motion.
const clotureRejected = "Cloture Motion Rejected"

// CandidateVote is a failed cloture motion under analysis: the underlying
// roll call extended with its threshold and the derived scalar features.
// Read-only once built.
type CandidateVote struct {
	RollCallVote
	Threshold      int     // required supermajority (50 or 60)
	VotesNeeded    int     // Threshold - YeaCount; always > 0 for a rejected motion
	SpreadDistance float64 // Euclidean norm of the two spread coordinates
}

// SpreadDistance returns the scalar ideological disagreement magnitude for
// the vote, the Euclidean norm of its two spread coordinates.
func SpreadDistance(v RollCallVote) float64 {
	return math.Hypot(v.Spread1, v.Spread2)
}

// FilterCandidates selects the failed cloture motions under analysis: result
// "Cloture Motion Rejected" on the motion itself, not on a motion to proceed.
// Each selected vote is annotated with its threshold, votes needed to pass,
// and spread distance. Pure; an empty result is a valid outcome.
func FilterCandidates(votes []RollCallVote, rules RuleSet) []CandidateVote {
	candidates := make([]CandidateVote, 0)
	for _, v := range votes {
		if !strings.EqualFold(strings.TrimSpace(v.Result), clotureRejected) {
			continue
		}
		if strings.Contains(v.Question, "Motion to Proceed") {
			continue
		}

		threshold := rules.Threshold(v)
		needed := threshold - v.YeaCount
		if needed <= 0 {
			// A rejected cloture motion has yeas below its threshold; a
			// non-positive gap means the result label is inconsistent.
			logrus.Warnf("skipping vote %d-%d: rejected cloture with %d yeas at threshold %d",
				v.Congress, v.Roll, v.YeaCount, threshold)
			continue
		}

		candidates = append(candidates, CandidateVote{
			RollCallVote:   v,
			Threshold:      threshold,
			VotesNeeded:    needed,
			SpreadDistance: SpreadDistance(v),
		})
	}
	return candidates
}
