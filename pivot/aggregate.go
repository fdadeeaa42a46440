package pivot

import "sort"

// CurvePoint is one point on the flip curve: Flipped votes would have
// flipped under a rule change imposing at least Cost.
type CurvePoint struct {
	Cost    float64
	Flipped int
}

// RankCosts sorts cost records ascending by cost and assigns each its
// 1-based rank. The sort is stable, so records tied on cost keep their
// pipeline order. Returns the ranked records and the cumulative flip curve,
// which is monotonically non-decreasing in both coordinates.
func RankCosts(records []CostRecord) ([]CostRecord, []CurvePoint) {
	ranked := make([]CostRecord, len(records))
	copy(ranked, records)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Cost < ranked[j].Cost
	})

	curve := make([]CurvePoint, len(ranked))
	for i := range ranked {
		ranked[i].Rank = i + 1
		curve[i] = CurvePoint{Cost: ranked[i].Cost, Flipped: i + 1}
	}
	return ranked, curve
}

// FlippedAtCost returns how many historical votes would have flipped under a
// rule change imposing the given cost: the highest cumulative count whose
// cost does not exceed the budget. Zero for a budget below the cheapest vote.
func FlippedAtCost(curve []CurvePoint, budget float64) int {
	flipped := 0
	for _, p := range curve {
		if p.Cost > budget {
			break
		}
		flipped = p.Flipped
	}
	return flipped
}
