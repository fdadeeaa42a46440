package pivot

// CostRecord is the flip-cost estimate for one failed cloture vote with a
// valid pivotal member. Rank is assigned by RankCosts.
type CostRecord struct {
	Congress       int
	Roll           int
	Bill           string
	Description    string
	Probability    float64 // pivotal member's probability
	Margin         float64 // Probability - 50
	SpreadDistance float64
	Cost           float64 // Margin * SpreadDistance / 100
	NPivotal       int     // size of the boundary tie group (diagnostic)
	Rank           int     // 1-based position in ascending cost order
}

// ComputeCosts converts each pivotal vote into a cost record. All members of
// a pivotal group share the boundary probability, so the cost is computed
// once per vote. Cost is non-negative: it is zero only at probability exactly
// 50 (maximal uncertainty) or zero ideological spread.
func ComputeCosts(pivots []PivotalVote) []CostRecord {
	records := make([]CostRecord, 0, len(pivots))
	for _, p := range pivots {
		margin := p.Probability - minFlippableProbability
		records = append(records, CostRecord{
			Congress:       p.Candidate.Congress,
			Roll:           p.Candidate.Roll,
			Bill:           p.Candidate.Bill,
			Description:    p.Candidate.Description,
			Probability:    p.Probability,
			Margin:         margin,
			SpreadDistance: p.Candidate.SpreadDistance,
			Cost:           margin * p.Candidate.SpreadDistance / 100,
			NPivotal:       len(p.Members),
		})
	}
	return records
}
