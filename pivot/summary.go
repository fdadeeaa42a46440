package pivot

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// CostSummary aggregates statistics over the cost distribution.
// Safe to build from an empty record set (all fields zero).
type CostSummary struct {
	Votes      int // number of votes with a computed cost
	MinCost    float64
	MaxCost    float64
	MeanCost   float64
	MedianCost float64
	P90Cost    float64
}

// Summarize computes aggregate statistics over the cost records.
func Summarize(records []CostRecord) CostSummary {
	if len(records) == 0 {
		return CostSummary{}
	}

	costs := make([]float64, len(records))
	for i, r := range records {
		costs[i] = r.Cost
	}
	sort.Float64s(costs)

	return CostSummary{
		Votes:      len(records),
		MinCost:    floats.Min(costs),
		MaxCost:    floats.Max(costs),
		MeanCost:   stat.Mean(costs, nil),
		MedianCost: stat.Quantile(0.5, stat.Empirical, costs, nil),
		P90Cost:    stat.Quantile(0.9, stat.Empirical, costs, nil),
	}
}

// Print displays the summary at the end of a run.
func (s CostSummary) Print() {
	fmt.Println("=== Flip-Cost Summary ===")
	fmt.Printf("Votes with computed cost : %d\n", s.Votes)
	if s.Votes > 0 {
		fmt.Printf("Min cost                 : %.4f\n", s.MinCost)
		fmt.Printf("Median cost              : %.4f\n", s.MedianCost)
		fmt.Printf("Mean cost                : %.4f\n", s.MeanCost)
		fmt.Printf("P90 cost                 : %.4f\n", s.P90Cost)
		fmt.Printf("Max cost                 : %.4f\n", s.MaxCost)
	}
}
