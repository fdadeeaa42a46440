package pivot

import (
	"fmt"
	"math"
)

// RowError reports a malformed numeric field on one input row. The pipeline
// does not repair or impute; the affected vote is skipped, or the run aborts
// in strict mode.
type RowError struct {
	Congress int
	Roll     int
	Field    string
	Value    float64
}

func (e *RowError) Error() string {
	return fmt.Sprintf("vote %d-%d: field %s has non-numeric value %v",
		e.Congress, e.Roll, e.Field, e.Value)
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// checkVote validates the numeric fields the pipeline derives from.
func checkVote(v RollCallVote) *RowError {
	if !finite(v.Spread1) {
		return &RowError{Congress: v.Congress, Roll: v.Roll, Field: "spread_1", Value: v.Spread1}
	}
	if !finite(v.Spread2) {
		return &RowError{Congress: v.Congress, Roll: v.Roll, Field: "spread_2", Value: v.Spread2}
	}
	return nil
}

// checkMemberVote validates the probability field.
func checkMemberVote(mv MemberVote) *RowError {
	if !finite(mv.Probability) || mv.Probability < 0 || mv.Probability > 100 {
		return &RowError{Congress: mv.Congress, Roll: mv.Roll, Field: "probability", Value: mv.Probability}
	}
	return nil
}
