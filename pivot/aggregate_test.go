package pivot

import "testing"

func costRecord(roll int, cost float64) CostRecord {
	return CostRecord{Congress: 114, Roll: roll, Cost: cost}
}

func TestRankCosts_StrictlyIncreasingRanks(t *testing.T) {
	records := []CostRecord{
		costRecord(1, 0.3),
		costRecord(2, 0.1),
		costRecord(3, 0.2),
		costRecord(4, 0.1),
	}

	ranked, curve := RankCosts(records)
	for i, r := range ranked {
		if r.Rank != i+1 {
			t.Errorf("position %d: rank = %d, want %d", i, r.Rank, i+1)
		}
		if i > 0 && ranked[i].Cost < ranked[i-1].Cost {
			t.Errorf("position %d: cost %v below predecessor %v", i, ranked[i].Cost, ranked[i-1].Cost)
		}
	}
	for i, p := range curve {
		if p.Flipped != i+1 {
			t.Errorf("curve position %d: flipped = %d, want %d", i, p.Flipped, i+1)
		}
	}
}

func TestRankCosts_StableOnTies(t *testing.T) {
	records := []CostRecord{
		costRecord(5, 0.1),
		costRecord(3, 0.1),
		costRecord(8, 0.1),
	}

	ranked, _ := RankCosts(records)
	wantRolls := []int{5, 3, 8}
	for i, want := range wantRolls {
		if ranked[i].Roll != want {
			t.Errorf("position %d: roll %d, want %d (ties keep pipeline order)", i, ranked[i].Roll, want)
		}
	}
}

func TestRankCosts_DoesNotMutateInput(t *testing.T) {
	records := []CostRecord{costRecord(1, 0.3), costRecord(2, 0.1)}
	RankCosts(records)
	if records[0].Roll != 1 || records[0].Rank != 0 {
		t.Errorf("input slice mutated: %+v", records[0])
	}
}

func TestRankCosts_Empty(t *testing.T) {
	ranked, curve := RankCosts(nil)
	if len(ranked) != 0 || len(curve) != 0 {
		t.Errorf("expected empty outputs, got %d records, %d curve points", len(ranked), len(curve))
	}
}

func TestFlippedAtCost(t *testing.T) {
	_, curve := RankCosts([]CostRecord{
		costRecord(1, 0.1),
		costRecord(2, 0.25),
		costRecord(3, 0.25),
		costRecord(4, 0.6),
	})

	cases := []struct {
		budget float64
		want   int
	}{
		{0.05, 0},
		{0.1, 1},
		{0.25, 3},
		{0.5, 3},
		{1.0, 4},
	}
	for _, tc := range cases {
		if got := FlippedAtCost(curve, tc.budget); got != tc.want {
			t.Errorf("FlippedAtCost(%v) = %d, want %d", tc.budget, got, tc.want)
		}
	}
}
