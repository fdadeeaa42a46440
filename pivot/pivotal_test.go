package pivot

import "testing"

func eligible(icpsr int, prob float64) EligibleVote {
	return EligibleVote{
		Vote:        VoteKey{Congress: 114, Roll: 1},
		ICPSR:       icpsr,
		Cast:        CastNay,
		Probability: prob,
		Member:      senator(icpsr),
	}
}

func TestRankPivotal_SelectsBoundaryMember(t *testing.T) {
	candidates := FilterCandidates([]RollCallVote{failedCloture(114, 1, 58)}, DefaultRuleSet())
	groups := map[VoteKey][]EligibleVote{
		{Congress: 114, Roll: 1}: {eligible(10, 55), eligible(11, 62), eligible(12, 70)},
	}

	pivots := RankPivotal(candidates, groups)
	if len(pivots) != 1 {
		t.Fatalf("expected 1 pivotal vote, got %d", len(pivots))
	}
	p := pivots[0]

	// votesNeeded = 2, so the member at rank 2 (probability 62) is pivotal.
	if p.Probability != 62 {
		t.Errorf("pivotal probability = %v, want 62", p.Probability)
	}
	if len(p.Members) != 1 || p.Members[0].ICPSR != 11 {
		t.Errorf("pivotal members = %v, want single member 11", p.Members)
	}
}

func TestRankPivotal_GroupTooSmallExcluded(t *testing.T) {
	// votesNeeded = 5 but only 3 eligible nays: the vote is excluded.
	candidates := FilterCandidates([]RollCallVote{failedCloture(114, 1, 55)}, DefaultRuleSet())
	groups := map[VoteKey][]EligibleVote{
		{Congress: 114, Roll: 1}: {eligible(10, 55), eligible(11, 62), eligible(12, 70)},
	}

	pivots := RankPivotal(candidates, groups)
	if len(pivots) != 0 {
		t.Errorf("expected no pivotal votes, got %d", len(pivots))
	}
}

func TestRankPivotal_GroupExactlyVotesNeeded(t *testing.T) {
	candidates := FilterCandidates([]RollCallVote{failedCloture(114, 1, 58)}, DefaultRuleSet())
	groups := map[VoteKey][]EligibleVote{
		{Congress: 114, Roll: 1}: {eligible(10, 55), eligible(11, 62)},
	}

	pivots := RankPivotal(candidates, groups)
	if len(pivots) != 1 {
		t.Fatalf("expected 1 pivotal vote, got %d", len(pivots))
	}
	if pivots[0].Probability != 62 {
		t.Errorf("pivotal probability = %v, want 62 (hardest member of the minimal coalition)", pivots[0].Probability)
	}
}

func TestRankPivotal_BoundaryTieIncludesAll(t *testing.T) {
	// Three members share the boundary probability; all are retained.
	candidates := FilterCandidates([]RollCallVote{failedCloture(114, 1, 58)}, DefaultRuleSet())
	groups := map[VoteKey][]EligibleVote{
		{Congress: 114, Roll: 1}: {
			eligible(10, 55),
			eligible(11, 62), eligible(12, 62), eligible(13, 62),
			eligible(14, 80),
		},
	}

	pivots := RankPivotal(candidates, groups)
	if len(pivots) != 1 {
		t.Fatalf("expected 1 pivotal vote, got %d", len(pivots))
	}
	p := pivots[0]
	if p.Probability != 62 {
		t.Errorf("pivotal probability = %v, want 62", p.Probability)
	}
	if len(p.Members) != 3 {
		t.Fatalf("expected 3 tied pivotal members, got %d", len(p.Members))
	}
	for _, m := range p.Members {
		if m.Probability != 62 {
			t.Errorf("tied member %d has probability %v, want 62", m.ICPSR, m.Probability)
		}
	}
}

func TestRankPivotal_NeverEmptyGroup(t *testing.T) {
	votes := []RollCallVote{
		failedCloture(114, 1, 58),
		failedCloture(114, 2, 59),
		failedCloture(114, 3, 50),
	}
	candidates := FilterCandidates(votes, DefaultRuleSet())
	groups := map[VoteKey][]EligibleVote{
		{Congress: 114, Roll: 1}: {eligible(10, 55), eligible(11, 60)},
		{Congress: 114, Roll: 2}: {eligible(10, 55)},
		// roll 3 has no eligible nays at all
	}

	for _, p := range RankPivotal(candidates, groups) {
		if len(p.Members) < 1 {
			t.Errorf("vote %d-%d: empty pivotal group", p.Candidate.Congress, p.Candidate.Roll)
		}
		if p.Candidate.VotesNeeded > 2 {
			t.Errorf("vote %d-%d survived with undersized group", p.Candidate.Congress, p.Candidate.Roll)
		}
	}
}
