package pivot

import (
	"testing"
	"time"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func scotusVote(congress, roll int, d time.Time) RollCallVote {
	return RollCallVote{
		Congress:    congress,
		Chamber:     "Senate",
		Roll:        roll,
		Date:        d,
		Bill:        "PN55",
		Description: "Neil M. Gorsuch, of Colorado, to be an Associate Justice of the Supreme Court",
	}
}

func nominationVote(congress, roll int, d time.Time) RollCallVote {
	return RollCallVote{
		Congress:    congress,
		Chamber:     "Senate",
		Roll:        roll,
		Date:        d,
		Bill:        "PN1230",
		Description: "Patricia Ann Millett, of Maryland, to be United States Circuit Judge",
	}
}

func TestThreshold_SCOTUSAfterRuleChange(t *testing.T) {
	rules := DefaultRuleSet()
	v := scotusVote(115, 200, date(2017, 4, 7))
	if got := rules.Threshold(v); got != MajorityThreshold {
		t.Errorf("SCOTUS nomination after 2017-04-06: threshold = %d, want %d", got, MajorityThreshold)
	}
}

func TestThreshold_SCOTUSBeforeRuleChange(t *testing.T) {
	rules := DefaultRuleSet()
	v := scotusVote(114, 50, date(2016, 3, 16))
	if got := rules.Threshold(v); got != ClotureThreshold {
		t.Errorf("SCOTUS nomination before 2017-04-06: threshold = %d, want %d", got, ClotureThreshold)
	}
}

func TestThreshold_SCOTUSExceptionVote(t *testing.T) {
	// The rule-change vote itself happened on the change date; it is matched
	// by exact (congress, roll), not by date comparison.
	rules := DefaultRuleSet()
	v := scotusVote(115, 110, date(2017, 4, 6))
	if got := rules.Threshold(v); got != MajorityThreshold {
		t.Errorf("congress 115 roll 110: threshold = %d, want %d", got, MajorityThreshold)
	}

	// A different same-day SCOTUS vote is still at the old threshold.
	other := scotusVote(115, 111, date(2017, 4, 6))
	if got := rules.Threshold(other); got != ClotureThreshold {
		t.Errorf("same-day non-exception vote: threshold = %d, want %d", got, ClotureThreshold)
	}
}

func TestThreshold_NominationAfterRuleChange(t *testing.T) {
	rules := DefaultRuleSet()
	v := nominationVote(113, 300, date(2013, 12, 10))
	if got := rules.Threshold(v); got != MajorityThreshold {
		t.Errorf("nomination after 2013-11-21: threshold = %d, want %d", got, MajorityThreshold)
	}
}

func TestThreshold_NominationExceptionVote(t *testing.T) {
	rules := DefaultRuleSet()
	v := nominationVote(113, 244, date(2013, 11, 21))
	if got := rules.Threshold(v); got != MajorityThreshold {
		t.Errorf("congress 113 roll 244: threshold = %d, want %d", got, MajorityThreshold)
	}
}

func TestThreshold_SCOTUSNotCoveredByNominationRule(t *testing.T) {
	// A Supreme Court nomination between the two rule changes keeps the
	// 60-vote threshold: the 2013 change covered other nominations only.
	rules := DefaultRuleSet()
	v := scotusVote(114, 60, date(2016, 3, 16))
	if got := rules.Threshold(v); got != ClotureThreshold {
		t.Errorf("SCOTUS nomination in 2016: threshold = %d, want %d", got, ClotureThreshold)
	}
}

func TestThreshold_Legislation(t *testing.T) {
	rules := DefaultRuleSet()
	v := RollCallVote{
		Congress:    115,
		Roll:        500,
		Date:        date(2018, 1, 19),
		Bill:        "H.R.195",
		Description: "A bill making appropriations",
	}
	if got := rules.Threshold(v); got != ClotureThreshold {
		t.Errorf("legislation: threshold = %d, want %d", got, ClotureThreshold)
	}
}

func TestIsSCOTUSNomination_ChiefJustice(t *testing.T) {
	v := RollCallVote{
		Bill:        "PN801",
		Description: "John G. Roberts, of Maryland, to be Chief Justice of the United States",
	}
	if !IsSCOTUSNomination(v) {
		t.Errorf("Chief Justice nomination not detected as SCOTUS")
	}
}

func TestIsNomination_BillNumbers(t *testing.T) {
	cases := []struct {
		bill string
		want bool
	}{
		{"PN39", true},
		{"PN2259-2", true},
		{" PN12 ", true},
		{"S.1234", false},
		{"H.R.195", false},
		{"PN", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := IsNomination(RollCallVote{Bill: tc.bill}); got != tc.want {
			t.Errorf("IsNomination(%q) = %v, want %v", tc.bill, got, tc.want)
		}
	}
}
