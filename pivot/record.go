package pivot

import "time"

// CastCode is the fixed roll-call position code (0-9).
type CastCode int

const (
	CastNotMember    CastCode = 0
	CastYea          CastCode = 1
	CastPairedYea    CastCode = 2
	CastAnnouncedYea CastCode = 3
	CastAnnouncedNay CastCode = 4
	CastPairedNay    CastCode = 5
	CastNay          CastCode = 6
	CastPresent      CastCode = 7
	CastPresentAlt   CastCode = 8
	CastNotVoting    CastCode = 9
)

var castCodeNames = map[CastCode]string{
	CastNotMember:    "Not a Member",
	CastYea:          "Yea",
	CastPairedYea:    "Paired Yea",
	CastAnnouncedYea: "Announced Yea",
	CastAnnouncedNay: "Announced Nay",
	CastPairedNay:    "Paired Nay",
	CastNay:          "Nay",
	CastPresent:      "Present",
	CastPresentAlt:   "Present",
	CastNotVoting:    "Not Voting",
}

// String returns the human-readable label for the cast code.
func (c CastCode) String() string {
	if name, ok := castCodeNames[c]; ok {
		return name
	}
	return "Unknown"
}

// IsNay reports whether the code is in the Nay family
// (Announced Nay, Paired Nay, Nay).
func (c CastCode) IsNay() bool {
	return c == CastAnnouncedNay || c == CastPairedNay || c == CastNay
}

// VoteKey identifies one roll call within a chamber's history.
type VoteKey struct {
	Congress int
	Roll     int
}

// MemberKey identifies one legislator's service record.
type MemberKey struct {
	Congress int
	Chamber  string
	ICPSR    int
}

// RollCallVote is one recorded roll call. Immutable once loaded; derived
// fields (threshold, votes needed, spread distance) live on CandidateVote.
type RollCallVote struct {
	Congress    int       // congress number (e.g. 115)
	Chamber     string    // "Senate" or "House"
	Roll        int       // roll call number within the congress
	Date        time.Time // date the vote was taken
	Bill        string    // bill or nomination identifier (e.g. "PN39", "S.1234")
	Description string    // free-text description of the question
	Question    string    // question type (e.g. "On the Cloture Motion")
	Result      string    // result label (e.g. "Cloture Motion Rejected")
	YeaCount    int
	NayCount    int
	Spread1     float64 // first ideological spread coordinate
	Spread2     float64 // second ideological spread coordinate
}

// Key returns the (congress, roll) identifier for the vote.
func (v RollCallVote) Key() VoteKey {
	return VoteKey{Congress: v.Congress, Roll: v.Roll}
}

// MemberVote is one member's recorded position on one roll call.
type MemberVote struct {
	Congress    int
	Chamber     string
	Roll        int
	ICPSR       int      // member identifier
	Cast        CastCode // recorded position
	Probability float64  // model-estimated certainty the cast matches preference, 0-100
}

// VoteKey returns the identifier of the roll call this position belongs to.
func (mv MemberVote) VoteKey() VoteKey {
	return VoteKey{Congress: mv.Congress, Roll: mv.Roll}
}

// MemberKey returns the identifier of the member who cast this position.
func (mv MemberVote) MemberKey() MemberKey {
	return MemberKey{Congress: mv.Congress, Chamber: mv.Chamber, ICPSR: mv.ICPSR}
}

// Member is static reference data for one legislator.
type Member struct {
	Congress int
	Chamber  string
	ICPSR    int
	Name     string
	Party    string
	State    string
	Dim1     float64 // first ideological position coordinate
	Dim2     float64 // second ideological position coordinate
}

// Key returns the (congress, chamber, icpsr) identifier for the member.
func (m Member) Key() MemberKey {
	return MemberKey{Congress: m.Congress, Chamber: m.Chamber, ICPSR: m.ICPSR}
}
