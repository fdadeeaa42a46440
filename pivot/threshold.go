package pivot

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Cloture thresholds. Every vote is classified as one or the other.
const (
	MajorityThreshold = 50
	ClotureThreshold  = 60
)

// nominationPattern matches executive-nomination numbering ("PN" followed by
// the nomination number, e.g. "PN39", "PN2259-2").
var nominationPattern = regexp.MustCompile(`^PN\d+`)

// RuleChange is one chamber rule change lowering the cloture threshold for a
// class of nominations. Votes dated strictly after Date need only a simple
// majority. Exception names the roll call on which the rule change itself was
// forced: it took place on the change date, so a date comparison alone would
// misclassify it, and it is matched by exact (congress, roll) instead.
type RuleChange struct {
	Date      time.Time
	Exception VoteKey
}

// Applies reports whether the rule change covers the given vote.
func (rc RuleChange) Applies(v RollCallVote) bool {
	return v.Date.After(rc.Date) || v.Key() == rc.Exception
}

// RuleSet holds the chamber's threshold rule changes. Modeled as data rather
// than inline conditionals so other chambers or eras can substitute their own.
type RuleSet struct {
	SCOTUS      RuleChange // Supreme Court nominations
	Nominations RuleChange // all other nominations
}

// DefaultRuleSet returns the US Senate rule changes: the November 2013 change
// for non-Supreme-Court nominations (forced on congress 113 roll 244) and the
// April 2017 change for Supreme Court nominations (congress 115 roll 110).
func DefaultRuleSet() RuleSet {
	return RuleSet{
		SCOTUS: RuleChange{
			Date:      time.Date(2017, 4, 6, 0, 0, 0, 0, time.UTC),
			Exception: VoteKey{Congress: 115, Roll: 110},
		},
		Nominations: RuleChange{
			Date:      time.Date(2013, 11, 21, 0, 0, 0, 0, time.UTC),
			Exception: VoteKey{Congress: 113, Roll: 244},
		},
	}
}

// IsNomination reports whether the vote is on an executive nomination,
// detected from the bill identifier's numbering pattern.
func IsNomination(v RollCallVote) bool {
	return nominationPattern.MatchString(strings.TrimSpace(v.Bill))
}

// IsSCOTUSNomination reports whether the vote is on a Supreme Court
// nomination, detected from the justice title in the description.
func IsSCOTUSNomination(v RollCallVote) bool {
	return IsNomination(v) &&
		(strings.Contains(v.Description, "Associate Justice") ||
			strings.Contains(v.Description, "Chief Justice"))
}

// Threshold returns the cloture threshold for the vote under this rule set.
// Always MajorityThreshold or ClotureThreshold.
func (rs RuleSet) Threshold(v RollCallVote) int {
	switch {
	case IsSCOTUSNomination(v):
		if rs.SCOTUS.Applies(v) {
			return MajorityThreshold
		}
	case IsNomination(v):
		if rs.Nominations.Applies(v) {
			return MajorityThreshold
		}
	}
	return ClotureThreshold
}

// ruleChangeYAML is the on-disk form of RuleChange; dates are "2006-01-02".
type ruleChangeYAML struct {
	Date      string `yaml:"date"`
	Exception struct {
		Congress int `yaml:"congress"`
		Roll     int `yaml:"roll"`
	} `yaml:"exception"`
}

type ruleSetYAML struct {
	SCOTUS      ruleChangeYAML `yaml:"scotus"`
	Nominations ruleChangeYAML `yaml:"nominations"`
}

func (rc ruleChangeYAML) toRuleChange() (RuleChange, error) {
	date, err := time.Parse("2006-01-02", rc.Date)
	if err != nil {
		return RuleChange{}, fmt.Errorf("parsing rule change date %q: %w", rc.Date, err)
	}
	return RuleChange{
		Date:      date,
		Exception: VoteKey{Congress: rc.Exception.Congress, Roll: rc.Exception.Roll},
	}, nil
}

// LoadRuleSet reads a rule set from a YAML file with strict field checking,
// so typos in rule files cause errors rather than silent 60-vote defaults.
func LoadRuleSet(path string) (RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RuleSet{}, fmt.Errorf("reading rules file: %w", err)
	}

	var raw ruleSetYAML
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&raw); err != nil {
		return RuleSet{}, fmt.Errorf("parsing rules YAML: %w", err)
	}

	scotus, err := raw.SCOTUS.toRuleChange()
	if err != nil {
		return RuleSet{}, fmt.Errorf("scotus: %w", err)
	}
	nominations, err := raw.Nominations.toRuleChange()
	if err != nil {
		return RuleSet{}, fmt.Errorf("nominations: %w", err)
	}
	return RuleSet{SCOTUS: scotus, Nominations: nominations}, nil
}
