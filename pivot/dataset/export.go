package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/cloture-cost/cloture-cost/pivot"
)

// CSV column headers for the result tables.
var (
	costTableColumns = []string{
		"congress", "rollnumber", "bill_number", "vote_desc",
		"prob", "prob_margin", "spread_distance", "cost", "n_pivotal", "rank",
	}
	flipCurveColumns = []string{"cost", "flipped"}
)

// RunHeader captures run metadata written alongside the result tables.
type RunHeader struct {
	CreatedAt   string `yaml:"created_at"`
	RollCalls   int    `yaml:"roll_calls"`
	Candidates  int    `yaml:"candidate_votes"`
	CostRecords int    `yaml:"cost_records"`
	Strict      bool   `yaml:"strict"`

	Rules RulesHeader `yaml:"rules"`
}

// RulesHeader is the rule set in on-disk form, recorded for reproducibility.
type RulesHeader struct {
	SCOTUSDate      string `yaml:"scotus_date"`
	SCOTUSException string `yaml:"scotus_exception"`
	NomsDate        string `yaml:"nominations_date"`
	NomsException   string `yaml:"nominations_exception"`
}

// NewRulesHeader formats a rule set for the run header.
func NewRulesHeader(rules pivot.RuleSet) RulesHeader {
	return RulesHeader{
		SCOTUSDate:      rules.SCOTUS.Date.Format("2006-01-02"),
		SCOTUSException: fmt.Sprintf("%d-%d", rules.SCOTUS.Exception.Congress, rules.SCOTUS.Exception.Roll),
		NomsDate:        rules.Nominations.Date.Format("2006-01-02"),
		NomsException:   fmt.Sprintf("%d-%d", rules.Nominations.Exception.Congress, rules.Nominations.Exception.Roll),
	}
}

// WriteRunHeader writes the run header YAML.
func WriteRunHeader(header *RunHeader, path string) error {
	data, err := yaml.Marshal(header)
	if err != nil {
		return fmt.Errorf("marshaling run header: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing run header: %w", err)
	}
	return nil
}

func writeCSV(path string, columns []string, rows [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(columns); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for i, row := range rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("writing CSV row %d: %w", i+1, err)
		}
	}
	return nil
}

// WriteCostTable writes the ranked cost records for inspection and export.
func WriteCostTable(records []pivot.CostRecord, path string) error {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			strconv.Itoa(r.Congress),
			strconv.Itoa(r.Roll),
			r.Bill,
			r.Description,
			strconv.FormatFloat(r.Probability, 'f', -1, 64),
			strconv.FormatFloat(r.Margin, 'f', -1, 64),
			strconv.FormatFloat(r.SpreadDistance, 'f', -1, 64),
			strconv.FormatFloat(r.Cost, 'f', -1, 64),
			strconv.Itoa(r.NPivotal),
			strconv.Itoa(r.Rank),
		})
	}
	return writeCSV(path, costTableColumns, rows)
}

// WriteFlipCurve writes the (cost, cumulative flipped) curve consumed by
// downstream plotting.
func WriteFlipCurve(curve []pivot.CurvePoint, path string) error {
	rows := make([][]string, 0, len(curve))
	for _, p := range curve {
		rows = append(rows, []string{
			strconv.FormatFloat(p.Cost, 'f', -1, 64),
			strconv.Itoa(p.Flipped),
		})
	}
	return writeCSV(path, flipCurveColumns, rows)
}
