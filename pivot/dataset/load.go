// Package dataset materializes the analysis input tables from CSV files and
// writes the result tables consumed by downstream plotting and reporting.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cloture-cost/cloture-cost/pivot"
)

// Required columns per input table. Extra columns are ignored so tables can
// carry provenance fields the core does not consume.
var (
	rollCallColumns = []string{
		"congress", "chamber", "rollnumber", "date", "bill_number",
		"vote_question", "vote_desc", "vote_result", "yea_count", "nay_count",
		"nominate_spread_1", "nominate_spread_2",
	}
	memberVoteColumns = []string{
		"congress", "chamber", "rollnumber", "icpsr", "cast_code", "prob",
	}
	memberColumns = []string{
		"congress", "chamber", "icpsr", "bioname", "party_code",
		"state_abbrev", "nominate_dim1", "nominate_dim2",
	}
)

// columnIndex maps required column names to their positions in the header
// row, erroring on any missing column.
func columnIndex(header, required []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	for _, name := range required {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("missing column %q", name)
		}
	}
	return index, nil
}

// rowReader iterates CSV data rows, tracking the 1-based data row number for
// error reporting.
type rowReader struct {
	reader *csv.Reader
	index  map[string]int
	row    []string
	n      int
}

func openTable(path string, required []string) (*os.File, *rowReader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening table: %w", err)
	}

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		file.Close()
		return nil, nil, fmt.Errorf("reading CSV header: %w", err)
	}
	index, err := columnIndex(header, required)
	if err != nil {
		file.Close()
		return nil, nil, err
	}
	return file, &rowReader{reader: reader, index: index}, nil
}

// next advances to the following data row; false at EOF.
func (r *rowReader) next() (bool, error) {
	row, err := r.reader.Read()
	if err == io.EOF {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading CSV row %d: %w", r.n+1, err)
	}
	r.row = row
	r.n++
	return true, nil
}

func (r *rowReader) field(name string) string {
	return strings.TrimSpace(r.row[r.index[name]])
}

func (r *rowReader) intField(name string) (int, error) {
	v, err := strconv.Atoi(r.field(name))
	if err != nil {
		return 0, fmt.Errorf("row %d: parsing %s: %w", r.n, name, err)
	}
	return v, nil
}

// floatField parses a numeric field. An empty cell becomes NaN so the core's
// row-validation policy (skip the vote, or abort in strict mode) governs it
// rather than the loader.
func (r *rowReader) floatField(name string) (float64, error) {
	s := r.field(name)
	if s == "" {
		return math.NaN(), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("row %d: parsing %s: %w", r.n, name, err)
	}
	return v, nil
}

// LoadRollCalls reads the roll-call vote table. Dates use "2006-01-02".
func LoadRollCalls(path string) ([]pivot.RollCallVote, error) {
	file, rows, err := openTable(path, rollCallColumns)
	if err != nil {
		return nil, fmt.Errorf("roll calls: %w", err)
	}
	defer func() { _ = file.Close() }()

	var votes []pivot.RollCallVote
	for {
		ok, err := rows.next()
		if err != nil {
			return nil, fmt.Errorf("roll calls: %w", err)
		}
		if !ok {
			break
		}

		v := pivot.RollCallVote{
			Chamber:     rows.field("chamber"),
			Bill:        rows.field("bill_number"),
			Question:    rows.field("vote_question"),
			Description: rows.field("vote_desc"),
			Result:      rows.field("vote_result"),
		}
		if v.Congress, err = rows.intField("congress"); err != nil {
			return nil, fmt.Errorf("roll calls: %w", err)
		}
		if v.Roll, err = rows.intField("rollnumber"); err != nil {
			return nil, fmt.Errorf("roll calls: %w", err)
		}
		if v.YeaCount, err = rows.intField("yea_count"); err != nil {
			return nil, fmt.Errorf("roll calls: %w", err)
		}
		if v.NayCount, err = rows.intField("nay_count"); err != nil {
			return nil, fmt.Errorf("roll calls: %w", err)
		}
		if v.Spread1, err = rows.floatField("nominate_spread_1"); err != nil {
			return nil, fmt.Errorf("roll calls: %w", err)
		}
		if v.Spread2, err = rows.floatField("nominate_spread_2"); err != nil {
			return nil, fmt.Errorf("roll calls: %w", err)
		}
		if v.Date, err = time.Parse("2006-01-02", rows.field("date")); err != nil {
			return nil, fmt.Errorf("roll calls: row %d: parsing date: %w", rows.n, err)
		}
		votes = append(votes, v)
	}
	return votes, nil
}

// LoadMemberVotes reads the member-vote table.
func LoadMemberVotes(path string) ([]pivot.MemberVote, error) {
	file, rows, err := openTable(path, memberVoteColumns)
	if err != nil {
		return nil, fmt.Errorf("member votes: %w", err)
	}
	defer func() { _ = file.Close() }()

	var memberVotes []pivot.MemberVote
	for {
		ok, err := rows.next()
		if err != nil {
			return nil, fmt.Errorf("member votes: %w", err)
		}
		if !ok {
			break
		}

		mv := pivot.MemberVote{Chamber: rows.field("chamber")}
		if mv.Congress, err = rows.intField("congress"); err != nil {
			return nil, fmt.Errorf("member votes: %w", err)
		}
		if mv.Roll, err = rows.intField("rollnumber"); err != nil {
			return nil, fmt.Errorf("member votes: %w", err)
		}
		if mv.ICPSR, err = rows.intField("icpsr"); err != nil {
			return nil, fmt.Errorf("member votes: %w", err)
		}
		cast, err := rows.intField("cast_code")
		if err != nil {
			return nil, fmt.Errorf("member votes: %w", err)
		}
		mv.Cast = pivot.CastCode(cast)
		if mv.Probability, err = rows.floatField("prob"); err != nil {
			return nil, fmt.Errorf("member votes: %w", err)
		}
		memberVotes = append(memberVotes, mv)
	}
	return memberVotes, nil
}

// LoadMembers reads the member reference table.
func LoadMembers(path string) ([]pivot.Member, error) {
	file, rows, err := openTable(path, memberColumns)
	if err != nil {
		return nil, fmt.Errorf("members: %w", err)
	}
	defer func() { _ = file.Close() }()

	var members []pivot.Member
	for {
		ok, err := rows.next()
		if err != nil {
			return nil, fmt.Errorf("members: %w", err)
		}
		if !ok {
			break
		}

		m := pivot.Member{
			Chamber: rows.field("chamber"),
			Name:    rows.field("bioname"),
			Party:   rows.field("party_code"),
			State:   rows.field("state_abbrev"),
		}
		if m.Congress, err = rows.intField("congress"); err != nil {
			return nil, fmt.Errorf("members: %w", err)
		}
		if m.ICPSR, err = rows.intField("icpsr"); err != nil {
			return nil, fmt.Errorf("members: %w", err)
		}
		if m.Dim1, err = rows.floatField("nominate_dim1"); err != nil {
			return nil, fmt.Errorf("members: %w", err)
		}
		if m.Dim2, err = rows.floatField("nominate_dim2"); err != nil {
			return nil, fmt.Errorf("members: %w", err)
		}
		members = append(members, m)
	}
	return members, nil
}
