// Package record defines the per-session output record and its delimited
// file form. Rows have fixed-position fields; the final-balance field at
// OutcomeField is the scalar the summarizer consumes.
package record

import (
	"fmt"
	"strconv"
)

// Field positions in a row. OutcomeField is the designated summarizer input.
const (
	FieldCount   = 12
	OutcomeField = 11
)

// Row is one simulated session's output: the configuration that produced it
// plus the session result. One row is written per sample, in arrival order.
type Row struct {
	DealerRule  string
	SplitRule   string
	Decks       int
	Limit       int
	Payout      string
	PlayerRule  string
	BettingRule string
	Rounds      int
	Stake       int

	Sample       int
	RoundsPlayed int
	FinalBalance float64
}

var header = []string{
	"dealer_rule",
	"split_rule",
	"decks",
	"limit",
	"payout",
	"player_rule",
	"betting_rule",
	"rounds",
	"stake",
	"sample",
	"rounds_played",
	"final_balance",
}

// Fields renders the row in fixed field order.
func (r Row) Fields() []string {
	return []string{
		r.DealerRule,
		r.SplitRule,
		strconv.Itoa(r.Decks),
		strconv.Itoa(r.Limit),
		r.Payout,
		r.PlayerRule,
		r.BettingRule,
		strconv.Itoa(r.Rounds),
		strconv.Itoa(r.Stake),
		strconv.Itoa(r.Sample),
		strconv.Itoa(r.RoundsPlayed),
		fmtFloat(r.FinalBalance),
	}
}

// ParseRow rebuilds a Row from its field form.
func ParseRow(fields []string) (Row, error) {
	if len(fields) != FieldCount {
		return Row{}, fmt.Errorf("expected %d fields, got %d", FieldCount, len(fields))
	}
	var r Row
	var err error
	r.DealerRule = fields[0]
	r.SplitRule = fields[1]
	if r.Decks, err = strconv.Atoi(fields[2]); err != nil {
		return Row{}, fmt.Errorf("field decks: %w", err)
	}
	if r.Limit, err = strconv.Atoi(fields[3]); err != nil {
		return Row{}, fmt.Errorf("field limit: %w", err)
	}
	r.Payout = fields[4]
	r.PlayerRule = fields[5]
	r.BettingRule = fields[6]
	if r.Rounds, err = strconv.Atoi(fields[7]); err != nil {
		return Row{}, fmt.Errorf("field rounds: %w", err)
	}
	if r.Stake, err = strconv.Atoi(fields[8]); err != nil {
		return Row{}, fmt.Errorf("field stake: %w", err)
	}
	if r.Sample, err = strconv.Atoi(fields[9]); err != nil {
		return Row{}, fmt.Errorf("field sample: %w", err)
	}
	if r.RoundsPlayed, err = strconv.Atoi(fields[10]); err != nil {
		return Row{}, fmt.Errorf("field rounds_played: %w", err)
	}
	if r.FinalBalance, err = strconv.ParseFloat(fields[11], 64); err != nil {
		return Row{}, fmt.Errorf("field final_balance: %w", err)
	}
	return r, nil
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}
