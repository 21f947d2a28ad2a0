package models

import (
	"strconv"

	"blackjack-sim/internal/config"
)

// SimulateRequest carries per-request configuration overrides. Every field is
// optional; omitted fields fall through to the environment layer and the
// built-in defaults. Pointer fields distinguish "omitted" from zero.
type SimulateRequest struct {
	DealerRule  string `json:"dealer_rule,omitempty"`
	SplitRule   string `json:"split_rule,omitempty"`
	PlayerRule  string `json:"player_rule,omitempty"`
	BettingRule string `json:"betting_rule,omitempty"`
	Decks       *int   `json:"decks,omitempty"`
	Limit       *int   `json:"limit,omitempty"`
	Payout      string `json:"payout,omitempty"`
	Rounds      *int   `json:"rounds,omitempty"`
	Stake       *int   `json:"stake,omitempty"`
	Samples     *int   `json:"samples,omitempty"`

	// Seed makes the run reproducible; zero seeds from the clock.
	Seed        int64 `json:"seed,omitempty"`
	IncludeRows bool  `json:"include_rows,omitempty"`
}

// Layer renders the supplied overrides as the highest-priority configuration
// layer for this request.
func (r SimulateRequest) Layer() config.Layer {
	values := map[string]string{}
	if r.DealerRule != "" {
		values["dealer_rule"] = r.DealerRule
	}
	if r.SplitRule != "" {
		values["split_rule"] = r.SplitRule
	}
	if r.PlayerRule != "" {
		values["player_rule"] = r.PlayerRule
	}
	if r.BettingRule != "" {
		values["betting_rule"] = r.BettingRule
	}
	if r.Payout != "" {
		values["payout"] = r.Payout
	}
	if r.Decks != nil {
		values["decks"] = strconv.Itoa(*r.Decks)
	}
	if r.Limit != nil {
		values["limit"] = strconv.Itoa(*r.Limit)
	}
	if r.Rounds != nil {
		values["rounds"] = strconv.Itoa(*r.Rounds)
	}
	if r.Stake != nil {
		values["stake"] = strconv.Itoa(*r.Stake)
	}
	if r.Samples != nil {
		values["samples"] = strconv.Itoa(*r.Samples)
	}
	return config.NewMapLayer("request", values)
}

// SweepRequest runs one simulation per betting variant and ranks the results.
type SweepRequest struct {
	SimulateRequest
	// Variants lists the betting rules to sweep; empty means the full
	// betting registry.
	Variants []string `json:"variants,omitempty"`
	// KeepGoing attempts the remaining variants after a failure instead of
	// halting at the first one.
	KeepGoing bool `json:"keep_going,omitempty"`
}
