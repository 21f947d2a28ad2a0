package run

import (
	"log/slog"
	"time"

	"blackjack-sim/internal/config"
	"blackjack-sim/internal/record"
	"blackjack-sim/internal/sim"
	"blackjack-sim/internal/strategy"
)

// Simulate resolves the configured strategies, plays the configured number of
// sessions, and streams one record per session to the output target.
type Simulate struct {
	cfg config.Config

	// Seed makes runs reproducible; zero means seed from the clock.
	Seed int64
}

func NewSimulate() *Simulate { return &Simulate{} }

func (s *Simulate) Name() string { return "simulate" }

func (s *Simulate) BindConfig(cfg config.Config) { s.cfg = cfg }

// Run performs the simulation. All resolution happens before the output
// target is created, so a bad key or payout never leaves a partial file.
func (s *Simulate) Run() error {
	cfg := s.cfg
	if err := cfg.CheckRanges(); err != nil {
		return err
	}
	dealer, err := strategy.ResolveDealer(cfg.DealerRule)
	if err != nil {
		return err
	}
	split, err := strategy.ResolveSplit(cfg.SplitRule)
	if err != nil {
		return err
	}
	play, err := strategy.ResolvePlayer(cfg.PlayerRule)
	if err != nil {
		return err
	}
	betting, err := strategy.ResolveBetting(cfg.BettingRule)
	if err != nil {
		return err
	}
	payout, err := cfg.ParsedPayout()
	if err != nil {
		return err
	}

	table := sim.Table{
		Decks:  cfg.Decks,
		Limit:  cfg.Limit,
		Payout: payout,
		Dealer: dealer,
		Split:  split,
	}
	player := sim.Player{
		Play:    play,
		Betting: betting,
		Rounds:  cfg.Rounds,
		Stake:   cfg.Stake,
	}
	seed := s.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	engine := sim.New(table, player, cfg.Samples, seed)

	w, err := record.Create(cfg.OutputTarget)
	if err != nil {
		return err
	}
	slog.Debug("simulate: start",
		"target", cfg.OutputTarget,
		"samples", cfg.Samples,
		"betting_rule", cfg.BettingRule,
		"seed", seed)

	runErr := engine.Run(func(o sim.Outcome) error {
		return w.Write(record.Row{
			DealerRule:   cfg.DealerRule,
			SplitRule:    cfg.SplitRule,
			Decks:        cfg.Decks,
			Limit:        cfg.Limit,
			Payout:       payout.String(),
			PlayerRule:   cfg.PlayerRule,
			BettingRule:  cfg.BettingRule,
			Rounds:       cfg.Rounds,
			Stake:        cfg.Stake,
			Sample:       o.Sample,
			RoundsPlayed: o.RoundsPlayed,
			FinalBalance: o.FinalBalance,
		})
	})
	closeErr := w.Close()
	if runErr != nil {
		return runErr
	}
	if closeErr != nil {
		return closeErr
	}
	slog.Debug("simulate: done", "target", cfg.OutputTarget, "samples", cfg.Samples)
	return nil
}
