package run

import (
	"blackjack-sim/internal/config"
	"blackjack-sim/internal/strategy"
)

// ValidateConfig checks everything that must hold before any simulation or
// analysis side effect: numeric ranges, payout format, and all four strategy
// keys. A failure here means no output file has been touched.
func ValidateConfig(cfg config.Config) error {
	if err := cfg.CheckRanges(); err != nil {
		return err
	}
	if _, err := strategy.ResolveDealer(cfg.DealerRule); err != nil {
		return err
	}
	if _, err := strategy.ResolveSplit(cfg.SplitRule); err != nil {
		return err
	}
	if _, err := strategy.ResolvePlayer(cfg.PlayerRule); err != nil {
		return err
	}
	if _, err := strategy.ResolveBetting(cfg.BettingRule); err != nil {
		return err
	}
	return nil
}
