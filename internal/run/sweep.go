package run

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"blackjack-sim/internal/config"
	"blackjack-sim/internal/strategy"
)

// Sweep expands into one inner run per variant of a single strategy axis.
// Each variant gets an independent copy of the bound configuration with the
// axis and the output target overridden, so variants never see each other's
// state. With HaltOnError (the default) the first failing variant stops the
// sweep; otherwise every variant is attempted and the failures are joined.
type Sweep struct {
	cfg config.Config

	Axis        string
	Variants    []string
	HaltOnError bool

	// Build constructs the inner step for each variant; it defaults to a
	// fresh Simulate per variant.
	Build func() Step
}

// NewSweep sweeps the betting axis over the given variants, or over the whole
// betting registry when variants is empty.
func NewSweep(variants []string) *Sweep {
	if len(variants) == 0 {
		variants = strategy.BettingKeys()
	}
	return &Sweep{
		Axis:        strategy.AxisBetting,
		Variants:    variants,
		HaltOnError: true,
		Build:       func() Step { return NewSimulate() },
	}
}

func (s *Sweep) Name() string { return "sweep" }

func (s *Sweep) BindConfig(cfg config.Config) { s.cfg = cfg }

func (s *Sweep) Run() error {
	var failures []error
	for _, variant := range s.Variants {
		derived, err := s.derive(variant)
		if err == nil {
			inner := s.Build()
			inner.BindConfig(derived)
			err = inner.Run()
		}
		if err != nil {
			err = fmt.Errorf("variant %s: %w", variant, err)
			if s.HaltOnError {
				return err
			}
			failures = append(failures, err)
		}
	}
	return errors.Join(failures...)
}

// derive copies the bound configuration with the swept axis and the output
// target overridden for one variant.
func (s *Sweep) derive(variant string) (config.Config, error) {
	derived := s.cfg
	switch s.Axis {
	case strategy.AxisDealer:
		derived.DealerRule = variant
	case strategy.AxisSplit:
		derived.SplitRule = variant
	case strategy.AxisPlayer:
		derived.PlayerRule = variant
	case strategy.AxisBetting:
		derived.BettingRule = variant
	default:
		return config.Config{}, fmt.Errorf("cannot sweep axis %q", s.Axis)
	}
	derived.OutputTarget = VariantTarget(s.cfg.OutputTarget, variant)
	return derived, nil
}

// VariantTarget derives a per-variant output target by inserting the variant
// name before the extension: results/sim.csv + Flat -> results/sim_Flat.csv.
func VariantTarget(target, variant string) string {
	ext := filepath.Ext(target)
	base := strings.TrimSuffix(target, ext)
	return base + "_" + variant + ext
}
