// Package run composes the simulation pipeline from bindable steps. A step
// receives a configuration snapshot through BindConfig and performs its work
// in Run; a sequence shares one configuration across its steps and executes
// them strictly in order.
package run

import (
	"fmt"

	"blackjack-sim/internal/config"
)

// Step is one unit of pipeline work. BindConfig replaces the bound
// configuration wholesale; Run uses only the currently bound configuration
// and never consults ambient state for a declared field.
type Step interface {
	Name() string
	BindConfig(cfg config.Config)
	Run() error
}

// Sequence executes steps in declaration order with one shared configuration.
// A later step may consume an earlier step's artifact (simulate writes the
// target, analyze reads it), which is why ordering is the core guarantee.
type Sequence struct {
	steps []Step
}

func NewSequence(steps ...Step) *Sequence {
	return &Sequence{steps: steps}
}

func (s *Sequence) Name() string { return "sequence" }

// BindConfig propagates the same configuration to every constituent step
// before any of them runs.
func (s *Sequence) BindConfig(cfg config.Config) {
	for _, step := range s.steps {
		step.BindConfig(cfg)
	}
}

// Run executes the steps in order, stopping at the first failure.
func (s *Sequence) Run() error {
	for _, step := range s.steps {
		if err := step.Run(); err != nil {
			return fmt.Errorf("step %s: %w", step.Name(), err)
		}
	}
	return nil
}
