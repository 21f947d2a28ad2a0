package run

import (
	"errors"
	"log/slog"

	"blackjack-sim/internal/config"
	"blackjack-sim/internal/record"
	"blackjack-sim/internal/stats"
)

// Report is the analyze step's result over one output target.
type Report struct {
	Target  string
	Summary stats.Summary
	Mean    float64
	Edge    float64
}

// Analyze reads the bound configuration's output target record-at-a-time and
// summarizes the final-balance field in a single pass.
type Analyze struct {
	cfg config.Config

	// ReferenceStake is the stake the edge is computed against. Zero means
	// use the bound configuration's stake.
	ReferenceStake float64

	report Report
	done   bool
}

func NewAnalyze() *Analyze { return &Analyze{} }

func (a *Analyze) Name() string { return "analyze" }

func (a *Analyze) BindConfig(cfg config.Config) { a.cfg = cfg }

func (a *Analyze) Run() error {
	r, err := record.Open(a.cfg.OutputTarget)
	if err != nil {
		return err
	}
	summary, sumErr := stats.Summarize(r.ReadOutcome)
	closeErr := r.Close()
	if sumErr != nil {
		return sumErr
	}
	if closeErr != nil {
		return closeErr
	}

	stake := a.ReferenceStake
	if stake == 0 {
		stake = float64(a.cfg.Stake)
	}
	mean, err := summary.Mean()
	if err != nil {
		return err
	}
	edge, err := summary.Edge(stake)
	if err != nil {
		return err
	}
	a.report = Report{Target: a.cfg.OutputTarget, Summary: summary, Mean: mean, Edge: edge}
	a.done = true
	slog.Info("analyze",
		"target", a.cfg.OutputTarget,
		"count", summary.Count,
		"mean", mean,
		"edge", edge,
		"min", summary.Min,
		"max", summary.Max)
	return nil
}

// Report returns the result of the last successful Run.
func (a *Analyze) Report() (Report, error) {
	if !a.done {
		return Report{}, errors.New("analyze has not run")
	}
	return a.report, nil
}
