package main

import (
	"fmt"
	"log/slog"
	"os"

	"blackjack-sim/internal/config"
	"blackjack-sim/internal/run"
	"blackjack-sim/internal/stats"

	"github.com/spf13/pflag"
)

// Demo:
// - Resolve a configuration from built-in defaults plus the environment
// - Run one simulate+analyze sequence
// - Sweep the betting variants over the same configuration and rank them
func main() {
	out := pflag.String("out", "results/demo.csv", "Output target")
	samples := pflag.Int("samples", 200, "Sessions per run")
	seed := pflag.Int64("seed", 42, "Random seed")
	pflag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))

	envLayer, err := config.EnvLayer()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
	demoLayer := config.NewMapLayer("demo", map[string]string{
		"output_target": *out,
		"samples":       fmt.Sprint(*samples),
	})
	cfg, err := config.Resolve(demoLayer, envLayer)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
	if err := run.ValidateConfig(cfg); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}

	simulate := run.NewSimulate()
	simulate.Seed = *seed
	analyze := run.NewAnalyze()
	seq := run.NewSequence(simulate, analyze)
	seq.BindConfig(cfg)
	if err := seq.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	report, err := analyze.Report()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	fmt.Printf("%s: mean=%.2f edge=%.2f%% range=%.1f..%.1f\n",
		report.Target, report.Mean, report.Edge*100, report.Summary.Min, report.Summary.Max)

	// Sweep every betting variant over the same configuration.
	sweep := run.NewSweep(nil)
	sweep.Build = func() run.Step {
		s := run.NewSimulate()
		s.Seed = *seed
		return s
	}
	sweep.BindConfig(cfg)
	if err := sweep.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	summaries := map[string]stats.Summary{}
	for _, variant := range sweep.Variants {
		derived := cfg
		derived.BettingRule = variant
		derived.OutputTarget = run.VariantTarget(cfg.OutputTarget, variant)
		analyze := run.NewAnalyze()
		analyze.BindConfig(derived)
		if err := analyze.Run(); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
		report, err := analyze.Report()
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
		summaries[variant] = report.Summary
	}
	for i, v := range stats.RankByEdge(summaries, float64(cfg.Stake)) {
		fmt.Printf("%d. %-16s mean=%.2f edge=%.2f%%\n", i+1, v.Variant, v.Mean, v.Edge*100)
	}
}
