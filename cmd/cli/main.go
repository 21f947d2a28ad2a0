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

const version = "0.4.0"

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "simulate":
		cmdSimulate(os.Args[2:])
	case "analyze":
		cmdAnalyze(os.Args[2:])
	case "run":
		cmdRun(os.Args[2:])
	case "sweep":
		cmdSweep(os.Args[2:])
	case "-V", "--version", "version":
		fmt.Println(version)
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli simulate [flags] OUTPUT     play sessions, write one record per sample")
	fmt.Println("  cli analyze  [flags] OUTPUT     summarize an existing output file")
	fmt.Println("  cli run      [flags] OUTPUT     simulate then analyze the same target")
	fmt.Println("  cli sweep    [flags] OUTPUT     one run per betting variant, ranked by edge")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - OUTPUT is the output target; sweep derives OUTPUT_<variant>.csv per variant")
	fmt.Println("  - SIM_SAMPLES, SIM_STAKE and SIM_ROUNDS override defaults from the environment")
	fmt.Println("  - flags beat a --config defaults file, which beats the environment")
}

// cliFlags is the configuration flag surface shared by all subcommands.
type cliFlags struct {
	fs         *pflag.FlagSet
	configFile string
	seed       int64
}

func newFlags(name string) *cliFlags {
	f := &cliFlags{fs: pflag.NewFlagSet(name, pflag.ExitOnError)}
	fs := f.fs
	fs.BoolP("verbose", "v", false, "Log step progress")
	fs.Bool("debug", false, "Log debug detail")
	fs.String("dealer-rule", "Hit17", "Dealer rule (Hit17, Stand17)")
	fs.String("split-rule", "ReSplit", "Split rule (ReSplit, NoReSplit, NoReSplitAces)")
	fs.Int("decks", 6, "Decks to deal")
	fs.Int("limit", 50, "Table bet limit")
	fs.String("payout", "3:2", "Blackjack payout ratio, e.g. \"3:2\" or \"(3,2)\"")
	fs.StringP("player-rule", "p", "SomeStrategy", "Player rule (SomeStrategy, AnotherStrategy)")
	fs.StringP("betting-rule", "b", "Flat", "Betting rule (Flat, Martingale, OneThreeTwoSix)")
	fs.IntP("rounds", "r", 100, "Rounds per session")
	fs.IntP("stake", "s", 50, "Starting stake in bet units")
	fs.Int("samples", 100, "Sessions to simulate")
	fs.StringVar(&f.configFile, "config", "", "Path to a YAML defaults file")
	fs.Int64Var(&f.seed, "seed", 0, "Random seed (0 = from the clock)")
	return f
}

// flagToField maps flag names onto configuration field names.
var flagToField = map[string]string{
	"verbose":      "verbose",
	"debug":        "debug",
	"dealer-rule":  "dealer_rule",
	"split-rule":   "split_rule",
	"decks":        "decks",
	"limit":        "limit",
	"payout":       "payout",
	"player-rule":  "player_rule",
	"betting-rule": "betting_rule",
	"rounds":       "rounds",
	"stake":        "stake",
	"samples":      "samples",
}

// buildConfig parses args and resolves the full layer stack: explicitly set
// flags and the positional output target first, then the optional defaults
// file, then the environment, then built-in defaults. Any failure here means
// no simulation work has started.
func (f *cliFlags) buildConfig(args []string) (config.Config, error) {
	if err := f.fs.Parse(args); err != nil {
		return config.Config{}, err
	}
	rest := f.fs.Args()
	if len(rest) != 1 {
		return config.Config{}, fmt.Errorf("expected exactly one OUTPUT argument, got %d", len(rest))
	}

	// Only flags the user actually set participate in the top layer; the
	// defaults shown in help come from the built-in defaults instead.
	flagValues := map[string]string{"output_target": rest[0]}
	f.fs.Visit(func(fl *pflag.Flag) {
		if field, ok := flagToField[fl.Name]; ok {
			flagValues[field] = fl.Value.String()
		}
	})
	layers := []config.Layer{config.NewMapLayer("flags", flagValues)}

	if f.configFile != "" {
		fileLayer, err := config.LoadFileLayer(f.configFile)
		if err != nil {
			return config.Config{}, err
		}
		layers = append(layers, fileLayer)
	}

	envLayer, err := config.EnvLayer()
	if err != nil {
		return config.Config{}, err
	}
	layers = append(layers, envLayer)

	cfg, err := config.Resolve(layers...)
	if err != nil {
		return config.Config{}, err
	}
	if err := run.ValidateConfig(cfg); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// setupLogging installs the process logger before any step is constructed so
// nothing ever binds to an unconfigured logger.
func setupLogging(cfg config.Config) {
	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelInfo
	}
	if cfg.Debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func resolveOrExit(f *cliFlags, args []string) config.Config {
	cfg, err := f.buildConfig(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
	setupLogging(cfg)
	return cfg
}

func runOrExit(step run.Step, cfg config.Config) {
	step.BindConfig(cfg)
	if err := step.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func cmdSimulate(args []string) {
	f := newFlags("simulate")
	cfg := resolveOrExit(f, args)

	simulate := run.NewSimulate()
	simulate.Seed = f.seed
	runOrExit(simulate, cfg)
	fmt.Printf("Wrote %d records to %s\n", cfg.Samples, cfg.OutputTarget)
}

func cmdAnalyze(args []string) {
	f := newFlags("analyze")
	cfg := resolveOrExit(f, args)

	analyze := run.NewAnalyze()
	runOrExit(analyze, cfg)
	printReport(analyze)
}

func cmdRun(args []string) {
	f := newFlags("run")
	cfg := resolveOrExit(f, args)

	simulate := run.NewSimulate()
	simulate.Seed = f.seed
	analyze := run.NewAnalyze()
	runOrExit(run.NewSequence(simulate, analyze), cfg)
	printReport(analyze)
}

func cmdSweep(args []string) {
	f := newFlags("sweep")
	variants := f.fs.StringSlice("variants", nil, "Betting variants to sweep (default: all)")
	keepGoing := f.fs.Bool("keep-going", false, "Attempt remaining variants after a failure")
	cfg := resolveOrExit(f, args)

	sweep := run.NewSweep(*variants)
	sweep.HaltOnError = !*keepGoing
	sweep.Build = func() run.Step {
		s := run.NewSimulate()
		s.Seed = f.seed
		return s
	}
	sweep.BindConfig(cfg)
	sweepErr := sweep.Run()
	if sweepErr != nil && sweep.HaltOnError {
		fmt.Fprintln(os.Stderr, "error:", sweepErr)
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
			if sweepErr == nil {
				fmt.Fprintln(os.Stderr, "error:", err)
				os.Exit(1)
			}
			continue
		}
		report, err := analyze.Report()
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
		summaries[variant] = report.Summary
	}

	ranked := stats.RankByEdge(summaries, float64(cfg.Stake))
	fmt.Printf("%-4s %-16s %-8s %-10s %-9s %s\n", "rank", "variant", "count", "mean", "edge", "min/max")
	for i, v := range ranked {
		fmt.Printf("%-4d %-16s %-8d %-10.2f %-8.2f%% %.1f/%.1f\n",
			i+1, v.Variant, v.Summary.Count, v.Mean, v.Edge*100, v.Summary.Min, v.Summary.Max)
	}
	if sweepErr != nil {
		fmt.Fprintln(os.Stderr, "warning: some variants failed:", sweepErr)
		os.Exit(1)
	}
}

func printReport(a *run.Analyze) {
	report, err := a.Report()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	fmt.Println(report.Target)
	fmt.Printf("Mean = %.1f\n", report.Mean)
	fmt.Printf("House Edge = %.1f%%\n", report.Edge*100)
	fmt.Printf("Range = %.1f %.1f\n", report.Summary.Min, report.Summary.Max)
}
