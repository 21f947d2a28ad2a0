// Package config assembles a simulation run's configuration from layered
// sources: explicit command values, optional defaults files, the process
// environment, and built-in defaults. Resolution walks the layers in priority
// order and the first layer that defines a field wins.
package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Config is the fully resolved run configuration. It is a plain value: copies
// are independent, which is what lets a sweep derive one config per variant
// without cross-variant leakage.
type Config struct {
	DealerRule  string
	SplitRule   string
	PlayerRule  string
	BettingRule string

	Decks  int
	Limit  int
	Payout string

	Rounds  int
	Stake   int
	Samples int

	OutputTarget string

	Verbose bool
	Debug   bool
}

// Payout is the blackjack payout expressed as a ratio (3:2 pays 1.5x the bet).
type Payout struct {
	Numerator   int
	Denominator int
}

// Ratio returns the payout as a multiplier on the bet.
func (p Payout) Ratio() float64 {
	return float64(p.Numerator) / float64(p.Denominator)
}

func (p Payout) String() string {
	return fmt.Sprintf("%d:%d", p.Numerator, p.Denominator)
}

// fieldSpec declares one configuration field: its textual name as seen by
// layers, an optional built-in default, and the setter that coerces a layer's
// textual value into a Config.
type fieldSpec struct {
	name       string
	def        string
	hasDefault bool
	set        func(c *Config, v string) error
}

func setString(dst func(c *Config) *string) func(*Config, string) error {
	return func(c *Config, v string) error {
		*dst(c) = v
		return nil
	}
}

func setInt(dst func(c *Config) *int) func(*Config, string) error {
	return func(c *Config, v string) error {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("not an integer")
		}
		*dst(c) = n
		return nil
	}
}

func setBool(dst func(c *Config) *bool) func(*Config, string) error {
	return func(c *Config, v string) error {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("not a boolean")
		}
		*dst(c) = b
		return nil
	}
}

// fields is the closed schema. Fields without a default (output_target) must
// be supplied by some layer or resolution fails.
var fields = []fieldSpec{
	{name: "dealer_rule", def: "Hit17", hasDefault: true,
		set: setString(func(c *Config) *string { return &c.DealerRule })},
	{name: "split_rule", def: "ReSplit", hasDefault: true,
		set: setString(func(c *Config) *string { return &c.SplitRule })},
	{name: "player_rule", def: "SomeStrategy", hasDefault: true,
		set: setString(func(c *Config) *string { return &c.PlayerRule })},
	{name: "betting_rule", def: "Flat", hasDefault: true,
		set: setString(func(c *Config) *string { return &c.BettingRule })},
	{name: "decks", def: "6", hasDefault: true,
		set: setInt(func(c *Config) *int { return &c.Decks })},
	{name: "limit", def: "50", hasDefault: true,
		set: setInt(func(c *Config) *int { return &c.Limit })},
	{name: "payout", def: "3:2", hasDefault: true,
		set: setString(func(c *Config) *string { return &c.Payout })},
	{name: "rounds", def: "100", hasDefault: true,
		set: setInt(func(c *Config) *int { return &c.Rounds })},
	{name: "stake", def: "50", hasDefault: true,
		set: setInt(func(c *Config) *int { return &c.Stake })},
	{name: "samples", def: "100", hasDefault: true,
		set: setInt(func(c *Config) *int { return &c.Samples })},
	{name: "output_target",
		set: setString(func(c *Config) *string { return &c.OutputTarget })},
	{name: "verbose", def: "false", hasDefault: true,
		set: setBool(func(c *Config) *bool { return &c.Verbose })},
	{name: "debug", def: "false", hasDefault: true,
		set: setBool(func(c *Config) *bool { return &c.Debug })},
}

// FieldNames returns the schema's field names in declaration order.
func FieldNames() []string {
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		out = append(out, f.name)
	}
	return out
}

// Resolve merges the given layers into a Config. Layers are consulted in
// argument order, highest priority first; the first layer defining a field
// supplies its value and later layers never override it. Fields absent from
// every layer fall back to their built-in default, or fail resolution if none
// is declared. Resolve reads the layers but never mutates them.
func Resolve(layers ...Layer) (Config, error) {
	var cfg Config
	for _, f := range fields {
		resolved := false
		for _, l := range layers {
			v, ok := l.Lookup(f.name)
			if !ok {
				continue
			}
			if err := f.set(&cfg, v); err != nil {
				return Config{}, &TypeError{Field: f.name, Layer: l.Name(), Value: v, Err: err}
			}
			resolved = true
			break
		}
		if resolved {
			continue
		}
		if !f.hasDefault {
			return Config{}, &MissingFieldError{Field: f.name}
		}
		if err := f.set(&cfg, f.def); err != nil {
			// Built-in defaults are literals in the schema above; a coercion
			// failure here is a programming error.
			panic(fmt.Sprintf("config: built-in default for %q invalid: %v", f.name, err))
		}
	}
	return cfg, nil
}

// ParsePayout parses a payout ratio in either the "(3,2)" or "3:2" form.
// Anything other than exactly two positive integers is a PayoutFormatError.
func ParsePayout(s string) (Payout, error) {
	raw := strings.TrimSpace(s)
	trimmed := raw
	if strings.HasPrefix(trimmed, "(") && strings.HasSuffix(trimmed, ")") {
		trimmed = trimmed[1 : len(trimmed)-1]
	}
	sep := ","
	if !strings.Contains(trimmed, ",") {
		sep = ":"
	}
	parts := strings.Split(trimmed, sep)
	if len(parts) != 2 {
		return Payout{}, &PayoutFormatError{Value: raw}
	}
	num, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Payout{}, &PayoutFormatError{Value: raw}
	}
	den, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Payout{}, &PayoutFormatError{Value: raw}
	}
	if num <= 0 || den <= 0 {
		return Payout{}, &PayoutFormatError{Value: raw}
	}
	return Payout{Numerator: num, Denominator: den}, nil
}

// ParsedPayout returns the payout field as a structured ratio.
func (c Config) ParsedPayout() (Payout, error) {
	return ParsePayout(c.Payout)
}

// CheckRanges validates the numeric fields. Strategy keys are validated by
// the strategy registry, not here, so that this package stays independent of
// the registry's vocabulary.
func (c Config) CheckRanges() error {
	if c.Decks <= 0 {
		return fmt.Errorf("decks must be > 0, got %d", c.Decks)
	}
	if c.Limit <= 0 {
		return fmt.Errorf("limit must be > 0, got %d", c.Limit)
	}
	if c.Rounds <= 0 {
		return fmt.Errorf("rounds must be > 0, got %d", c.Rounds)
	}
	if c.Stake <= 0 {
		return fmt.Errorf("stake must be > 0, got %d", c.Stake)
	}
	if c.Samples <= 0 {
		return fmt.Errorf("samples must be > 0, got %d", c.Samples)
	}
	if c.OutputTarget == "" {
		return fmt.Errorf("output_target must not be empty")
	}
	if _, err := c.ParsedPayout(); err != nil {
		return err
	}
	return nil
}
