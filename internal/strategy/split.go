package strategy

// SplitRule decides whether a paired hand is split into two hands.
type SplitRule interface {
	Name() string
	// Split reports whether a pair of the given card rank should be split.
	// timesSplit is how many splits the round has already performed.
	Split(rank, timesSplit int) bool
}

// ReSplit allows splitting any pair, including hands created by a split.
type ReSplit struct{}

func (ReSplit) Name() string { return "ReSplit" }

func (ReSplit) Split(_, _ int) bool { return true }

// NoReSplit allows one split per round.
type NoReSplit struct{}

func (NoReSplit) Name() string { return "NoReSplit" }

func (NoReSplit) Split(_, timesSplit int) bool { return timesSplit == 0 }

// NoReSplitAces allows re-splitting except on aces.
type NoReSplitAces struct{}

func (NoReSplitAces) Name() string { return "NoReSplitAces" }

func (NoReSplitAces) Split(rank, timesSplit int) bool {
	if rank == 1 {
		return timesSplit == 0
	}
	return true
}

var splitTable = map[string]func() SplitRule{
	"ReSplit":       func() SplitRule { return ReSplit{} },
	"NoReSplit":     func() SplitRule { return NoReSplit{} },
	"NoReSplitAces": func() SplitRule { return NoReSplitAces{} },
}

// ResolveSplit returns a fresh split rule for the given key.
func ResolveSplit(key string) (SplitRule, error) {
	return resolve(AxisSplit, splitTable, key)
}

// SplitKeys lists the accepted split rule keys, sorted.
func SplitKeys() []string { return keys(splitTable) }
