// Package strategy maps configuration keys to live policy objects. Each of
// the four axes (dealer, split, player, betting) owns a closed registry from
// key to factory; resolving a key constructs a fresh instance every time, so
// concurrent runs never share policy state.
package strategy

import (
	"fmt"
	"sort"
)

// Axis names used in resolution errors and the strategies listing.
const (
	AxisDealer  = "dealer_rule"
	AxisSplit   = "split_rule"
	AxisPlayer  = "player_rule"
	AxisBetting = "betting_rule"
)

// ResolutionError reports an unknown key on a registry axis. Known lists the
// accepted keys so the caller's error message is actionable as-is.
type ResolutionError struct {
	Axis  string
	Key   string
	Known []string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("unknown %s %q (known: %v)", e.Axis, e.Key, e.Known)
}

func resolve[T any](axis string, table map[string]func() T, key string) (T, error) {
	factory, ok := table[key]
	if !ok {
		var zero T
		return zero, &ResolutionError{Axis: axis, Key: key, Known: keys(table)}
	}
	return factory(), nil
}

func keys[T any](table map[string]func() T) []string {
	out := make([]string, 0, len(table))
	for k := range table {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
