// Package stats provides a single-pass streaming summarizer over session
// outcomes and a ranking of summaries across strategy variants.
package stats

import (
	"errors"
	"fmt"
	"io"
)

// ErrEmptyStream is returned when a summary is read before any value was
// observed: a mean over zero records is undefined, and saying so beats a
// division-by-zero.
var ErrEmptyStream = errors.New("empty stream: no records to summarize")

// Summary holds the running aggregates of a scalar stream. State is O(1)
// regardless of stream length; mean and edge are derived at read time.
type Summary struct {
	Count int64
	Sum   float64
	Min   float64
	Max   float64
}

// Observe folds one value into the summary.
func (s *Summary) Observe(x float64) {
	if s.Count == 0 {
		s.Min = x
		s.Max = x
	} else {
		if x < s.Min {
			s.Min = x
		}
		if x > s.Max {
			s.Max = x
		}
	}
	s.Count++
	s.Sum += x
}

// Mean returns Sum/Count, or ErrEmptyStream when nothing was observed.
func (s Summary) Mean() (float64, error) {
	if s.Count == 0 {
		return 0, ErrEmptyStream
	}
	return s.Sum / float64(s.Count), nil
}

// Edge returns the house edge 1 - mean/referenceStake. The reference stake is
// always caller-supplied; there is no implicit constant.
func (s Summary) Edge(referenceStake float64) (float64, error) {
	mean, err := s.Mean()
	if err != nil {
		return 0, err
	}
	if referenceStake == 0 {
		return 0, fmt.Errorf("reference stake must be nonzero")
	}
	return 1 - mean/referenceStake, nil
}

// Summarize drains a scalar stream in one pass. next returns io.EOF when the
// stream is exhausted; any other error aborts the pass. An exhausted stream
// that yielded no values is ErrEmptyStream.
func Summarize(next func() (float64, error)) (Summary, error) {
	var s Summary
	for {
		v, err := next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return Summary{}, err
		}
		s.Observe(v)
	}
	if s.Count == 0 {
		return Summary{}, ErrEmptyStream
	}
	return s, nil
}
