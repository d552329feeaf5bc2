// Copyright 2026 The Timespans Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package timespans

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
	"github.com/views-platform/timespans/internal/base"
	"github.com/views-platform/timespans/internal/invariants"
)

// Span is a closed range of discrete time steps [Start, End]. Both bounds are
// inclusive and Start <= End always holds, so a Span covers at least one time
// step. The zero value is the single step [0, 0].
//
// Span is an immutable value; every operation returns a new Span.
type Span struct {
	start, end int
}

// MakeSpan returns the span [start, end]. It returns an error marked
// ErrInvalidRange if end < start.
func MakeSpan(start, end int) (Span, error) {
	if end < start {
		return Span{}, base.InvalidRangeErrorf("span [%d, %d] ends before it starts", start, end)
	}
	return Span{start: start, end: end}, nil
}

// Start returns the first time step of the span.
func (s Span) Start() int { return s.start }

// End returns the last time step of the span.
func (s Span) End() int { return s.end }

// Extent returns the bounds of the span. It exists for symmetry with
// Grouping.Extent and GroupingSet.Extent.
func (s Span) Extent() (start, end int) {
	return s.start, s.end
}

// Len returns the number of time steps in the span. The result overflows, and
// is not positive, for spans wider than math.MaxInt steps.
func (s Span) Len() int {
	return s.end - s.start + 1
}

// Contains returns true if the time step t lies within the span.
func (s Span) Contains(t int) bool {
	return s.start <= t && t <= s.end
}

// MapFunc transforms the bounds of a span.
type MapFunc func(start, end int) (int, int)

// Map applies f to the bounds of the span and returns the resulting span. It
// returns an error marked ErrInvalidRange if f produces bounds that end before
// they start.
//
// Map is the single extension point through which Grouping.Map and
// GroupingSet.Map are expressed.
func (s Span) Map(f MapFunc) (Span, error) {
	start, end := f(s.start, s.end)
	res, err := MakeSpan(start, end)
	if err != nil {
		return Span{}, errors.Wrapf(err, "mapping %s", s)
	}
	return res, nil
}

// Overlap returns the intersection of the two spans and true, or false if the
// spans do not share any time step. Note that this is an intersection and not
// a union: the result is never larger than either span.
func (s Span) Overlap(other Span) (Span, bool) {
	lo := max(s.start, other.start)
	hi := min(s.end, other.end)
	if lo > hi {
		return Span{}, false
	}
	return Span{start: lo, end: hi}, true
}

// Overlaps returns true if the spans share at least one time step.
func (s Span) Overlaps(other Span) bool {
	_, ok := s.Overlap(other)
	return ok
}

// ToPartition subdivides the span into contiguous, non-overlapping sub-spans
// proportional to the given weights, in weight order. The remainder left by
// rounding is absorbed by the last weight (see RemainderToLast).
func (s Span) ToPartition(w Weights) (Grouping, error) {
	return s.ToPartitionWithPolicy(w, RemainderToLast)
}

// ToPartitionWithPolicy is like ToPartition but uses the given policy to
// distribute the time steps that proportional rounding leaves over.
//
// The result always covers exactly [Start, End]: the first sub-span starts at
// Start, each following one starts right after the previous one ends, and the
// last one ends at End. It returns an error marked ErrInvalidWeights if the
// weights are invalid, and an error marked ErrInvalidRange if the span is too
// short for every weight to receive at least one time step or too wide for its
// length to be represented.
func (s Span) ToPartitionWithPolicy(w Weights, policy RoundingPolicy) (Grouping, error) {
	if err := w.Validate(); err != nil {
		return Grouping{}, err
	}
	n := s.Len()
	if n <= 0 {
		return Grouping{}, base.InvalidRangeErrorf("span %s is too wide to partition", s)
	}
	lengths, err := w.allocate(n, policy)
	if err != nil {
		return Grouping{}, errors.Wrapf(err, "partitioning %s", s)
	}
	names := make([]string, len(w))
	spans := make([]Span, len(w))
	cursor := s.start
	for i := range w {
		names[i] = w[i].Name
		spans[i] = Span{start: cursor, end: cursor + lengths[i] - 1}
		cursor = spans[i].end + 1
	}
	if invariants.Enabled && cursor != s.end+1 {
		panic(errors.AssertionFailedf("partition of %s ends at %d", s, cursor-1))
	}
	idx, err := makeNameIndex(names)
	if err != nil {
		// Names were validated with the weights.
		return Grouping{}, errors.NewAssertionErrorWithWrappedErrf(err, "partitioning %s", s)
	}
	return Grouping{idx: idx, spans: spans}, nil
}

func (s Span) String() string {
	return redact.StringWithoutMarkers(s)
}

// SafeFormat implements redact.SafeFormatter.
func (s Span) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("[%d, %d]", redact.Safe(s.start), redact.Safe(s.end))
}
