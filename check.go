// Copyright 2026 The Timespans Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package timespans

import (
	"math"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
	"github.com/views-platform/timespans/internal/base"
	"github.com/views-platform/timespans/internal/coverage"
)

// Coverage describes how the spans of a grouping cover the time steps of its
// extent.
type Coverage struct {
	// Extent is the smallest span enclosing every span of the grouping.
	Extent Span
	// Gaps are the maximal runs of time steps inside Extent that no span
	// covers, in ascending order.
	Gaps []Span
	// Overlaps are the maximal runs of time steps covered by two or more spans,
	// in ascending order.
	Overlaps []Span
	// MaxDepth is the largest number of spans covering a single time step.
	MaxDepth int
}

// Contiguous returns true if every time step of the extent is covered by
// exactly one span.
func (c Coverage) Contiguous() bool {
	return len(c.Gaps) == 0 && len(c.Overlaps) == 0
}

// SafeFormat implements redact.SafeFormatter.
func (c Coverage) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("extent %s depth %d", c.Extent, redact.Safe(c.MaxDepth))
	for _, s := range c.Gaps {
		w.Printf(" gap %s", s)
	}
	for _, s := range c.Overlaps {
		w.Printf(" overlap %s", s)
	}
}

func (c Coverage) String() string {
	return redact.StringWithoutMarkers(c)
}

// Coverage computes the coverage of the grouping. It returns ErrEmptyGrouping
// if the grouping has no spans, and an error marked ErrInvalidRange if a span
// ends at math.MaxInt.
func (g Grouping) Coverage() (Coverage, error) {
	intervals := make([]coverage.Interval, len(g.spans))
	for i, s := range g.spans {
		if s.end == math.MaxInt {
			return Coverage{}, base.InvalidRangeErrorf("span %q %s ends at the last representable time step",
				g.idx.names[i], s)
		}
		intervals[i] = coverage.Interval{Start: s.start, End: s.end}
	}
	res, ok := coverage.Analyze(intervals)
	if !ok {
		return Coverage{}, base.ErrEmptyGrouping
	}
	toSpans := func(l []coverage.Interval) []Span {
		if len(l) == 0 {
			return nil
		}
		spans := make([]Span, len(l))
		for i := range l {
			spans[i] = Span{start: l[i].Start, end: l[i].End}
		}
		return spans
	}
	return Coverage{
		Extent:   Span{start: res.Extent.Start, end: res.Extent.End},
		Gaps:     toSpans(res.Gaps),
		Overlaps: toSpans(res.Overlaps),
		MaxDepth: res.MaxDepth,
	}, nil
}

// CheckContiguous verifies that the grouping allocates its extent without gaps
// and without overlaps. It returns nil if so, and otherwise an error marked
// ErrNotContiguous describing every gap and every overlapping pair of spans.
// An empty grouping fails with an error marked both ErrNotContiguous and
// ErrEmptyGrouping.
func (g Grouping) CheckContiguous() error {
	c, err := g.Coverage()
	if err != nil {
		return errors.Mark(err, base.ErrNotContiguous)
	}
	if c.Contiguous() {
		return nil
	}
	var problems []string
	for _, gap := range c.Gaps {
		problems = append(problems, "gap "+gap.String())
	}
	for _, p := range g.Overlaps() {
		problems = append(problems, "overlap "+p.String())
	}
	return base.NotContiguousErrorf("grouping %s is not contiguous: %s", g, strings.Join(problems, "; "))
}
