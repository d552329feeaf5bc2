// Copyright 2026 The Timespans Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package timespans

import (
	"cmp"
	"iter"
	"math"
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
	"github.com/views-platform/timespans/internal/base"
	"github.com/views-platform/timespans/internal/invariants"
)

// NamedSpan is a span along with its name inside a Grouping.
type NamedSpan struct {
	Name string
	Span Span
}

// Grouping is an ordered collection of named spans, e.g. the train,
// validation and test periods of a time range. Names are unique. Spans may
// overlap or leave gaps; Continuous and HasOverlap query those properties but
// construction does not enforce them.
//
// The insertion order of the spans is preserved by every operation.
//
// Grouping is an immutable value. The zero value is an empty grouping.
type Grouping struct {
	idx   nameIndex
	spans []Span
}

// MakeGrouping returns a grouping of the given spans, in the given order. It
// returns an error marked ErrDuplicateName if a name is used twice.
func MakeGrouping(spans ...NamedSpan) (Grouping, error) {
	names := make([]string, len(spans))
	g := Grouping{spans: make([]Span, len(spans))}
	for i := range spans {
		names[i] = spans[i].Name
		g.spans[i] = spans[i].Span
	}
	var err error
	if g.idx, err = makeNameIndex(names); err != nil {
		return Grouping{}, err
	}
	return g, nil
}

// Len returns the number of spans in the grouping.
func (g Grouping) Len() int {
	return len(g.spans)
}

// Names returns the names of the spans in insertion order.
func (g Grouping) Names() []string {
	return slices.Clone(g.idx.names)
}

// Get returns the span with the given name.
func (g Grouping) Get(name string) (Span, bool) {
	i, ok := g.idx.lookup(name)
	if !ok {
		return Span{}, false
	}
	return g.spans[i], true
}

// At returns the i-th span in insertion order.
func (g Grouping) At(i int) NamedSpan {
	invariants.CheckBounds(i, len(g.spans))
	return NamedSpan{Name: g.idx.names[i], Span: g.spans[i]}
}

// All returns an iterator over the named spans in insertion order.
func (g Grouping) All() iter.Seq2[string, Span] {
	return func(yield func(string, Span) bool) {
		for i := range g.spans {
			if !yield(g.idx.names[i], g.spans[i]) {
				return
			}
		}
	}
}

// Extent returns the smallest start and the largest end of all the spans. It
// returns ErrEmptyGrouping if the grouping has no spans.
func (g Grouping) Extent() (start, end int, err error) {
	if len(g.spans) == 0 {
		return 0, 0, base.ErrEmptyGrouping
	}
	start, end = g.spans[0].Extent()
	for _, s := range g.spans[1:] {
		start = min(start, s.start)
		end = max(end, s.end)
	}
	return start, end, nil
}

// sortedByStart returns the positions of the spans ordered by start. Spans
// with equal starts keep their insertion order.
func (g Grouping) sortedByStart() []int {
	order := make([]int, len(g.spans))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(g.spans[a].start, g.spans[b].start)
	})
	return order
}

// Continuous returns true if the spans, ordered by start, touch end to end
// with no gap and no overlap. A grouping with fewer than two spans is
// trivially continuous.
func (g Grouping) Continuous() bool {
	order := g.sortedByStart()
	for i := 1; i < len(order); i++ {
		prev := g.spans[order[i-1]]
		if prev.end == math.MaxInt || g.spans[order[i]].start != prev.end+1 {
			return false
		}
	}
	return true
}

// HasOverlap returns true if any two spans of the grouping share a time step.
func (g Grouping) HasOverlap() bool {
	order := g.sortedByStart()
	if len(order) == 0 {
		return false
	}
	// With spans ordered by start, a span overlaps some earlier span iff it
	// starts at or before the largest end seen so far.
	maxEnd := g.spans[order[0]].end
	for _, i := range order[1:] {
		if g.spans[i].start <= maxEnd {
			return true
		}
		maxEnd = max(maxEnd, g.spans[i].end)
	}
	return false
}

// OverlapPair describes two spans of a grouping that share time steps.
type OverlapPair struct {
	// A is the span that starts first (or was inserted first, on equal
	// starts).
	A, B string
	// Region is the intersection of the two spans.
	Region Span
}

// SafeFormat implements redact.SafeFormatter.
func (p OverlapPair) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("%s and %s at %s", p.A, p.B, p.Region)
}

func (p OverlapPair) String() string {
	return redact.StringWithoutMarkers(p)
}

// Overlaps returns every pair of spans that share a time step, ordered by the
// start of the first span of the pair.
func (g Grouping) Overlaps() []OverlapPair {
	var res []OverlapPair
	order := g.sortedByStart()
	for i, a := range order {
		for _, b := range order[i+1:] {
			if g.spans[b].start > g.spans[a].end {
				// All later spans start after a ends.
				break
			}
			region, _ := g.spans[a].Overlap(g.spans[b])
			res = append(res, OverlapPair{A: g.idx.names[a], B: g.idx.names[b], Region: region})
		}
	}
	return res
}

// Map applies f to every span and returns the resulting grouping, with the
// same names in the same order. It returns the first error encountered, which
// is marked ErrInvalidRange if f produced an invalid span.
func (g Grouping) Map(f MapFunc) (Grouping, error) {
	res := Grouping{idx: g.idx, spans: make([]Span, len(g.spans))}
	for i := range g.spans {
		var err error
		if res.spans[i], err = g.spans[i].Map(f); err != nil {
			return Grouping{}, errors.Wrapf(err, "span %q", g.idx.names[i])
		}
	}
	return res, nil
}

// NoOverlap resolves overlaps between spans. Spans are visited in order of
// start; whenever a span starts at or before the end of the previous one, its
// start is moved to right after that end. Ends are never changed and the first
// span is never modified. The result has the same names in the same order as
// g.
//
// If moving a start would place it after the span's end (the span lies
// entirely under the previous one), or past math.MaxInt, NoOverlap returns an
// error marked ErrInvalidRange.
func (g Grouping) NoOverlap() (Grouping, error) {
	return g.NoOverlapWithOptions(nil)
}

// NoOverlapWithOptions is like NoOverlap but reports every adjusted span to
// opts.Logger.
func (g Grouping) NoOverlapWithOptions(opts *Options) (Grouping, error) {
	opts = opts.EnsureDefaults()
	res := Grouping{idx: g.idx, spans: slices.Clone(g.spans)}
	order := g.sortedByStart()
	for k := 1; k < len(order); k++ {
		prev, cur := res.spans[order[k-1]], res.spans[order[k]]
		if cur.start > prev.end {
			continue
		}
		name, prevName := g.idx.names[order[k]], g.idx.names[order[k-1]]
		if prev.end == math.MaxInt {
			return Grouping{}, base.InvalidRangeErrorf(
				"resolving overlap of %q with %q: %s ends at the last representable time step",
				name, prevName, prev)
		}
		adjusted, err := MakeSpan(prev.end+1, cur.end)
		if err != nil {
			return Grouping{}, errors.Wrapf(err, "resolving overlap of %q with %q", name, prevName)
		}
		opts.Logger.Infof("timespans: span %q moved from %s to %s", name, cur, adjusted)
		res.spans[order[k]] = adjusted
	}
	if invariants.Enabled && res.HasOverlap() {
		panic(errors.AssertionFailedf("overlap remains after resolution: %s", res))
	}
	return res, nil
}

// Equal returns true if both groupings map the same names to the same spans.
// Insertion order is not compared.
func (g Grouping) Equal(other Grouping) bool {
	if len(g.spans) != len(other.spans) {
		return false
	}
	for i, name := range g.idx.names {
		if s, ok := other.Get(name); !ok || s != g.spans[i] {
			return false
		}
	}
	return true
}

func (g Grouping) String() string {
	return redact.StringWithoutMarkers(g)
}

// SafeFormat implements redact.SafeFormatter. Names are user data and are
// redactable; bounds are safe.
func (g Grouping) SafeFormat(w redact.SafePrinter, _ rune) {
	w.SafeRune('{')
	for i := range g.spans {
		if i > 0 {
			w.SafeRune(' ')
		}
		w.Printf("%s:%s", g.idx.names[i], g.spans[i])
	}
	w.SafeRune('}')
}
