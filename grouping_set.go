// Copyright 2026 The Timespans Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package timespans

import (
	"iter"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
	"github.com/views-platform/timespans/internal/base"
	"github.com/views-platform/timespans/internal/invariants"
)

// NamedGrouping is a grouping along with its name inside a GroupingSet.
type NamedGrouping struct {
	Name     string
	Grouping Grouping
}

// GroupingSet is an ordered collection of named groupings. Names are unique;
// there is no invariant across groupings.
//
// GroupingSet is an immutable value. The zero value is an empty set.
type GroupingSet struct {
	idx       nameIndex
	groupings []Grouping
}

// MakeGroupingSet returns a set of the given groupings, in the given order. It
// returns an error marked ErrDuplicateName if a name is used twice.
func MakeGroupingSet(groupings ...NamedGrouping) (GroupingSet, error) {
	names := make([]string, len(groupings))
	gs := GroupingSet{groupings: make([]Grouping, len(groupings))}
	for i := range groupings {
		names[i] = groupings[i].Name
		gs.groupings[i] = groupings[i].Grouping
	}
	var err error
	if gs.idx, err = makeNameIndex(names); err != nil {
		return GroupingSet{}, err
	}
	return gs, nil
}

// Len returns the number of groupings in the set.
func (gs GroupingSet) Len() int {
	return len(gs.groupings)
}

// Names returns the names of the groupings in insertion order.
func (gs GroupingSet) Names() []string {
	return slices.Clone(gs.idx.names)
}

// Get returns the grouping with the given name.
func (gs GroupingSet) Get(name string) (Grouping, bool) {
	i, ok := gs.idx.lookup(name)
	if !ok {
		return Grouping{}, false
	}
	return gs.groupings[i], true
}

// At returns the i-th grouping in insertion order.
func (gs GroupingSet) At(i int) NamedGrouping {
	invariants.CheckBounds(i, len(gs.groupings))
	return NamedGrouping{Name: gs.idx.names[i], Grouping: gs.groupings[i]}
}

// All returns an iterator over the named groupings in insertion order.
func (gs GroupingSet) All() iter.Seq2[string, Grouping] {
	return func(yield func(string, Grouping) bool) {
		for i := range gs.groupings {
			if !yield(gs.idx.names[i], gs.groupings[i]) {
				return
			}
		}
	}
}

// Extent returns the smallest start and the largest end over every span of
// every grouping. It returns ErrEmptyGroupingSet if the set has no groupings,
// and an error wrapping ErrEmptyGrouping if one of the groupings has no spans.
func (gs GroupingSet) Extent() (start, end int, err error) {
	if len(gs.groupings) == 0 {
		return 0, 0, base.ErrEmptyGroupingSet
	}
	for i, g := range gs.groupings {
		s, e, gErr := g.Extent()
		if gErr != nil {
			return 0, 0, errors.Wrapf(gErr, "grouping %q", gs.idx.names[i])
		}
		if i == 0 {
			start, end = s, e
		} else {
			start, end = min(start, s), max(end, e)
		}
	}
	return start, end, nil
}

// Map applies f to every span of every grouping. Names and order are
// preserved at both levels.
func (gs GroupingSet) Map(f MapFunc) (GroupingSet, error) {
	return gs.PMap(func(g Grouping) (Grouping, error) {
		return g.Map(f)
	})
}

// PMap applies a whole-grouping transformation to every grouping
// independently, e.g.
//
//	gs.PMap(Grouping.NoOverlap)
//
// The result has the same names in the same order.
func (gs GroupingSet) PMap(f func(Grouping) (Grouping, error)) (GroupingSet, error) {
	res := GroupingSet{idx: gs.idx, groupings: make([]Grouping, len(gs.groupings))}
	for i := range gs.groupings {
		var err error
		if res.groupings[i], err = f(gs.groupings[i]); err != nil {
			return GroupingSet{}, errors.Wrapf(err, "grouping %q", gs.idx.names[i])
		}
	}
	return res, nil
}

// NoOverlap resolves overlaps within every grouping. It is shorthand for
// gs.PMap(Grouping.NoOverlap).
func (gs GroupingSet) NoOverlap() (GroupingSet, error) {
	return gs.PMap(Grouping.NoOverlap)
}

// HasOverlap returns true if any grouping of the set has overlapping spans.
// Spans of different groupings are never compared.
func (gs GroupingSet) HasOverlap() bool {
	for _, g := range gs.groupings {
		if g.HasOverlap() {
			return true
		}
	}
	return false
}

// CheckContiguous verifies every grouping with Grouping.CheckContiguous. When
// a single grouping fails its error is returned wrapped with the grouping's
// name; when several fail the returned error, marked ErrNotContiguous, lists
// all of them. An empty set fails with an error marked both ErrNotContiguous
// and ErrEmptyGroupingSet.
func (gs GroupingSet) CheckContiguous() error {
	if len(gs.groupings) == 0 {
		return errors.Mark(base.ErrEmptyGroupingSet, base.ErrNotContiguous)
	}
	var failed []error
	var msgs []string
	for i, g := range gs.groupings {
		if err := g.CheckContiguous(); err != nil {
			err = errors.Wrapf(err, "grouping %q", gs.idx.names[i])
			failed = append(failed, err)
			msgs = append(msgs, err.Error())
		}
	}
	switch len(failed) {
	case 0:
		return nil
	case 1:
		return failed[0]
	default:
		return base.NotContiguousErrorf("%d groupings are not contiguous: %s",
			redact.Safe(len(failed)), strings.Join(msgs, "; "))
	}
}

// Equal returns true if both sets map the same names to equal groupings.
// Insertion order is not compared.
func (gs GroupingSet) Equal(other GroupingSet) bool {
	if len(gs.groupings) != len(other.groupings) {
		return false
	}
	for i, name := range gs.idx.names {
		if g, ok := other.Get(name); !ok || !g.Equal(gs.groupings[i]) {
			return false
		}
	}
	return true
}

func (gs GroupingSet) String() string {
	return redact.StringWithoutMarkers(gs)
}

// SafeFormat implements redact.SafeFormatter.
func (gs GroupingSet) SafeFormat(w redact.SafePrinter, _ rune) {
	w.SafeRune('{')
	for i := range gs.groupings {
		if i > 0 {
			w.SafeRune(' ')
		}
		w.Printf("%s:%s", gs.idx.names[i], gs.groupings[i])
	}
	w.SafeRune('}')
}
