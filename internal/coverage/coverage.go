// Copyright 2026 The Timespans Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package coverage computes how a collection of closed integer intervals
// covers the time steps between its smallest start and its largest end.
package coverage

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/RaduBerinde/axisds"
	"github.com/RaduBerinde/axisds/regiontree"
)

// Interval is a closed interval [Start, End].
type Interval struct {
	Start, End int
}

func (i Interval) String() string {
	return fmt.Sprintf("[%d, %d]", i.Start, i.End)
}

// Result describes the coverage of a collection of intervals.
type Result struct {
	// Extent is the smallest interval enclosing all the intervals.
	Extent Interval
	// Gaps are the maximal runs of time steps inside Extent that no interval
	// covers, in ascending order.
	Gaps []Interval
	// Overlaps are the maximal runs of time steps covered by two or more
	// intervals, in ascending order.
	Overlaps []Interval
	// MaxDepth is the largest number of intervals covering a single step.
	MaxDepth int
}

// Contiguous returns true if every step in the extent is covered exactly once.
func (r Result) Contiguous() bool {
	return len(r.Gaps) == 0 && len(r.Overlaps) == 0
}

func (r Result) String() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "extent: %s\n", r.Extent)
	fmt.Fprintf(&buf, "max-depth: %d\n", r.MaxDepth)
	writeList := func(label string, l []Interval) {
		fmt.Fprintf(&buf, "%s:", label)
		if len(l) == 0 {
			buf.WriteString(" none")
		}
		for _, i := range l {
			fmt.Fprintf(&buf, " %s", i)
		}
		buf.WriteString("\n")
	}
	writeList("gaps", r.Gaps)
	writeList("overlaps", r.Overlaps)
	return buf.String()
}

// depth is the number of intervals covering a region. The zero value means the
// region is not covered and is not stored in the tree.
type depth int

// Analyze computes the coverage of the given intervals. It returns false if
// there are no intervals. Intervals with End < Start are ignored. An End of
// math.MaxInt is not supported.
func Analyze(intervals []Interval) (Result, bool) {
	// The region tree works with half-open boundaries, so the closed interval
	// [s, e] is stored as [s, e+1).
	rt := regiontree.Make(axisds.CompareFn[int](cmp.Compare[int]), func(a, b depth) bool { return a == b })
	var res Result
	n := 0
	for _, i := range intervals {
		if i.End < i.Start {
			continue
		}
		if n == 0 {
			res.Extent = i
		} else {
			res.Extent.Start = min(res.Extent.Start, i.Start)
			res.Extent.End = max(res.Extent.End, i.End)
		}
		n++
		rt.Update(i.Start, i.End+1, func(d depth) depth { return d + 1 })
	}
	if n == 0 {
		return Result{}, false
	}

	// Covered regions are enumerated in ascending order; the holes between
	// consecutive regions are the gaps.
	prevEnd := res.Extent.Start
	rt.EnumerateAll(func(start, end int, d depth) bool {
		if start > prevEnd {
			res.Gaps = append(res.Gaps, Interval{Start: prevEnd, End: start - 1})
		}
		prevEnd = end
		res.MaxDepth = max(res.MaxDepth, int(d))
		if d < 2 {
			return true
		}
		if k := len(res.Overlaps); k > 0 && res.Overlaps[k-1].End+1 == start {
			res.Overlaps[k-1].End = end - 1
		} else {
			res.Overlaps = append(res.Overlaps, Interval{Start: start, End: end - 1})
		}
		return true
	})
	return res, true
}
