// Copyright 2026 The Timespans Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package timespans models how a contiguous range of discrete time steps is
// divided into named sub-ranges, and how collections of such divisions are
// composed.
//
// There are three layered value types:
//
//   - Span is a closed interval [start, end] of time steps.
//   - Grouping is an ordered collection of named spans, e.g. the train,
//     validation and test periods of a forecasting run.
//   - GroupingSet is an ordered collection of named groupings.
//
// Values are immutable: every operation returns a new value and never modifies
// its receiver, so values can be shared freely, including across goroutines.
// Operations on a Grouping are defined by applying the corresponding Span
// operation to every span, and operations on a GroupingSet by applying the
// corresponding Grouping operation to every grouping.
//
// A typical flow allocates a global range across groups with
// Span.ToPartition, transforms each group independently with Map, repairs the
// resulting overlaps with NoOverlap and finally verifies the allocation with
// CheckContiguous:
//
//	g, err := span.ToPartition(Weights{{"train", 0.5}, {"test", 0.5}})
//	...
//	g, err = g.Map(func(s, e int) (int, int) { return s, e + 10 })
//	...
//	g, err = g.NoOverlap()
//
// Errors are marked with one of the Err* values and can be tested with
// errors.Is.
package timespans
