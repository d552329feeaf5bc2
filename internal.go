// Copyright 2026 The Timespans Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package timespans

import "github.com/views-platform/timespans/internal/base"

// Logger exports the base.Logger type.
type Logger = base.Logger

// DefaultLogger exports the base.DefaultLogger type.
type DefaultLogger = base.DefaultLogger

// NoopLogger exports the base.NoopLogger type.
type NoopLogger = base.NoopLogger

// ErrInvalidRange is a marker for errors produced when a span would end before
// it starts. Use errors.Is to test for it.
var ErrInvalidRange = base.ErrInvalidRange

// ErrInvalidWeights is a marker for errors produced when subdivision weights
// are empty, contain a non-positive fraction or a duplicate name, or do not
// sum to one.
var ErrInvalidWeights = base.ErrInvalidWeights

// ErrEmptyGrouping is returned when an aggregate is requested from a grouping
// with no spans.
var ErrEmptyGrouping = base.ErrEmptyGrouping

// ErrEmptyGroupingSet is returned when an aggregate is requested from a
// grouping set with no groupings.
var ErrEmptyGroupingSet = base.ErrEmptyGroupingSet

// ErrDuplicateName is a marker for errors produced when a grouping or grouping
// set is constructed with the same name twice.
var ErrDuplicateName = base.ErrDuplicateName

// ErrNotContiguous is a marker for errors returned by CheckContiguous.
var ErrNotContiguous = base.ErrNotContiguous

// IsInvalidRangeError returns true if the given error indicates that a span
// would end before it starts.
func IsInvalidRangeError(err error) bool {
	return base.IsInvalidRangeError(err)
}
