// Copyright 2026 The Timespans Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package base

import "github.com/cockroachdb/errors"

// ErrInvalidRange marks errors produced when a span would end before it
// starts.
var ErrInvalidRange = errors.New("timespans: invalid range")

// ErrInvalidWeights marks errors produced when subdivision weights are empty,
// contain a non-positive fraction, repeat a name or do not sum to one.
var ErrInvalidWeights = errors.New("timespans: invalid weights")

// ErrEmptyGrouping marks errors produced when an aggregate is requested from a
// grouping without spans.
var ErrEmptyGrouping = errors.New("timespans: empty grouping")

// ErrEmptyGroupingSet marks errors produced when an aggregate is requested
// from a grouping set without groupings.
var ErrEmptyGroupingSet = errors.New("timespans: empty grouping set")

// ErrDuplicateName marks errors produced when a collection is constructed with
// the same name twice.
var ErrDuplicateName = errors.New("timespans: duplicate name")

// ErrNotContiguous marks errors returned by contiguity checks.
var ErrNotContiguous = errors.New("timespans: not contiguous")

// InvalidRangeErrorf formats according to a format specifier and returns the
// string as an error value that is marked as ErrInvalidRange.
func InvalidRangeErrorf(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrInvalidRange)
}

// InvalidWeightsErrorf formats according to a format specifier and returns the
// string as an error value that is marked as ErrInvalidWeights.
func InvalidWeightsErrorf(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrInvalidWeights)
}

// DuplicateNameErrorf formats according to a format specifier and returns the
// string as an error value that is marked as ErrDuplicateName.
func DuplicateNameErrorf(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrDuplicateName)
}

// NotContiguousErrorf formats according to a format specifier and returns the
// string as an error value that is marked as ErrNotContiguous.
func NotContiguousErrorf(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrNotContiguous)
}

// IsInvalidRangeError returns true if the given error indicates an invalid
// range.
func IsInvalidRangeError(err error) bool {
	return errors.Is(err, ErrInvalidRange)
}
