// Copyright 2026 The Timespans Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package timespans

import (
	"cmp"
	"math"
	"slices"

	"github.com/views-platform/timespans/internal/base"
)

// WeightsTolerance is the maximum difference from 1 that the sum of a Weights
// may have.
const WeightsTolerance = 1e-9

// roundingSlack is added to every proportional length before flooring it, so
// that products such as 0.29*100 = 28.999999999999996 floor to 29.
const roundingSlack = 1e-9

// Weight is the fraction of a span allocated to a name.
type Weight struct {
	Name     string
	Fraction float64
}

// Weights is an ordered list of fractions used to subdivide a span. The order
// is significant: sub-spans are laid out in weight order, and rounding
// decisions depend on it.
type Weights []Weight

// Validate returns an error marked ErrInvalidWeights if the weights are empty,
// contain a duplicate name or a fraction that is not positive, or if the
// fractions do not sum to 1 within WeightsTolerance.
func (w Weights) Validate() error {
	if len(w) == 0 {
		return base.InvalidWeightsErrorf("no weights")
	}
	seen := make(map[string]struct{}, len(w))
	var sum float64
	for _, x := range w {
		if !(x.Fraction > 0) {
			return base.InvalidWeightsErrorf("weight %q has non-positive fraction %v", x.Name, x.Fraction)
		}
		if _, ok := seen[x.Name]; ok {
			return base.InvalidWeightsErrorf("duplicate weight %q", x.Name)
		}
		seen[x.Name] = struct{}{}
		sum += x.Fraction
	}
	if math.Abs(sum-1) > WeightsTolerance {
		return base.InvalidWeightsErrorf("weights sum to %v, not 1", sum)
	}
	return nil
}

// RoundingPolicy decides which names receive the time steps left over after
// every name has been allocated the floor of its proportional share.
type RoundingPolicy uint8

const (
	// RemainderToLast allocates floor(fraction * length) to every weight but
	// the last, which receives everything that remains. This is the default
	// policy.
	RemainderToLast RoundingPolicy = iota
	// LargestRemainder allocates floor(fraction * length) to every weight, then
	// hands out the leftover steps one at a time to the weights with the
	// largest fractional remainders. Ties go to the earlier weight.
	LargestRemainder
)

func (p RoundingPolicy) String() string {
	switch p {
	case RemainderToLast:
		return "remainder-to-last"
	case LargestRemainder:
		return "largest-remainder"
	default:
		return "unknown"
	}
}

// allocate returns the length of every sub-span when subdividing total time
// steps. The lengths sum to total. The weights must be valid.
func (w Weights) allocate(total int, policy RoundingPolicy) ([]int, error) {
	lengths := make([]int, len(w))
	remainders := make([]float64, len(w))
	allocated := 0
	for i, x := range w {
		exact := x.Fraction * float64(total)
		if f := math.Floor(exact + roundingSlack); f < float64(total) {
			lengths[i] = int(f)
		} else {
			// Guards the conversion for totals near math.MaxInt.
			lengths[i] = total
		}
		remainders[i] = exact - float64(lengths[i])
		allocated += lengths[i]
	}

	switch policy {
	case RemainderToLast:
		last := len(w) - 1
		lengths[last] = total - (allocated - lengths[last])

	case LargestRemainder:
		leftover := total - allocated
		if leftover > 0 {
			order := make([]int, len(w))
			for i := range order {
				order[i] = i
			}
			slices.SortStableFunc(order, func(a, b int) int {
				return cmp.Compare(remainders[b], remainders[a])
			})
			for i := 0; i < leftover; i++ {
				lengths[order[i%len(order)]]++
			}
		} else if leftover < 0 {
			return nil, base.InvalidRangeErrorf("weights allocate %d steps out of %d", allocated, total)
		}

	default:
		return nil, base.InvalidWeightsErrorf("unknown rounding policy %d", policy)
	}

	for i, l := range lengths {
		if l <= 0 {
			return nil, base.InvalidRangeErrorf("weight %q receives %d of %d steps", w[i].Name, l, total)
		}
	}
	return lengths, nil
}
