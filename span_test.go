// Copyright 2026 The Timespans Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package timespans

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
	"github.com/stretchr/testify/require"
)

func TestMakeSpan(t *testing.T) {
	s, err := MakeSpan(1, 10)
	require.NoError(t, err)
	require.Equal(t, 1, s.Start())
	require.Equal(t, 10, s.End())
	require.Equal(t, 10, s.Len())
	start, end := s.Extent()
	require.Equal(t, 1, start)
	require.Equal(t, 10, end)
	require.True(t, s.Contains(1))
	require.True(t, s.Contains(10))
	require.False(t, s.Contains(11))

	s, err = MakeSpan(3, 3)
	require.NoError(t, err)
	require.Equal(t, 1, s.Len())

	_, err = MakeSpan(4, 3)
	require.True(t, errors.Is(err, ErrInvalidRange))
	require.True(t, IsInvalidRangeError(err))
	require.Equal(t, "span [4, 3] ends before it starts", err.Error())

	var zero Span
	require.Equal(t, "[0, 0]", zero.String())
	require.Equal(t, 1, zero.Len())
}

func TestSpanMap(t *testing.T) {
	s := ParseSpan("[1, 10]")

	res, err := s.Map(func(start, end int) (int, int) { return 1, 1 })
	require.NoError(t, err)
	require.Equal(t, ParseSpan("[1, 1]"), res)

	clamp := func(t int) int { return min(t, 5) }
	res, err = s.Map(func(start, end int) (int, int) { return clamp(start), clamp(end) })
	require.NoError(t, err)
	require.Equal(t, ParseSpan("[1, 5]"), res)

	res, err = s.Map(func(start, end int) (int, int) { return start + 1, end - 1 })
	require.NoError(t, err)
	require.Equal(t, ParseSpan("[2, 9]"), res)

	_, err = s.Map(func(start, end int) (int, int) { return end, start })
	require.True(t, errors.Is(err, ErrInvalidRange))

	// The receiver is never modified.
	require.Equal(t, ParseSpan("[1, 10]"), s)
}

func TestSpanOverlap(t *testing.T) {
	res, ok := ParseSpan("[1, 5]").Overlap(ParseSpan("[4, 7]"))
	require.True(t, ok)
	require.Equal(t, ParseSpan("[4, 5]"), res)

	_, ok = ParseSpan("[1, 3]").Overlap(ParseSpan("[4, 7]"))
	require.False(t, ok)
	require.False(t, ParseSpan("[1, 3]").Overlaps(ParseSpan("[4, 7]")))
	require.True(t, ParseSpan("[1, 4]").Overlaps(ParseSpan("[4, 7]")))
}

// TestSpanOverlapRandomized checks Overlap against stepping through every time
// step.
func TestSpanOverlapRandomized(t *testing.T) {
	randSpan := func() Span {
		s := rand.IntN(40) - 20
		return Span{start: s, end: s + rand.IntN(10)}
	}
	for i := 0; i < 1000; i++ {
		a, b := randSpan(), randSpan()
		var expected []int
		for step := a.start; step <= a.end; step++ {
			if b.Contains(step) {
				expected = append(expected, step)
			}
		}
		res, ok := a.Overlap(b)
		require.Equal(t, len(expected) > 0, ok, "%s %s", a, b)
		if ok {
			require.Equal(t, expected[0], res.start)
			require.Equal(t, expected[len(expected)-1], res.end)
			other, _ := b.Overlap(a)
			require.Equal(t, res, other)
		}
	}
}

func TestSpanToPartition(t *testing.T) {
	g, err := ParseSpan("[1, 10]").ToPartition(Weights{{"a", .5}, {"b", .5}})
	require.NoError(t, err)
	require.True(t, g.Equal(ParseGrouping("{a:[1, 5] b:[6, 10]}")))

	g, err = ParseSpan("[1, 100]").ToPartition(Weights{{"a", .25}, {"b", .25}, {"c", .5}})
	require.NoError(t, err)
	require.True(t, g.Equal(ParseGrouping("{a:[1, 25] b:[26, 50] c:[51, 100]}")))
	require.Equal(t, []string{"a", "b", "c"}, g.Names())

	_, err = ParseSpan("[1, 10]").ToPartition(nil)
	require.True(t, errors.Is(err, ErrInvalidWeights))
	_, err = ParseSpan("[1, 10]").ToPartition(Weights{{"a", 0}, {"b", 1}})
	require.True(t, errors.Is(err, ErrInvalidWeights))
	_, err = ParseSpan("[1, 10]").ToPartition(Weights{{"a", .5}, {"b", .5 + 1e-6}})
	require.True(t, errors.Is(err, ErrInvalidWeights))
	_, err = ParseSpan("[1, 10]").ToPartitionWithPolicy(Weights{{"a", 1}}, RoundingPolicy(7))
	require.True(t, errors.Is(err, ErrInvalidWeights))

	// Tolerance: fractions that only sum to 1 approximately are accepted.
	_, err = ParseSpan("[1, 10]").ToPartition(Weights{{"a", 1.0 / 3}, {"b", 1.0 / 3}, {"c", 1.0 / 3}})
	require.NoError(t, err)

	_, err = ParseSpan("[1, 2]").ToPartition(Weights{{"a", .25}, {"b", .25}, {"c", .5}})
	require.True(t, errors.Is(err, ErrInvalidRange))
}

func TestSpanToPartitionWide(t *testing.T) {
	for _, s := range []Span{{start: 0, end: math.MaxInt}, {start: math.MinInt, end: math.MaxInt}} {
		_, err := s.ToPartition(Weights{{"a", .5}, {"b", .5}})
		require.True(t, errors.Is(err, ErrInvalidRange), "%s", s)
		require.Contains(t, err.Error(), "too wide to partition")
	}

	s := Span{start: 1, end: math.MaxInt}
	require.Equal(t, math.MaxInt, s.Len())
	for _, policy := range []RoundingPolicy{RemainderToLast, LargestRemainder} {
		g, err := s.ToPartitionWithPolicy(Weights{{"a", 1}}, policy)
		require.NoError(t, err)
		a, _ := g.Get("a")
		require.Equal(t, s, a, "%s", policy)
	}

	g, err := s.ToPartition(Weights{{"a", .5}, {"b", .5}})
	require.NoError(t, err)
	a, _ := g.Get("a")
	b, _ := g.Get("b")
	require.Equal(t, Span{start: 1, end: 1 << 62}, a)
	require.Equal(t, Span{start: 1<<62 + 1, end: math.MaxInt}, b)
}

// TestSpanToPartitionRandomized checks that subdivision covers the source span
// exactly, without gaps or overlaps, under both rounding policies.
func TestSpanToPartitionRandomized(t *testing.T) {
	names := []string{"a", "b", "c", "d", "e"}
	for i := 0; i < 500; i++ {
		n := 1 + rand.IntN(len(names))
		raw := make([]float64, n)
		var sum float64
		for j := range raw {
			raw[j] = 1 + rand.Float64()
			sum += raw[j]
		}
		w := make(Weights, n)
		for j := range w {
			w[j] = Weight{Name: names[j], Fraction: raw[j] / sum}
		}
		start := rand.IntN(100) - 50
		s := Span{start: start, end: start + n*(1+rand.IntN(50)) - 1}

		for _, policy := range []RoundingPolicy{RemainderToLast, LargestRemainder} {
			g, err := s.ToPartitionWithPolicy(w, policy)
			if errors.Is(err, ErrInvalidRange) {
				// A weight was too small to receive a time step.
				continue
			}
			require.NoError(t, err, "%s %v %s", s, w, policy)
			require.Equal(t, n, g.Len())
			require.False(t, g.HasOverlap())
			require.True(t, g.Continuous())
			require.NoError(t, g.CheckContiguous())
			gStart, gEnd, err := g.Extent()
			require.NoError(t, err)
			require.Equal(t, s.start, gStart)
			require.Equal(t, s.end, gEnd)
			require.Equal(t, s.start, g.At(0).Span.start)
			require.Equal(t, s.end, g.At(n-1).Span.end)

			if policy == LargestRemainder {
				// Every sub-span is within one step of its exact share.
				for j, x := range w {
					exact := x.Fraction * float64(s.Len())
					require.InDelta(t, exact, float64(g.At(j).Span.Len()), 1, "%s %v", s, w)
				}
			}
		}
	}
}

func TestSpanFormat(t *testing.T) {
	s := ParseSpan("[-3, 7]")
	require.Equal(t, "[-3, 7]", s.String())
	// Bounds are not sensitive and are never redacted.
	require.Equal(t, redact.RedactableString("[-3, 7]"), redact.Sprint(s))
	require.Equal(t, s, ParseSpan(s.String()))

	require.Panics(t, func() { ParseSpan("[3, 1]") })
	require.Panics(t, func() { ParseSpan("[1, 2] x") })
	require.Panics(t, func() { ParseSpan("1, 2") })
}

func TestSpanFingerprint(t *testing.T) {
	a := ParseSpan("[1, 10]")
	require.Equal(t, a.Fingerprint(), ParseSpan("[1, 10]").Fingerprint())
	require.NotEqual(t, a.Fingerprint(), ParseSpan("[1, 11]").Fingerprint())
	require.NotEqual(t, a.Fingerprint(), ParseSpan("[0, 10]").Fingerprint())
}
