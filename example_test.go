// Copyright 2026 The Timespans Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package timespans_test

import (
	"fmt"
	"log"

	"github.com/views-platform/timespans"
)

func Example() {
	span, err := timespans.MakeSpan(1, 100)
	if err != nil {
		log.Fatal(err)
	}
	g, err := span.ToPartition(timespans.Weights{
		{Name: "train", Fraction: 0.5},
		{Name: "validation", Fraction: 0.25},
		{Name: "test", Fraction: 0.25},
	})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(g)

	// Extending every period by ten steps makes them overlap.
	g, err = g.Map(func(start, end int) (int, int) { return start, end + 10 })
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(g.HasOverlap())

	g, err = g.NoOverlap()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(g)
	fmt.Println(g.CheckContiguous())
	// Output:
	// {train:[1, 50] validation:[51, 75] test:[76, 100]}
	// true
	// {train:[1, 60] validation:[61, 85] test:[86, 110]}
	// <nil>
}

func ExampleGroupingSet_PMap() {
	gs := timespans.ParseGroupingSet("A:{a:[1, 30] b:[20, 40]} B:{a:[1, 10] b:[11, 20]}")
	gs, err := gs.PMap(timespans.Grouping.NoOverlap)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(gs)
	start, end, err := gs.Extent()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(start, end)
	// Output:
	// {A:{a:[1, 30] b:[31, 40]} B:{a:[1, 10] b:[11, 20]}}
	// 1 40
}
