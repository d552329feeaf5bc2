// Copyright 2026 The Timespans Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package timespans

import (
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// FormatTable renders the set as a table with one row per span, in insertion
// order.
func (gs GroupingSet) FormatTable() string {
	var buf strings.Builder
	tbl := tablewriter.NewWriter(&buf)
	tbl.SetAutoFormatHeaders(false)
	tbl.SetHeader([]string{"Grouping", "Name", "Start", "End", "Len"})
	for gName, g := range gs.All() {
		for name, s := range g.All() {
			tbl.Append([]string{
				gName,
				name,
				strconv.Itoa(s.start),
				strconv.Itoa(s.end),
				strconv.Itoa(s.Len()),
			})
		}
	}
	tbl.Render()
	return buf.String()
}
