// Copyright 2026 The Timespans Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package timespans

import (
	"github.com/views-platform/timespans/internal/strparse"
)

// ParseSpan parses the string form of a span, e.g. "[1, 5]". It panics on
// malformed input and is intended for tests and debug input.
func ParseSpan(s string) Span {
	p := strparse.MakeParser(strparse.Separators, s)
	span := parseSpan(&p)
	if !p.Done() {
		p.Errf("unexpected trailing input %q", p.Remaining())
	}
	return span
}

// ParseGrouping parses the string form of a grouping, e.g.
// "{a:[1, 5] b:[6, 10]}". The enclosing braces are optional. It panics on
// malformed input and is intended for tests and debug input.
//
// Names are single tokens: a grouping whose names contain whitespace or any of
// the runes of strparse.Separators prints with String but does not parse back.
func ParseGrouping(s string) Grouping {
	p := strparse.MakeParser(strparse.Separators, s)
	braced := p.TryNext("{")
	g := parseGroupingEntries(&p, braced)
	if !p.Done() {
		p.Errf("unexpected trailing input %q", p.Remaining())
	}
	return g
}

// ParseGroupingSet parses the string form of a grouping set, e.g.
// "{A:{a:[1, 10]} B:{a:[11, 20]}}". The outermost braces are optional. It
// panics on malformed input and is intended for tests and debug input. Names
// follow the same rules as in ParseGrouping.
func ParseGroupingSet(s string) GroupingSet {
	p := strparse.MakeParser(strparse.Separators, s)
	braced := p.TryNext("{")
	var entries []NamedGrouping
	for !p.Done() && p.Peek() != "}" {
		name := p.Name()
		p.Expect(":", "{")
		entries = append(entries, NamedGrouping{Name: name, Grouping: parseGroupingEntries(&p, true)})
	}
	if braced {
		p.Expect("}")
	}
	if !p.Done() {
		p.Errf("unexpected trailing input %q", p.Remaining())
	}
	gs, err := MakeGroupingSet(entries...)
	if err != nil {
		panic(err)
	}
	return gs
}

func parseSpan(p *strparse.Parser) Span {
	start, end := p.Bounds()
	s, err := MakeSpan(start, end)
	if err != nil {
		panic(err)
	}
	return s
}

// parseGroupingEntries parses `name:[start, end]` entries. If braced is set,
// the opening brace has already been consumed and the closing one is
// consumed here.
func parseGroupingEntries(p *strparse.Parser, braced bool) Grouping {
	var entries []NamedSpan
	for !p.Done() && p.Peek() != "}" {
		name := p.Name()
		p.Expect(":")
		entries = append(entries, NamedSpan{Name: name, Span: parseSpan(p)})
	}
	if braced {
		p.Expect("}")
	}
	g, err := MakeGrouping(entries...)
	if err != nil {
		panic(err)
	}
	return g
}
