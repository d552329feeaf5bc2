// Copyright 2026 The Timespans Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package strparse provides facilities for parsing the textual notation of
// spans and groupings, intended for use in tests and debug input.
package strparse

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/cockroachdb/errors"
)

// Separators are the runes that always form a token on their own in the span
// notation, e.g. `a:[1, 5]` or `A:{a:[1, 5] b:[6, 10]}`.
const Separators = "[]{}:,"

// Parser splits a string into tokens and offers helpers for consuming them.
// Tokens are separated by whitespace; in addition every separator rune is
// always a separate token. For example, with the default separators the
// string `train:[1, 10]` results in tokens `train`, `:`, `[`, `1`, `,`, `10`,
// `]`.
//
// All Parser methods throw panics instead of returning errors. The code that
// uses a Parser can recover them and convert them to errors.
type Parser struct {
	original   string
	separators string
	tokens     []token
	lastToken  token
}

type token struct {
	tok    string
	offset int
}

// MakeParser constructs a new Parser that converts any instance of the runes
// contained in separators into separate tokens, and consumes the provided
// input string.
func MakeParser(separators string, input string) Parser {
	p := Parser{original: input, separators: separators}
	start := -1
	flush := func(end int) {
		if start >= 0 {
			p.tokens = append(p.tokens, token{tok: input[start:end], offset: start})
			start = -1
		}
	}
	for i, r := range input {
		switch {
		case unicode.IsSpace(r):
			flush(i)
		case strings.ContainsRune(separators, r):
			flush(i)
			p.tokens = append(p.tokens, token{tok: string(r), offset: i})
		case start < 0:
			start = i
		}
	}
	flush(len(input))
	return p
}

// Done returns true if there are no more tokens.
func (p *Parser) Done() bool {
	return len(p.tokens) == 0
}

// Offset returns the offset of the next token.
func (p *Parser) Offset() int {
	if p.Done() {
		return len(p.original)
	}
	return p.tokens[0].offset
}

// Peek returns the next token, without consuming the token. Returns "" if there
// are no more tokens.
func (p *Parser) Peek() string {
	if p.Done() {
		p.lastToken = token{}
		return ""
	}
	p.lastToken = p.tokens[0]
	return p.tokens[0].tok
}

// Next returns the next token, or "" if there are no more tokens.
func (p *Parser) Next() string {
	res := p.Peek()
	if res != "" {
		p.tokens = p.tokens[1:]
	}
	return res
}

// TryNext consumes the next token if it equals tok and reports whether it did.
func (p *Parser) TryNext(tok string) bool {
	if p.Peek() == tok {
		p.Next()
		return true
	}
	return false
}

// Expect consumes the next tokens, verifying that they exactly match the
// arguments.
func (p *Parser) Expect(tokens ...string) {
	for _, tok := range tokens {
		if res := p.Next(); res != tok {
			p.Errf("expected %q, got %q", tok, res)
		}
	}
}

// Remaining returns all the remaining tokens, separated by spaces.
func (p *Parser) Remaining() string {
	var buf strings.Builder
	for _, tok := range p.tokens {
		if buf.Len() > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(tok.tok)
	}
	p.tokens = nil
	return buf.String()
}

// Int parses the next token as an integer.
func (p *Parser) Int() int {
	x, err := strconv.Atoi(p.Next())
	if err != nil {
		p.Errf("cannot parse number: %v", err)
	}
	return x
}

// Name parses the next token as a name. Names are any token that is not one
// of the parser's separators.
func (p *Parser) Name() string {
	name := p.Next()
	if name == "" || strings.ContainsAny(name, p.separators) {
		p.Errf("expected name, got %q", name)
	}
	return name
}

// Bounds parses a bracketed pair of integers of the form "[start, end]". The
// bounds are not validated.
func (p *Parser) Bounds() (start, end int) {
	p.Expect("[")
	start = p.Int()
	p.Expect(",")
	end = p.Int()
	p.Expect("]")
	return start, end
}

// Errf panics with an error which includes the original string and the last
// token.
func (p *Parser) Errf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	panic(errors.Errorf("error parsing %q at token %q: %s", p.original, p.lastToken.tok, msg))
}
