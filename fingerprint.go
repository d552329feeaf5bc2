// Copyright 2026 The Timespans Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package timespans

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint returns a hash of the span's bounds.
func (s Span) Fingerprint() uint64 {
	var buf [16]byte
	return xxhash.Sum64(s.appendBounds(buf[:0]))
}

func (s Span) appendBounds(buf []byte) []byte {
	buf = binary.LittleEndian.AppendUint64(buf, uint64(s.start))
	return binary.LittleEndian.AppendUint64(buf, uint64(s.end))
}

// Fingerprint returns a hash of the grouping's names and spans. Groupings that
// are Equal have the same fingerprint regardless of insertion order, so two
// pipeline stages can cheaply confirm that they agree on an allocation.
func (g Grouping) Fingerprint() uint64 {
	h := xxhash.New()
	g.writeTo(h)
	return h.Sum64()
}

func (g Grouping) writeTo(h *xxhash.Digest) {
	var buf []byte
	for _, name := range g.idx.sortedNames() {
		s, _ := g.Get(name)
		buf = binary.AppendUvarint(buf[:0], uint64(len(name)))
		buf = append(buf, name...)
		buf = s.appendBounds(buf)
		_, _ = h.Write(buf)
	}
}

// Fingerprint returns a hash of the set's names and groupings. Sets that are
// Equal have the same fingerprint regardless of insertion order.
func (gs GroupingSet) Fingerprint() uint64 {
	h := xxhash.New()
	var buf []byte
	for _, name := range gs.idx.sortedNames() {
		g, _ := gs.Get(name)
		buf = binary.AppendUvarint(buf[:0], uint64(len(name)))
		buf = append(buf, name...)
		buf = binary.AppendUvarint(buf, uint64(g.Len()))
		_, _ = h.Write(buf)
		g.writeTo(h)
	}
	return h.Sum64()
}
