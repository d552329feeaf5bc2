// Copyright 2026 The Timespans Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package timespans

import (
	"slices"

	"github.com/cockroachdb/swiss"
	"github.com/views-platform/timespans/internal/base"
)

// nameIndex records the names of a collection in insertion order, along with
// a lookup table from name to position. A nameIndex is never modified after
// construction, so values derived from a collection (e.g. by Map) share it.
type nameIndex struct {
	names []string
	pos   *swiss.Map[string, int]
}

// makeNameIndex builds the index for the given names. It returns an error
// marked ErrDuplicateName if a name appears twice.
func makeNameIndex(names []string) (nameIndex, error) {
	idx := nameIndex{
		names: names,
		pos:   &swiss.Map[string, int]{},
	}
	idx.pos.Init(len(names))
	for i, name := range names {
		if j, ok := idx.pos.Get(name); ok {
			return nameIndex{}, base.DuplicateNameErrorf("name %q appears at positions %d and %d", name, j, i)
		}
		idx.pos.Put(name, i)
	}
	return idx, nil
}

func (x nameIndex) len() int {
	return len(x.names)
}

// lookup returns the position of the given name.
func (x nameIndex) lookup(name string) (int, bool) {
	if x.pos == nil {
		return 0, false
	}
	return x.pos.Get(name)
}

// sortedNames returns a copy of the names in lexicographic order.
func (x nameIndex) sortedNames() []string {
	names := slices.Clone(x.names)
	slices.Sort(names)
	return names
}
