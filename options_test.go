// Copyright 2026 The Timespans Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package timespans

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptionsEnsureDefaults(t *testing.T) {
	var opts *Options
	opts = opts.EnsureDefaults()
	require.Equal(t, NoopLogger{}, opts.Logger)

	logger := DefaultLogger{}
	opts = (&Options{Logger: logger}).EnsureDefaults()
	require.Equal(t, logger, opts.Logger)
}

func TestOptionsClone(t *testing.T) {
	var opts *Options
	require.Equal(t, &Options{}, opts.Clone())

	opts = &Options{Logger: NoopLogger{}}
	c := opts.Clone()
	require.Equal(t, opts, c)
	c.Logger = DefaultLogger{}
	require.Equal(t, NoopLogger{}, opts.Logger)
}
