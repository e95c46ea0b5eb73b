// Copyright ©2024 The Bezcol Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package trace is the module's ambient, off-by-default observability
// hook. It never gates correctness or control flow: the tridiagonal
// eigensolver and the Bakhvalov mesh generator are the only two places
// in the spec with an explicit bounded-iteration loop, and both emit one
// debug event per iteration here so a caller who cares can watch them
// converge.
//
// Grounded on itohio/EasyRobot's pkg/logger, which exposes a single
// package-level zerolog.Logger wrapping a console writer. This package
// follows the same shape but defaults to discarding output, since a
// library (unlike EasyRobot's robot control binary) should never write
// to stderr unless asked.
package trace

import (
	"io"

	"github.com/rs/zerolog"
)

// Log is the package-level logger used by the eigensolver and mesh
// packages. It discards everything until Enable is called.
var Log = zerolog.New(io.Discard).With().Timestamp().Logger()

// Enable redirects Log to w at the given level. Passing zerolog.Disabled
// restores the default discarding behavior.
func Enable(w io.Writer, level zerolog.Level) {
	Log = zerolog.New(w).Level(level).With().Timestamp().Logger()
}
