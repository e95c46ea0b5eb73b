// Copyright ©2024 The Bezcol Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errs collects the error kinds of spec.md §7. A kind that
// carries no useful payload is a package-level sentinel; a kind with a
// payload is a small struct with an Error method — the same split the teacher
// uses in its own optimize-package errors.go (ErrInf/ErrNaN sentinels
// alongside the payload-carrying ErrMismatch struct).
package errs

import (
	"errors"
	"fmt"
)

// ErrPrecisionMismatch signals that Scalars from two different Field
// instances were combined. Combining precisions is undefined per
// spec.md §3; implementations must detect it, not silently degrade.
var ErrPrecisionMismatch = errors.New("bezcol: scalars from different precision contexts combined")

// ErrSingularMatrix signals that elimination in the block banded solver
// hit a zero pivot or a zero row-sum before a solution could be produced.
var ErrSingularMatrix = errors.New("bezcol: singular matrix")

// ErrConvergenceFailed signals that the tridiagonal eigensolver exceeded
// its 30-sweep cap for some eigenvalue.
var ErrConvergenceFailed = errors.New("bezcol: eigensolver did not converge")

// InvalidArgument reports an illegal constructor argument: a bad mesh
// count, an out-of-range layer parameter, non-ascending knots, ε≤0, and
// so on.
type InvalidArgument struct {
	Op     string
	Reason string
}

func (e *InvalidArgument) Error() string {
	return fmt.Sprintf("bezcol: invalid argument to %s: %s", e.Op, e.Reason)
}

// DimensionMismatch reports a matrix row count or right-hand-side length
// that does not match the expected l·(k+2).
type DimensionMismatch struct {
	Op       string
	Got      int
	Expected int
}

func (e *DimensionMismatch) Error() string {
	return fmt.Sprintf("bezcol: %s: dimension mismatch, got %d want %d", e.Op, e.Got, e.Expected)
}

// IndexOutOfRange is the payload of the μ-cache accessor's panic on a
// malformed index, per spec.md §7: a programmer error, not a condition
// callers are expected to recover from.
type IndexOutOfRange struct {
	Op    string
	Index int
	Bound int
}

func (e *IndexOutOfRange) Error() string {
	return fmt.Sprintf("bezcol: %s: index %d out of range [0,%d)", e.Op, e.Index, e.Bound)
}
