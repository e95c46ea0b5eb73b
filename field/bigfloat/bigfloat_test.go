// Copyright ©2024 The Bezcol Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/numgo/bezcol/errs"
	"github.com/numgo/bezcol/field"
)

func TestArithmetic(t *testing.T) {
	F := New(50)
	a := F.FromFloat64(3)
	b := F.FromFloat64(2)

	assert.InDelta(t, 5.0, a.Add(b).Float64(), 1e-12)
	assert.InDelta(t, 1.0, a.Sub(b).Float64(), 1e-12)
	assert.InDelta(t, 6.0, a.Mul(b).Float64(), 1e-12)
	assert.InDelta(t, 1.5, a.Quo(b).Float64(), 1e-12)
	assert.InDelta(t, 1.0/3.0, a.Recip().Float64(), 1e-12)
	assert.InDelta(t, -3.0, a.Neg().Float64(), 1e-12)
	assert.InDelta(t, 9.0, a.Pow(2).Float64(), 1e-12)
	assert.InDelta(t, 1.0/9.0, a.Pow(-2).Float64(), 1e-12)
}

func TestElementary(t *testing.T) {
	F := New(50)
	x := F.FromFloat64(1)

	assert.InDelta(t, math.Exp(1), x.Exp().Float64(), 1e-9)
	assert.InDelta(t, math.Sin(1), x.Sin().Float64(), 1e-9)
	assert.InDelta(t, math.Cos(1), x.Cos().Float64(), 1e-9)
	assert.InDelta(t, math.Sqrt(2), F.FromFloat64(2).Sqrt().Float64(), 1e-9)
}

func TestOrdering(t *testing.T) {
	F := New(30)
	a := F.FromFloat64(1)
	b := F.FromFloat64(2)

	assert.True(t, a.Less(b))
	assert.True(t, b.Greater(a))
	assert.False(t, a.Equal(b))
	assert.True(t, F.Zero().IsZero())
}

func TestPrecisionMismatchPanics(t *testing.T) {
	F1 := New(30)
	F2 := New(30)
	a := F1.FromFloat64(1)
	b := F2.FromFloat64(1)

	require.Panics(t, func() {
		_ = a.Add(b)
	})

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, errs.ErrPrecisionMismatch)
	}()
	a.Add(b)
}

func TestCloneIndependence(t *testing.T) {
	F1 := New(40)
	F2 := F1.Clone()
	var _ field.Field = F2

	require.NotSame(t, F1, F2)
	assert.Equal(t, F1.Precision(), F2.Precision())
}
