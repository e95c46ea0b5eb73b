// Copyright ©2024 The Bezcol Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package blocksolve implements the block banded solver of spec.md
// §4.8: a specialization of the Martin-Wilkinson/de Boor CWIDTH
// technique to the almost-block-diagonal structure the collocation
// assembler produces, factoring and solving A·x=b with scaled column
// pivoting while only ever touching a fixed-width window of columns
// per row.
//
// Grounded on gonum's mat/band.go compact row storage (a banded
// matrix stores only its nonzero diagonal band, indexed by a
// row-relative offset rather than an absolute column) generalized
// from a fixed symmetric bandwidth to the collocation system's
// block-described, variable effective bandwidth; error handling
// mirrors mat64/lu.go's Condition-error-on-singular convention,
// specialized to errs.ErrSingularMatrix.
package blocksolve

import (
	"github.com/numgo/bezcol/errs"
	"github.com/numgo/bezcol/field"
)

// Block describes one entry of spec.md §3's structure array: the
// number of matrix rows newly included at this stage, and the number
// of pivot steps permissible while those rows (plus whatever rows
// carried over unpivoted from the previous stage) are in view.
type Block struct {
	Rows       int
	PivotSteps int
}

// Banded is the compact almost-block-diagonal storage of spec.md §3
// "Stored compactly": every row stores exactly ColCount entries,
// column c of row r meaning the coefficient of whichever unknown is
// c columns to the right of row r's own leading (next-to-be-eliminated)
// unknown. The assembler is responsible for placing each row's
// entries in this band-relative frame so that it lines up with its
// neighbors; Solve itself never needs to know the absolute column a
// band-relative entry corresponds to.
type Banded struct {
	F         field.Field
	colCount  int
	rows      [][]field.Scalar
	structure []Block
}

// NewBanded allocates a zero-filled Banded matrix with the given
// per-row width and block structure. Total row count is the sum of
// structure[i].Rows.
func NewBanded(F field.Field, colCount int, structure []Block) *Banded {
	total := 0
	for _, b := range structure {
		total += b.Rows
	}
	rows := make([][]field.Scalar, total)
	zero := F.Zero()
	for i := range rows {
		row := make([]field.Scalar, colCount)
		for c := range row {
			row[c] = zero
		}
		rows[i] = row
	}
	blocks := make([]Block, len(structure))
	copy(blocks, structure)
	return &Banded{F: F, colCount: colCount, rows: rows, structure: blocks}
}

// Rows returns N, the total row (and unknown) count.
func (bd *Banded) Rows() int { return len(bd.rows) }

// ColCount returns the per-row compact storage width.
func (bd *Banded) ColCount() int { return bd.colCount }

// Set stores v at band-relative column col of row.
func (bd *Banded) Set(row, col int, v field.Scalar) {
	bd.rows[row][col] = v
}

// At returns the band-relative column col of row.
func (bd *Banded) At(row, col int) field.Scalar {
	return bd.rows[row][col]
}

// Solve factors and solves A·x=b per spec.md §4.8's Phase A (scaled
// column pivoting elimination) and Phase B (back substitution),
// consuming bd and b in place: per spec.md §9's move-semantics
// contract, neither bd nor b should be reused by the caller after
// Solve returns.
func (bd *Banded) Solve(b []field.Scalar) ([]field.Scalar, error) {
	n := bd.Rows()
	if len(b) != n {
		return nil, &errs.DimensionMismatch{Op: "blocksolve.Solve", Got: len(b), Expected: n}
	}
	F := bd.F

	d := make([]field.Scalar, n)
	pivot := -1
	lastRow := 0

	for _, blk := range bd.structure {
		for j := lastRow; j < lastRow+blk.Rows; j++ {
			sum := F.Zero()
			for c := 0; c < bd.colCount; c++ {
				sum = sum.Add(bd.rows[j][c].Abs())
			}
			if sum.IsZero() {
				return nil, errs.ErrSingularMatrix
			}
			d[j] = sum
		}
		lastRow += blk.Rows

		colEnd := bd.colCount
		for step := 0; step < blk.PivotSteps; step++ {
			pivot++
			if pivot >= lastRow {
				if bd.rows[pivot][0].IsZero() {
					return nil, errs.ErrSingularMatrix
				}
				continue
			}

			best := pivot
			bestScore := bd.rows[pivot][0].Abs().Quo(d[pivot])
			for m := pivot + 1; m < lastRow; m++ {
				score := bd.rows[m][0].Abs().Quo(d[m])
				if score.Greater(bestScore) {
					bestScore = score
					best = m
				}
			}
			if best != pivot {
				bd.rows[best], bd.rows[pivot] = bd.rows[pivot], bd.rows[best]
				d[best], d[pivot] = d[pivot], d[best]
				b[best], b[pivot] = b[pivot], b[best]
			}

			p0 := bd.rows[pivot][0]
			if p0.IsZero() {
				return nil, errs.ErrSingularMatrix
			}
			for r := pivot + 1; r < lastRow; r++ {
				ratio := bd.rows[r][0].Quo(p0)
				for c := 1; c < colEnd; c++ {
					bd.rows[r][c-1] = bd.rows[r][c].Sub(ratio.Mul(bd.rows[pivot][c]))
				}
				bd.rows[r][colEnd-1] = F.Zero()
				b[r] = b[r].Sub(ratio.Mul(b[pivot]))
			}
			colEnd--
		}
	}

	x := make([]field.Scalar, n)
	pivotIdx := n - 1
	for bi := len(bd.structure) - 1; bi >= 0; bi-- {
		blk := bd.structure[bi]
		off := bd.colCount - blk.PivotSteps
		for step := 0; step < blk.PivotSteps; step++ {
			sum := F.Zero()
			for m := 1; m <= off; m++ {
				if pivotIdx+m >= n {
					break
				}
				sum = sum.Add(x[pivotIdx+m].Mul(bd.rows[pivotIdx][m]))
			}
			x[pivotIdx] = b[pivotIdx].Sub(sum).Quo(bd.rows[pivotIdx][0])
			off++
			pivotIdx--
		}
	}
	return x, nil
}
