// Copyright ©2024 The Bezcol Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package combin computes the integer binomial coefficients used throughout
// the collocation assembler and the Bernstein derivative formula. Nothing
// is cached: every call to Binomial or Row recomputes its result.
//
// Grounded on gonum's stat/combin package's Binomial (stat/combin/combin.go):
// the same half-table symmetry (C(n,k)=C(n,n-k)) and iterative
// product/division recurrence, generalized here to spec.md §4.1's
// formulation and int64 accumulation.
package combin

// Binomial returns C(n, k), the number of ways to choose k elements from a
// set of n, computed with the half-table symmetric multiplicative
// recurrence of spec.md §4.1: only k ≤ n−k is computed directly, using
// C(n,k) = C(n,n−k); the running product b ← b·(n−j+1)/j starts from 1.
//
// Binomial panics if k < 0, k > n, or n < 0. n is expected to stay small
// (typically the collocation degree k+1, rarely above 30), so plain
// machine integers are sufficient; overflow for very large n is the
// caller's problem, per spec.md §4.1.
func Binomial(n, k int) int64 {
	if n < 0 || k < 0 || k > n {
		panic("combin: invalid n or k")
	}
	if k > n-k {
		k = n - k
	}
	b := int64(1)
	for j := 1; j <= k; j++ {
		b = b * int64(n-j+1) / int64(j)
	}
	return b
}

// Row returns C(n,0),...,C(n,n) as a freshly allocated slice.
func Row(n int) []int64 {
	row := make([]int64, n+1)
	for k := 0; k <= n; k++ {
		row[k] = Binomial(n, k)
	}
	return row
}
