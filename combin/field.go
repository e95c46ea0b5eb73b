// Copyright ©2024 The Bezcol Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package combin

import "github.com/numgo/bezcol/field"

// ScalarRow lifts Row(n) into F, for direct use in collocation-coefficient
// arithmetic where binomial coefficients are multiplied against F-valued
// powers of μ.
func ScalarRow(F field.Field, n int) []field.Scalar {
	row := Row(n)
	out := make([]field.Scalar, len(row))
	for i, c := range row {
		out[i] = F.FromInt64(c)
	}
	return out
}
