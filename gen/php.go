// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gen

import (
	"github.com/go-air/gproof/inter"
	"github.com/go-air/gproof/z"
)

// Php generates the pigeon hole formula placing p pigeons in h holes,
// at most one per hole.  It is unsatisfiable iff p > h.  Php(2, 1) is
// refuted by unit propagation alone.
func Php(dst inter.Adder, p, h int) {
	in := func(i, j int) z.Var {
		return z.Var(j*p + i + 1)
	}
	for i := 0; i < p; i++ {
		for j := 0; j < h; j++ {
			dst.Add(in(i, j).Pos())
		}
		dst.Add(z.LitNull)
	}
	for j := 0; j < h; j++ {
		for i := 0; i < p; i++ {
			for k := 0; k < i; k++ {
				dst.Add(in(i, j).Neg())
				dst.Add(in(k, j).Neg())
				dst.Add(z.LitNull)
			}
		}
	}
}
