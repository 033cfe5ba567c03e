// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gen

import (
	"math/rand"
	"sync"

	"github.com/go-air/gproof/inter"
	"github.com/go-air/gproof/z"
)

var (
	mu  sync.Mutex // guards rng
	rng = rand.New(rand.NewSource(33))
)

// Seed resets the generator source.
func Seed(s int64) {
	mu.Lock()
	defer mu.Unlock()
	rng = rand.New(rand.NewSource(s))
}

// BinCycle generates the implication cycle 1 <- 2 <- ... <- n <- 1 as
// the binary clauses (1 -2) (2 -3) ... (n -1).  Fixing two adjacent
// variables to opposite values refutes it by unit propagation.
func BinCycle(dst inter.Adder, n int) {
	for i := 1; i <= n; i++ {
		j := i%n + 1
		dst.Add(z.Var(i).Pos())
		dst.Add(z.Var(j).Neg())
		dst.Add(z.LitNull)
	}
}

// Rand3Cnf generates m clauses of three literals over distinct variables
// drawn from 1..n.
func Rand3Cnf(dst inter.Adder, n, m int) {
	mu.Lock()
	defer mu.Unlock()
	var ms [3]z.Lit
	for i := 0; i < m; i++ {
		for j := range ms {
			ms[j] = randLit(n, ms[:j])
			dst.Add(ms[j])
		}
		dst.Add(z.LitNull)
	}
}

// randLit draws a literal whose variable does not occur in ms.
func randLit(n int, ms []z.Lit) z.Lit {
draw:
	for {
		m := z.Lit(rng.Intn(2*n) + 2)
		for _, o := range ms {
			if o.Var() == m.Var() {
				continue draw
			}
		}
		return m
	}
}
