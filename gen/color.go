// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gen

import (
	"github.com/go-air/gproof/inter"
	"github.com/go-air/gproof/z"
)

// RandColor generates the formula coloring a random graph of n nodes and
// m edges with k colors.  With k = 1 and m > 0 it is refuted by unit
// propagation.
func RandColor(dst inter.Adder, n, m, k int) {
	g := RandGraph(n, m)
	color := func(node, c int) z.Var {
		return z.Var(node*k + c + 1)
	}
	for a := range g {
		for c := 0; c < k; c++ {
			dst.Add(color(a, c).Pos())
		}
		dst.Add(z.LitNull)
	}
	for a, bs := range g {
		for _, b := range bs {
			if b > a {
				continue
			}
			for c := 0; c < k; c++ {
				dst.Add(color(a, c).Neg())
				dst.Add(color(b, c).Neg())
				dst.Add(z.LitNull)
			}
		}
	}
}

// RandGraph returns the adjacency lists of a simple undirected graph
// with n nodes and m edges sampled without replacement, nil if m
// exceeds n(n-1)/2.  Every edge appears in the lists of both ends.
func RandGraph(n, m int) [][]int {
	if m > n*(n-1)/2 {
		return nil
	}
	mu.Lock()
	defer mu.Unlock()
	type edge struct{ a, b int }
	es := make([]edge, 0, n*(n-1)/2)
	for a := 0; a < n; a++ {
		for b := 0; b < a; b++ {
			es = append(es, edge{a, b})
		}
	}
	g := make([][]int, n)
	for i := 0; i < m; i++ {
		j := i + rng.Intn(len(es)-i)
		es[i], es[j] = es[j], es[i]
		e := es[i]
		g[e.a] = append(g[e.a], e.b)
		g[e.b] = append(g[e.b], e.a)
	}
	return g
}
