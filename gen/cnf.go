// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gen

import (
	"bufio"
	"io"
	"strconv"

	"github.com/pkg/errors"

	"github.com/go-air/gproof/z"
)

// Cnf collects generated clauses.  It implements inter.Adder and
// inter.MaxVar.
type Cnf struct {
	Clauses [][]z.Lit
	max     z.Var
	cur     []z.Lit
}

func (f *Cnf) Add(m z.Lit) {
	if m != z.LitNull {
		f.cur = append(f.cur, m)
		if m.Var() > f.max {
			f.max = m.Var()
		}
		return
	}
	f.Clauses = append(f.Clauses, f.cur)
	f.cur = nil
}

func (f *Cnf) MaxVar() z.Var {
	return f.max
}

// WriteFrat writes the clauses as FRAT original steps with ids 1..n.
func (f *Cnf) WriteFrat(w io.Writer) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 64)
	for i, c := range f.Clauses {
		buf = append(buf[:0], "o "...)
		buf = strconv.AppendInt(buf, int64(i+1), 10)
		for _, m := range c {
			buf = append(buf, ' ')
			buf = strconv.AppendInt(buf, int64(m.Dimacs()), 10)
		}
		buf = append(buf, " 0\n"...)
		if _, err := bw.Write(buf); err != nil {
			return errors.Wrap(err, "writing frat clauses")
		}
	}
	return errors.Wrap(bw.Flush(), "writing frat clauses")
}
