// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package replay reads FRAT proofs and plays them back through a clause
// database, so the proof can be written in another format or checked.
package replay

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Kind is the kind of a proof step.
type Kind byte

const (
	Original Kind = 'o'
	Add      Kind = 'a'
	Delete   Kind = 'd'
	Finalize Kind = 'f'
)

func (k Kind) String() string {
	switch k {
	case Original:
		return "original"
	case Add:
		return "add"
	case Delete:
		return "delete"
	case Finalize:
		return "finalize"
	}
	return fmt.Sprintf("kind(%d)", byte(k))
}

// Step is one line of a FRAT proof.
type Step struct {
	Kind  Kind
	ID    uint64
	Lits  []int
	Hints []uint64 // antecedents of an Add, nil if absent
	Line  int
}

func (s *Step) String() string {
	return fmt.Sprintf("%c %d %v %v", s.Kind, s.ID, s.Lits, s.Hints)
}

// Parse reads a FRAT proof in text format.  Comment lines start with
// "c".
func Parse(r io.Reader) ([]Step, error) {
	var steps []Step
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<24)
	line := 0
	for sc.Scan() {
		line++
		fs := strings.Fields(sc.Text())
		if len(fs) == 0 || fs[0] == "c" {
			continue
		}
		st, err := parseStep(fs)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		st.Line = line
		steps = append(steps, st)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "reading proof")
	}
	return steps, nil
}

func parseStep(fs []string) (Step, error) {
	var st Step
	if len(fs[0]) != 1 {
		return st, errors.Errorf("unknown step %q", fs[0])
	}
	st.Kind = Kind(fs[0][0])
	switch st.Kind {
	case Original, Add, Delete, Finalize:
	default:
		return st, errors.Errorf("unknown step %q", fs[0])
	}
	if len(fs) < 3 {
		return st, errors.New("truncated step")
	}
	id, err := strconv.ParseUint(fs[1], 10, 64)
	if err != nil || id == 0 {
		return st, errors.Errorf("bad clause id %q", fs[1])
	}
	st.ID = id
	rest := fs[2:]
	st.Lits = []int{}
	for {
		if len(rest) == 0 {
			return st, errors.New("clause not terminated by 0")
		}
		l, err := strconv.Atoi(rest[0])
		if err != nil {
			return st, errors.Errorf("bad literal %q", rest[0])
		}
		rest = rest[1:]
		if l == 0 {
			break
		}
		st.Lits = append(st.Lits, l)
	}
	if len(rest) == 0 {
		return st, nil
	}
	if st.Kind != Add || rest[0] != "l" {
		return st, errors.Errorf("unexpected %q after clause", rest[0])
	}
	rest = rest[1:]
	st.Hints = []uint64{}
	for {
		if len(rest) == 0 {
			return st, errors.New("hints not terminated by 0")
		}
		h, err := strconv.ParseInt(rest[0], 10, 64)
		if err != nil {
			return st, errors.Errorf("bad hint %q", rest[0])
		}
		rest = rest[1:]
		if h == 0 {
			break
		}
		if h < 0 {
			return st, errors.Errorf("unsupported RAT hint %d", h)
		}
		st.Hints = append(st.Hints, uint64(h))
	}
	if len(rest) != 0 {
		return st, errors.Errorf("unexpected %q after hints", rest[0])
	}
	return st, nil
}
