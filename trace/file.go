// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package trace writes clausal proofs to files.
//
// Each format comes in a text and a binary variant except VeriPB, which is
// text only.  Binary literals are coded as 2*|l| plus one if negative, and
// clause ids as 2*id, each as a little endian base 128 varint.
package trace

import (
	"bufio"
	"io"
	"strconv"

	"github.com/pkg/errors"

	"github.com/go-air/gproof/inter"
)

const varUintMask = uint64((1 << 7) - 1)

// file holds what all proof writers share: the buffered writer, the
// first write error, and statistics.
type file struct {
	who    string
	w      *bufio.Writer
	c      io.Closer
	binary bool
	err    error
	closed bool
	num    []byte
	st     inter.Stats
}

func newFile(who string, w io.Writer, binary bool) file {
	f := file{
		who:    who,
		w:      bufio.NewWriterSize(w, 1<<16),
		binary: binary,
		num:    make([]byte, 0, 24)}
	if c, ok := w.(io.Closer); ok {
		f.c = c
	}
	return f
}

// ConnectInternal implements inter.InternalTracer.  Proof files only
// see external literals, so the engine is not needed.
func (f *file) ConnectInternal(x inter.Internal) {}

func (f *file) Who() string {
	return f.who
}

func (f *file) ReadStats(st *inter.Stats) {
	st.Add(&f.st)
}

// Flush writes buffered output to the underlying writer.
func (f *file) Flush() error {
	if f.err != nil || f.closed {
		return f.err
	}
	if err := f.w.Flush(); err != nil {
		f.err = errors.Wrapf(err, "%s: flush", f.who)
	}
	return f.err
}

// Close flushes and, if the underlying writer is an io.Closer, closes
// it.  Calls after the first return the same result.
func (f *file) Close() error {
	if f.closed {
		return f.err
	}
	f.Flush()
	f.closed = true
	if f.c != nil {
		if err := f.c.Close(); err != nil && f.err == nil {
			f.err = errors.Wrapf(err, "%s: close", f.who)
		}
	}
	return f.err
}

func (f *file) ok() bool {
	return f.err == nil && !f.closed
}

func (f *file) check(err error) {
	if err != nil && f.err == nil {
		f.err = errors.Wrapf(err, "%s: write", f.who)
	}
}

func (f *file) putByte(b byte) {
	if !f.ok() {
		return
	}
	f.check(f.w.WriteByte(b))
	f.st.Bytes++
}

func (f *file) putString(s string) {
	if !f.ok() {
		return
	}
	n, err := f.w.WriteString(s)
	f.check(err)
	f.st.Bytes += int64(n)
}

func (f *file) putInt(i int64) {
	if !f.ok() {
		return
	}
	f.num = strconv.AppendInt(f.num[:0], i, 10)
	n, err := f.w.Write(f.num)
	f.check(err)
	f.st.Bytes += int64(n)
}

func (f *file) putUint(u uint64) {
	if !f.ok() {
		return
	}
	f.num = strconv.AppendUint(f.num[:0], u, 10)
	n, err := f.w.Write(f.num)
	f.check(err)
	f.st.Bytes += int64(n)
}

// putVarUint writes u in 7 bit groups, low group first, with the high
// bit set on every byte but the last.
func (f *file) putVarUint(u uint64) {
	for {
		b := byte(u & varUintMask)
		u >>= 7
		if u == 0 {
			f.putByte(b)
			return
		}
		f.putByte(b | (1 << 7))
	}
}

func (f *file) putBinLit(l int) {
	if l < 0 {
		f.putVarUint(uint64(-l)*2 + 1)
		return
	}
	f.putVarUint(uint64(l) * 2)
}

func (f *file) putBinID(id uint64) {
	f.putVarUint(id * 2)
}

// putLits writes lits followed by the terminating zero.
func (f *file) putLits(lits []int) {
	if f.binary {
		for _, l := range lits {
			f.putBinLit(l)
		}
		f.putByte(0)
		return
	}
	for _, l := range lits {
		f.putInt(int64(l))
		f.putByte(' ')
	}
	f.putByte('0')
}

// putIDs writes ids followed by the terminating zero.
func (f *file) putIDs(ids []uint64) {
	if f.binary {
		for _, id := range ids {
			f.putBinID(id)
		}
		f.putByte(0)
		return
	}
	for _, id := range ids {
		f.putUint(id)
		f.putByte(' ')
	}
	f.putByte('0')
}

// putID writes id, followed by a space in text mode.
func (f *file) putID(id uint64) {
	if f.binary {
		f.putBinID(id)
		return
	}
	f.putUint(id)
	f.putByte(' ')
}

// putOp writes the line tag op, followed by a space in text mode.
func (f *file) putOp(op byte) {
	f.putByte(op)
	if !f.binary {
		f.putByte(' ')
	}
}

func (f *file) endLine() {
	if !f.binary {
		f.putByte('\n')
	}
}
