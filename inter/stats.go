// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package inter

import "fmt"

// Stats holds proof event counters.
type Stats struct {
	Original     int64
	Restored     int64
	Derived      int64
	Deleted      int64
	Weakened     int64
	Strengthened int64
	Finalized    int64
	Checked      int64 // steps verified by checkers
	Bytes        int64 // bytes written by file tracers
}

// Add accumulates o into st.
func (st *Stats) Add(o *Stats) {
	st.Original += o.Original
	st.Restored += o.Restored
	st.Derived += o.Derived
	st.Deleted += o.Deleted
	st.Weakened += o.Weakened
	st.Strengthened += o.Strengthened
	st.Finalized += o.Finalized
	st.Checked += o.Checked
	st.Bytes += o.Bytes
}

func (st *Stats) String() string {
	return fmt.Sprintf("original %d restored %d derived %d deleted %d weakened %d strengthened %d finalized %d checked %d bytes %d",
		st.Original, st.Restored, st.Derived, st.Deleted, st.Weakened,
		st.Strengthened, st.Finalized, st.Checked, st.Bytes)
}
