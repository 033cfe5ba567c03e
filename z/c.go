// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package z

import "fmt"

// C is a clause handle.  It names a slot in a clause arena and stays valid
// for as long as the clause lives, independent of the clause's proof
// identifier, which may change while the clause is rewritten in place.
type C uint32

const (
	// CNull is the handle of no clause.
	CNull C = 0
	// CInf is returned where a clause was satisfied or dropped
	// rather than stored.
	CInf C = 0xffffffff
)

func (c C) String() string {
	return fmt.Sprintf("c%d", uint32(c))
}
