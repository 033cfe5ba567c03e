// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package gen generates formulas for exercising the proof layer.
//
// Generators write clauses to an inter.Adder, one z.LitNull terminated
// literal sequence per clause.  A Cnf collects them and writes them as
// the original clauses of a FRAT proof.
package gen
