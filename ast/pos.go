// Copyright 2026 The Flow Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package ast defines the Named Program: the input data model consumed
// by the name resolver. Every type here is produced by the (external)
// naming phase; nothing in this package mints or mutates a Symbol.
package ast

import "fmt"

// Pos is a source location, carried through from the naming phase. The
// resolver uses it to place the errors it reports; resolved nodes do
// not carry a Pos.
type Pos struct {
	File   string
	Line   int
	Column int
}

// NoPos is the zero value, used for synthesized nodes that have no
// corresponding source text.
var NoPos = Pos{}

func (p Pos) IsValid() bool { return p.Line > 0 }

func (p Pos) String() string {
	if !p.IsValid() {
		return "-"
	}
	if p.File == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
}

// Before reports whether p sorts before q in source order, used to put
// AmbiguousTag candidate locations in a deterministic order.
func (p Pos) Before(q Pos) bool {
	if p.File != q.File {
		return p.File < q.File
	}
	if p.Line != q.Line {
		return p.Line < q.Line
	}
	return p.Column < q.Column
}
