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

package ast

// Pattern is a Named pattern.
type Pattern interface {
	isPattern()
	Pos() Pos
}

// PWild is the wildcard pattern `_`.
type PWild struct{ At Pos }

func (p *PWild) isPattern() {}
func (p *PWild) Pos() Pos   { return p.At }

// PVar binds the scrutinee to a fresh local.
type PVar struct {
	Name string
	At   Pos
}

func (p *PVar) isPattern() {}
func (p *PVar) Pos() Pos   { return p.At }

// LitKind distinguishes the literal forms shared by expressions and
// patterns; literals are never touched by resolution, only threaded
// through.
type LitKind int

const (
	LitUnit LitKind = iota
	LitBool
	LitChar
	LitFloat32
	LitFloat64
	LitInt8
	LitInt16
	LitInt32
	LitInt64
	LitBigInt
	LitStr
)

// PLit is a literal pattern, e.g. Pattern.Int32(1).
type PLit struct {
	Kind  LitKind
	Value string
	At    Pos
}

func (p *PLit) isPattern() {}
func (p *PLit) Pos() Pos   { return p.At }

// PTuple destructures a tuple.
type PTuple struct {
	Elems []Pattern
	At    Pos
}

func (p *PTuple) isPattern() {}
func (p *PTuple) Pos() Pos   { return p.At }

// PTag matches an enum case. Enum is the optional qualifier written
// before the tag (e.g. the `E1` in `E1.A`); it is nil when the tag was
// written bare.
type PTag struct {
	Enum  *QName
	Tag   Ident
	Inner Pattern
	At    Pos
}

func (p *PTag) isPattern() {}
func (p *PTag) Pos() Pos   { return p.At }
