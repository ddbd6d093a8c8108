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

// Expr is a Named expression: 20 variant cases, most of which just
// need structural recursion during resolution.
type Expr interface {
	isExpr()
	Pos() Pos
}

type exprAt struct{ At Pos }

func (e exprAt) Pos() Pos { return e.At }

// Ref is an unresolved value reference.
type Ref struct {
	exprAt
	QName QName
}

func (e *Ref) isExpr() {}

// Tag constructs an enum case. Enum is the optional qualifier.
type Tag struct {
	exprAt
	Enum  *QName
	Tag   Ident
	Inner Expr
}

func (e *Tag) isExpr() {}

// MatchRule is one arm of a Match expression.
type MatchRule struct {
	Pat   Pattern
	Guard Expr // optional
	Body  Expr
}

// Match pattern-matches the scrutinee against a sequence of rules.
type Match struct {
	exprAt
	Scrutinee Expr
	Rules     []MatchRule
}

func (e *Match) isExpr() {}

// SwitchRule is one (condition, body) arm of a Switch expression.
type SwitchRule struct {
	Cond Expr
	Body Expr
}

// Switch evaluates rules in order.
type Switch struct {
	exprAt
	Rules []SwitchRule
}

func (e *Switch) isExpr() {}

// Ascribe attaches a declared type to an expression.
type Ascribe struct {
	exprAt
	Expr Expr
	Type Type
}

func (e *Ascribe) isExpr() {}

// Existential introduces an existentially-quantified parameter.
type Existential struct {
	exprAt
	Param Param
	Body  Expr
}

func (e *Existential) isExpr() {}

// Universal introduces a universally-quantified parameter.
type Universal struct {
	exprAt
	Param Param
	Body  Expr
}

func (e *Universal) isExpr() {}

// NativeConstructor calls a host-native constructor; the member
// descriptor is kept verbatim.
type NativeConstructor struct {
	exprAt
	Member string
	Args   []Expr
}

func (e *NativeConstructor) isExpr() {}

// NativeMethod calls a host-native method; the member descriptor is
// kept verbatim.
type NativeMethod struct {
	exprAt
	Member string
	Args   []Expr
}

func (e *NativeMethod) isExpr() {}

// Literal is a literal value; it passes through resolution unchanged.
type Literal struct {
	exprAt
	Kind  LitKind
	Value string
}

func (e *Literal) isExpr() {}

// Wild is the `_` expression.
type Wild struct{ exprAt }

func (e *Wild) isExpr() {}

// Var is a reference to a local binding already resolved by the
// naming phase (e.g. a lambda parameter); it passes through.
type Var struct {
	exprAt
	Name string
}

func (e *Var) isExpr() {}

// UserError is an explicit `error("...")` expression.
type UserError struct {
	exprAt
	Message string
}

func (e *UserError) isExpr() {}

// Apply is a function application.
type Apply struct {
	exprAt
	Fun  Expr
	Args []Expr
}

func (e *Apply) isExpr() {}

// Lambda is an anonymous function.
type Lambda struct {
	exprAt
	Params []Param
	Body   Expr
}

func (e *Lambda) isExpr() {}

// Unary is a unary operator application.
type Unary struct {
	exprAt
	Op string
	X  Expr
}

func (e *Unary) isExpr() {}

// Binary is a binary operator application.
type Binary struct {
	exprAt
	Op   string
	X, Y Expr
}

func (e *Binary) isExpr() {}

// IfThenElse is a conditional expression.
type IfThenElse struct {
	exprAt
	Cond, Then, Else Expr
}

func (e *IfThenElse) isExpr() {}

// Let is a non-recursive local binding.
type Let struct {
	exprAt
	Name  string
	Value Expr
	Body  Expr
}

func (e *Let) isExpr() {}

// Tuple constructs a tuple value.
type Tuple struct {
	exprAt
	Elems []Expr
}

func (e *Tuple) isExpr() {}
