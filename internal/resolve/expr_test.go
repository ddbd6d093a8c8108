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

package resolve

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/flowlang/flowc/ast"
	"github.com/flowlang/flowc/resolved"
	"github.com/flowlang/flowc/symbol"
)

func TestExpr_RefResolvesToDefinition(t *testing.T) {
	p := ast.NewProgram()
	fSym := symbol.DefnSym{NS: "", Name: "f"}
	p.Definitions[""] = map[string]*ast.Definition{"f": {Sym: fSym, At: pos(1)}}

	r := newResolver(nil, p)
	got := r.expr(ast.Root, &ast.Ref{QName: qname("f")})

	qt.Assert(t, qt.IsNil(r.errs))
	qt.Assert(t, qt.DeepEquals(got, resolved.Expr(resolved.Ref{Sym: fSym})))
}

func TestExpr_RefResolvesToHook(t *testing.T) {
	p := ast.NewProgram()
	key := ast.HookKey(ast.Root, "native_now")
	p.Hooks[key] = ast.Hook{}

	r := newResolver(nil, p)
	got := r.expr(ast.Root, &ast.Ref{QName: qname("native_now")})

	qt.Assert(t, qt.IsNil(r.errs))
	qt.Assert(t, qt.DeepEquals(got, resolved.Expr(resolved.HookRef{Key: key})))
}

func TestExpr_StructuralRecursionThroughBinaryAndTuple(t *testing.T) {
	p := ast.NewProgram()
	r := newResolver(nil, p)

	e := &ast.Tuple{Elems: []ast.Expr{
		&ast.Binary{Op: "+", X: &ast.Literal{Kind: ast.LitInt32, Value: "1"}, Y: &ast.Literal{Kind: ast.LitInt32, Value: "2"}},
		&ast.Wild{},
	}}
	got := r.expr(ast.Root, e)

	want := resolved.Tuple{Elems: []resolved.Expr{
		resolved.Binary{Op: "+", X: resolved.Literal{Kind: ast.LitInt32, Value: "1"}, Y: resolved.Literal{Kind: ast.LitInt32, Value: "2"}},
		resolved.Wild{},
	}}
	qt.Assert(t, qt.IsNil(r.errs))
	qt.Assert(t, qt.DeepEquals(got, resolved.Expr(want)))
}

func TestExpr_TagResolvesUniqueGlobalCase(t *testing.T) {
	p := ast.NewProgram()
	eSym := symbol.EnumSym{NS: "", Name: "E"}
	p.Enums[""] = map[string]*ast.Enum{
		"E": {Sym: eSym, Cases: map[string]ast.EnumCase{"A": {Name: "A", Tag: "A"}}, At: pos(1)},
	}

	r := newResolver(nil, p)
	got := r.expr(ast.Root, &ast.Tag{Tag: ident("A", 2), Inner: &ast.Literal{Kind: ast.LitUnit, Value: "()"}})

	qt.Assert(t, qt.IsNil(r.errs))
	qt.Assert(t, qt.DeepEquals(got, resolved.Expr(resolved.Tag{Enum: eSym, Tag: "A", Inner: resolved.Literal{Kind: ast.LitUnit, Value: "()"}})))
}
