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

func TestPattern_TagPatternResolvesQualifiedCandidate(t *testing.T) {
	p := ast.NewProgram()
	e1 := symbol.EnumSym{NS: "N", Name: "E1"}
	e2 := symbol.EnumSym{NS: "N", Name: "E2"}
	p.Enums["N"] = map[string]*ast.Enum{
		"E1": {Sym: e1, Cases: map[string]ast.EnumCase{"A": {Name: "A", Tag: "A"}}, At: pos(1)},
		"E2": {Sym: e2, Cases: map[string]ast.EnumCase{"A": {Name: "A", Tag: "A"}}, At: pos(2)},
	}

	r := newResolver(nil, p)
	qualifier := ast.QName{NS: ast.NName{"N"}, Ident: ident("E2", 5)}
	got := r.pattern(ast.NName{"N"}, &ast.PTag{Enum: &qualifier, Tag: ident("A", 5), Inner: &ast.PWild{At: pos(5)}})

	qt.Assert(t, qt.IsNil(r.errs))
	qt.Assert(t, qt.DeepEquals(got, resolved.Pattern(resolved.PTag{Enum: e2, Tag: "A", Inner: resolved.PWild{}})))
}

func TestPattern_TupleRecursesStructurally(t *testing.T) {
	p := ast.NewProgram()
	r := newResolver(nil, p)

	got := r.pattern(ast.Root, &ast.PTuple{Elems: []ast.Pattern{
		&ast.PLit{Kind: ast.LitInt32, Value: "1"},
		&ast.PVar{Name: "rest"},
	}})

	want := resolved.PTuple{Elems: []resolved.Pattern{
		resolved.PLit{Kind: ast.LitInt32, Value: "1"},
		resolved.PVar{Name: "rest"},
	}}
	qt.Assert(t, qt.IsNil(r.errs))
	qt.Assert(t, qt.DeepEquals(got, resolved.Pattern(want)))
}
