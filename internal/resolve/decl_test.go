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

// An enum case's payload type goes through full canonical Type lookup
// while the enum's own declared shape is only ever mirrored as text,
// never bound to a symbol.
func TestEnum_CasesUseCanonicalLookupShapeUsesMirror(t *testing.T) {
	p := ast.NewProgram()
	eSym := symbol.EnumSym{NS: "", Name: "E"}
	e := &ast.Enum{
		Sym: eSym,
		Cases: map[string]ast.EnumCase{
			"A": {Name: "A", Tag: "A", Type: &ast.TRef{QName: qname("Int")}},
		},
		Shape: &ast.TRef{QName: qname("E")},
		At:    pos(1),
	}

	r := newResolver(nil, p)
	got := r.enum(ast.Root, e)

	qt.Assert(t, qt.IsNil(r.errs))
	qt.Assert(t, qt.Equals(got.Sym, eSym))
	qt.Assert(t, qt.DeepEquals(got.Cases["A"].Type, resolved.Type(resolved.TInt32{})))
	qt.Assert(t, qt.DeepEquals(got.Shape, resolved.Shape(resolved.ShapeRef{Written: "E"})))
}

func TestTable_RelationAttributesResolveAndPreserveSymbol(t *testing.T) {
	p := ast.NewProgram()
	tSym := symbol.TableSym{NS: "", Name: "R"}
	tbl := &ast.Table{
		Sym:   tSym,
		Kind:  ast.RelationTable,
		Attrs: []ast.Attribute{{Name: "x", Type: &ast.TRef{QName: qname("Int")}}},
		At:    pos(1),
	}

	r := newResolver(nil, p)
	got := r.table(ast.Root, tbl)

	qt.Assert(t, qt.IsNil(r.errs))
	qt.Assert(t, qt.Equals(got.Sym, tSym))
	qt.Assert(t, qt.HasLen(got.Attrs, 1))
	qt.Assert(t, qt.DeepEquals(got.Attrs[0].Type, resolved.Type(resolved.TInt32{})))
}

func TestIndex_BindsDeclaredTableSymbol(t *testing.T) {
	p := ast.NewProgram()
	tSym := symbol.TableSym{NS: "", Name: "R"}
	p.Tables[""] = map[string]*ast.Table{"R": {Sym: tSym, At: pos(1)}}

	r := newResolver(nil, p)
	got := r.index(ast.Root, &ast.Index{Table: qname("R"), Groups: [][]string{{"x"}}, At: pos(2)})

	qt.Assert(t, qt.IsNil(r.errs))
	qt.Assert(t, qt.Equals(got.Table, tSym))
	qt.Assert(t, qt.DeepEquals(got.Groups, [][]string{{"x"}}))
}
