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
	"github.com/google/go-cmp/cmp"

	"github.com/flowlang/flowc/ast"
	"github.com/flowlang/flowc/errors"
	"github.com/flowlang/flowc/resolved"
	"github.com/flowlang/flowc/symbol"
)

// S5: rel R(x: Int). R(1). — the fact's head atom binds R's declared
// table symbol, and R is reachable through TablesBySymbol.
func TestRun_S5_FactBindsDeclaredTableSymbol(t *testing.T) {
	p := ast.NewProgram()
	rSym := symbol.TableSym{NS: "", Name: "R"}
	p.Tables[""] = map[string]*ast.Table{
		"R": {Sym: rSym, Kind: ast.RelationTable, Attrs: []ast.Attribute{{Name: "x", Type: &ast.TRef{QName: qname("Int")}}}, At: pos(1)},
	}
	p.Constraints[""] = []*ast.Constraint{
		{
			Head: &ast.HeadPositive{
				Table: qname("R"),
				Terms: []ast.Expr{&ast.Literal{Kind: ast.LitInt32, Value: "1"}},
				At:    pos(2),
			},
			At: pos(2),
		},
	}

	out, err := Run(nil, p)
	qt.Assert(t, qt.IsNil(err))

	cs := out.Constraints[""]
	qt.Assert(t, qt.HasLen(cs, 1))
	headPos, ok := cs[0].Head.(resolved.HeadPositive)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(headPos.Table, rSym))

	tbl, ok := out.TablesBySymbol[rSym]
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(tbl.Sym, rSym))
}

// S6: a lattice with an undefined carrier type reports UndefinedType
// at the carrier, while the rest of resolution (table A) still
// proceeds and surfaces independently.
func TestRun_S6_UndefinedCarrierDoesNotBlockUnrelatedTable(t *testing.T) {
	p := ast.NewProgram()
	undefinedCarrier := &ast.TRef{QName: qname("L")}
	p.Lattices["ref:L"] = &ast.BoundedLattice{
		Carrier: undefinedCarrier,
		Bottom:  &ast.Wild{},
		Top:     &ast.Wild{},
		Leq:     &ast.Wild{},
		Lub:     &ast.Wild{},
		Glb:     &ast.Wild{},
		At:      pos(3),
	}
	aSym := symbol.TableSym{NS: "", Name: "A"}
	p.Tables[""] = map[string]*ast.Table{
		"A": {
			Sym:  aSym,
			Kind: ast.LatticeValuedTable,
			KeyAttrs: []ast.Attribute{{Name: "k", Type: &ast.TRef{QName: qname("Int")}}},
			ValueAttr: &ast.Attribute{Name: "v", Type: undefinedCarrier},
			At:        pos(4),
		},
	}

	out, err := Run(nil, p)
	qt.Assert(t, qt.IsNotNil(err))
	errs := errors.Errors(err)

	foundUndefinedType := false
	for _, e := range errs {
		if e.Code() == errors.UndefinedType {
			foundUndefinedType = true
		}
	}
	qt.Assert(t, qt.IsTrue(foundUndefinedType))

	// A still resolves despite the lattice carrier failing independently.
	tbl, ok := out.TablesBySymbol[aSym]
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(tbl.Sym, aSym))
}

func TestRun_SymbolPreservationAndBySymbolAgreement(t *testing.T) {
	p := ast.NewProgram()
	fSym := symbol.DefnSym{NS: "", Name: "f"}
	p.Definitions[""] = map[string]*ast.Definition{
		"f": {Sym: fSym, ResultType: &ast.TRef{QName: qname("Int")}, Body: &ast.Literal{Kind: ast.LitInt32, Value: "1"}, At: pos(1)},
	}

	out, err := Run(nil, p)
	qt.Assert(t, qt.IsNil(err))

	d, ok := out.Definitions[""]["f"]
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(d.Sym, fSym))

	byS, ok := out.DefinitionsBySymbol[fSym]
	qt.Assert(t, qt.IsTrue(ok))
	if diff := cmp.Diff(d, byS); diff != "" {
		t.Errorf("DefinitionsBySymbol disagrees with Definitions (-want +got):\n%s", diff)
	}
}

func TestRun_Determinism(t *testing.T) {
	build := func() *ast.Program {
		p := ast.NewProgram()
		fSym := symbol.DefnSym{NS: "", Name: "f"}
		p.Definitions[""] = map[string]*ast.Definition{
			"f": {Sym: fSym, ResultType: &ast.TRef{QName: qname("Int")}, Body: &ast.Var{Name: "x"}, At: pos(1)},
		}
		return p
	}

	out1, err1 := Run(nil, build())
	out2, err2 := Run(nil, build())

	qt.Assert(t, qt.IsNil(err1))
	qt.Assert(t, qt.IsNil(err2))
	if diff := cmp.Diff(out1.Definitions, out2.Definitions); diff != "" {
		t.Errorf("Run is not deterministic (-first +second):\n%s", diff)
	}
}
