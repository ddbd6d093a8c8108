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

package resolve_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/flowlang/flowc/ast"
	"github.com/flowlang/flowc/resolve"
	"github.com/flowlang/flowc/symbol"
)

func TestResolve_MinimalProgram(t *testing.T) {
	p := ast.NewProgram()
	fSym := symbol.DefnSym{NS: "", Name: "f"}
	p.Definitions[""] = map[string]*ast.Definition{
		"f": {
			Sym:        fSym,
			ResultType: &ast.TRef{QName: ast.QName{Ident: ast.Ident{Name: "Int"}}},
			Body:       &ast.Literal{Kind: ast.LitInt32, Value: "1"},
		},
	}

	out, err := resolve.Resolve(nil, p)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsNotNil(out))

	d, ok := out.DefinitionsBySymbol[fSym]
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(d.Sym, fSym))
}

func TestResolve_UndefinedReferenceReportsError(t *testing.T) {
	p := ast.NewProgram()
	p.Definitions["N"] = map[string]*ast.Definition{
		"f": {Sym: symbol.DefnSym{NS: "N", Name: "f"}},
	}
	p.Definitions[""] = map[string]*ast.Definition{
		"g": {
			Sym:        symbol.DefnSym{NS: "", Name: "g"},
			ResultType: &ast.TRef{QName: ast.QName{Ident: ast.Ident{Name: "Int"}}},
			Body:       &ast.Ref{QName: ast.QName{Ident: ast.Ident{Name: "f"}}},
		},
	}

	_, err := resolve.Resolve(nil, p)
	qt.Assert(t, qt.IsNotNil(err))
}
