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

//go:build flowdebug

package resolve

import (
	"fmt"

	"github.com/google/go-cmp/cmp"

	"github.com/flowlang/flowc/resolved"
	"github.com/flowlang/flowc/symbol"
)

// checkInvariants asserts, in a flowdebug build, that the driver's two
// views of each category genuinely agree: the by-symbol index built
// from the per-namespace maps (spec.md §3, Invariant 3) must contain
// exactly the same declarations as walking the per-namespace maps
// directly produces. It panics on disagreement, since a flowdebug
// build exists only to catch this during development, never in
// production.
func checkInvariants(p *resolved.Program) {
	wantDefs := map[symbol.DefnSym]*resolved.Definition{}
	for _, byName := range p.Definitions {
		for _, d := range byName {
			wantDefs[d.Sym] = d
		}
	}
	if diff := cmp.Diff(wantDefs, p.DefinitionsBySymbol, cmp.Comparer(func(a, b *resolved.Definition) bool { return a == b })); diff != "" {
		panic(fmt.Sprintf("resolve: DefinitionsBySymbol disagrees with Definitions (-want +got):\n%s", diff))
	}

	wantEnums := map[symbol.EnumSym]*resolved.Enum{}
	for _, byName := range p.Enums {
		for _, e := range byName {
			wantEnums[e.Sym] = e
		}
	}
	if !cmp.Equal(wantEnums, p.EnumsBySymbol, cmp.Comparer(func(a, b *resolved.Enum) bool { return a == b })) {
		panic("resolve: EnumsBySymbol disagrees with Enums")
	}

	wantTables := map[symbol.TableSym]*resolved.Table{}
	for _, byName := range p.Tables {
		for _, tbl := range byName {
			wantTables[tbl.Sym] = tbl
		}
	}
	if !cmp.Equal(wantTables, p.TablesBySymbol, cmp.Comparer(func(a, b *resolved.Table) bool { return a == b })) {
		panic("resolve: TablesBySymbol disagrees with Tables")
	}
}
