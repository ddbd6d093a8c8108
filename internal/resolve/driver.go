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
	"strings"
	"sync"

	"github.com/flowlang/flowc/ast"
	"github.com/flowlang/flowc/errors"
	"github.com/flowlang/flowc/resolved"
	"github.com/flowlang/flowc/symbol"
)

// nnameFromKey inverts ast.NName.Key(): the key is either empty (the
// root namespace) or the path segments joined with NUL, which never
// appears in a surface identifier.
func nnameFromKey(key string) ast.NName {
	if key == "" {
		return ast.Root
	}
	return ast.NName(strings.Split(key, "\x00"))
}

// Run resolves every namespace-indexed category independently: each
// of the seven category workers below gets its own resolver (so its
// own error accumulator) and writes only to its own output variable,
// joined by a WaitGroup before assembly. No lock is needed because
// nothing is read across goroutines until after Wait returns, matching
// spec.md §7's "no locks needed, commutative error collection"
// allowance and the teacher's own pattern of fanning out independent
// workers over a WaitGroup (internal/core/compile uses the analogous
// shape for independent build units).
func Run(cfg *Config, p *ast.Program) (*resolved.Program, errors.Error) {
	cfg.trace("resolve: starting, %d definition namespaces", len(p.Definitions))

	var wg sync.WaitGroup
	var (
		definitions map[string]map[string]*resolved.Definition
		enums       map[string]map[string]*resolved.Enum
		tables      map[string]map[string]*resolved.Table
		indexes     map[string]map[string]*resolved.Index
		lattices    map[string]*resolved.BoundedLattice
		constraints map[string][]*resolved.Constraint
		properties  map[string][]*resolved.Property

		errDefs, errEnums, errTables, errIdx, errLat, errCon, errProp errors.Error
	)

	run := func(f func()) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f()
		}()
	}

	run(func() {
		r := newResolver(cfg, p)
		definitions = map[string]map[string]*resolved.Definition{}
		for nsKey, byName := range p.Definitions {
			ns := nnameFromKey(nsKey)
			out := make(map[string]*resolved.Definition, len(byName))
			for name, d := range byName {
				resolvedDef := r.definition(ns, d)
				out[name] = resolvedDef
				if cfg.wantsTrace() {
					cfg.trace("resolve: definition %s: %s", resolvedDef.Sym, dump(resolvedDef))
				}
			}
			definitions[nsKey] = out
		}
		errDefs = r.errs
	})

	run(func() {
		r := newResolver(cfg, p)
		enums = map[string]map[string]*resolved.Enum{}
		for nsKey, byName := range p.Enums {
			ns := nnameFromKey(nsKey)
			out := make(map[string]*resolved.Enum, len(byName))
			for name, e := range byName {
				out[name] = r.enum(ns, e)
			}
			enums[nsKey] = out
		}
		errEnums = r.errs
	})

	run(func() {
		r := newResolver(cfg, p)
		tables = map[string]map[string]*resolved.Table{}
		for nsKey, byName := range p.Tables {
			ns := nnameFromKey(nsKey)
			out := make(map[string]*resolved.Table, len(byName))
			for name, t := range byName {
				out[name] = r.table(ns, t)
			}
			tables[nsKey] = out
		}
		errTables = r.errs
	})

	run(func() {
		r := newResolver(cfg, p)
		indexes = map[string]map[string]*resolved.Index{}
		for nsKey, byName := range p.Indexes {
			ns := nnameFromKey(nsKey)
			out := make(map[string]*resolved.Index, len(byName))
			for name, i := range byName {
				out[name] = r.index(ns, i)
			}
			indexes[nsKey] = out
		}
		errIdx = r.errs
	})

	run(func() {
		r := newResolver(cfg, p)
		lattices = map[string]*resolved.BoundedLattice{}
		for key, l := range p.Lattices {
			// A lattice is keyed by its carrier's shape, not by a
			// namespace it was declared in; its own carrier type
			// resolves relative to the root, matching how the
			// original declaration is scoped program-wide.
			lattices[key] = r.boundedLattice(ast.Root, l)
		}
		errLat = r.errs
	})

	run(func() {
		r := newResolver(cfg, p)
		constraints = map[string][]*resolved.Constraint{}
		for nsKey, cs := range p.Constraints {
			ns := nnameFromKey(nsKey)
			out := make([]*resolved.Constraint, len(cs))
			for i, c := range cs {
				out[i] = r.constraint(ns, c)
			}
			constraints[nsKey] = out
		}
		errCon = r.errs
	})

	run(func() {
		r := newResolver(cfg, p)
		properties = map[string][]*resolved.Property{}
		for nsKey, ps := range p.Properties {
			ns := nnameFromKey(nsKey)
			out := make([]*resolved.Property, len(ps))
			for i, prop := range ps {
				out[i] = r.property(ns, prop)
			}
			properties[nsKey] = out
		}
		errProp = r.errs
	})

	wg.Wait()

	var all errors.Error
	for _, e := range []errors.Error{errDefs, errEnums, errTables, errIdx, errLat, errCon, errProp} {
		all = errors.Append(all, e)
	}

	out := &resolved.Program{
		Definitions:         definitions,
		Enums:               enums,
		Tables:              tables,
		Indexes:             indexes,
		Lattices:            lattices,
		Constraints:         constraints,
		Properties:          properties,
		Hooks:               p.Hooks,
		Reachable:           p.Reachable,
		Time:                p.Time,
		DefinitionsBySymbol: map[symbol.DefnSym]*resolved.Definition{},
		EnumsBySymbol:       map[symbol.EnumSym]*resolved.Enum{},
		TablesBySymbol:      map[symbol.TableSym]*resolved.Table{},
	}
	for _, byName := range out.Definitions {
		for _, d := range byName {
			out.DefinitionsBySymbol[d.Sym] = d
		}
	}
	for _, byName := range out.Enums {
		for _, e := range byName {
			out.EnumsBySymbol[e.Sym] = e
		}
	}
	for _, byName := range out.Tables {
		for _, t := range byName {
			out.TablesBySymbol[t.Sym] = t
		}
	}
	checkInvariants(out)

	cfg.trace("resolve: done, %d error(s)", len(errors.Errors(all)))
	return out, all
}
