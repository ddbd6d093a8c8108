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
	"github.com/flowlang/flowc/ast"
	"github.com/flowlang/flowc/resolved"
)

// definition resolves a Definition: its params and result type via
// Type lookup, its body via the expression resolver. The symbol is
// preserved verbatim (spec.md §4.7).
func (r *resolver) definition(ns ast.NName, d *ast.Definition) *resolved.Definition {
	return &resolved.Definition{
		Sym:        d.Sym,
		TypeParams: r.typeParams(d.TypeParams),
		Params:     r.params(ns, d.Params),
		ResultType: r.lookupType(ns, d.ResultType),
		Body:       r.expr(ns, d.Body),
	}
}

// enum resolves an Enum. Each case's payload type goes through the
// full canonical Type lookup (the type-checker needs precise kinds),
// while the enum's own declared shape is mirrored with resolveShape
// for diagnostics only (spec.md §4.2, §4.7).
func (r *resolver) enum(ns ast.NName, e *ast.Enum) *resolved.Enum {
	cases := make(map[string]resolved.EnumCase, len(e.Cases))
	for name, c := range e.Cases {
		cases[name] = resolved.EnumCase{Name: c.Name, Tag: c.Tag, Type: r.lookupType(ns, c.Type)}
	}
	return &resolved.Enum{
		Sym:        e.Sym,
		TypeParams: r.typeParams(e.TypeParams),
		Cases:      cases,
		Shape:      resolveShape(e.Shape),
	}
}

// index resolves a secondary index declaration: its table reference
// via Table lookup, its attribute groups passed through opaquely.
func (r *resolver) index(ns ast.NName, i *ast.Index) *resolved.Index {
	return &resolved.Index{Table: r.lookupTable(ns, i.Table), Groups: i.Groups}
}

// boundedLattice resolves a lattice declaration: the carrier type via
// Type lookup, then its five operators in fixed order (spec.md §4.7).
func (r *resolver) boundedLattice(ns ast.NName, l *ast.BoundedLattice) *resolved.BoundedLattice {
	return &resolved.BoundedLattice{
		Carrier: r.lookupType(ns, l.Carrier),
		Bottom:  r.expr(ns, l.Bottom),
		Top:     r.expr(ns, l.Top),
		Leq:     r.expr(ns, l.Leq),
		Lub:     r.expr(ns, l.Lub),
		Glb:     r.expr(ns, l.Glb),
	}
}

// attributes resolves a table's columns.
func (r *resolver) attributes(ns ast.NName, as []ast.Attribute) []resolved.Attribute {
	out := make([]resolved.Attribute, len(as))
	for i, a := range as {
		out[i] = resolved.Attribute{Name: a.Name, Type: r.lookupType(ns, a.Type)}
	}
	return out
}

// table resolves a Relation or Lattice-valued table declaration:
// every attribute's type via Type lookup, its symbol and kind
// preserved verbatim (spec.md §4.7).
func (r *resolver) table(ns ast.NName, t *ast.Table) *resolved.Table {
	out := &resolved.Table{
		Sym:      t.Sym,
		Kind:     t.Kind,
		Attrs:    r.attributes(ns, t.Attrs),
		KeyAttrs: r.attributes(ns, t.KeyAttrs),
	}
	if t.ValueAttr != nil {
		v := resolved.Attribute{Name: t.ValueAttr.Name, Type: r.lookupType(ns, t.ValueAttr.Type)}
		out.ValueAttr = &v
	}
	return out
}
