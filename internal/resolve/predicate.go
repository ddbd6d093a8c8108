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
	"github.com/flowlang/flowc/errors"
	"github.com/flowlang/flowc/resolved"
)

// headAtom resolves the head of a Datalog constraint (spec.md §4.5).
func (r *resolver) headAtom(ns ast.NName, h ast.HeadAtom) resolved.HeadAtom {
	switch x := h.(type) {
	case nil:
		return nil

	case ast.HeadTrue:
		return resolved.HeadTrue{}

	case ast.HeadFalse:
		return resolved.HeadFalse{}

	case *ast.HeadPositive:
		return resolved.HeadPositive{Table: r.lookupTable(ns, x.Table), Terms: r.exprs(ns, x.Terms)}

	case *ast.HeadNegative:
		return resolved.HeadNegative{Table: r.lookupTable(ns, x.Table), Terms: r.exprs(ns, x.Terms)}

	default:
		return nil
	}
}

// bodyAtom resolves one atom in the body of a Datalog constraint
// (spec.md §4.5). BodyFilter is the one place a reference lookup may
// land on a hook; whether that is permitted is governed by
// Config.RelaxedHooks (spec.md §9's Open Question).
func (r *resolver) bodyAtom(ns ast.NName, b ast.BodyAtom) resolved.BodyAtom {
	switch x := b.(type) {
	case nil:
		return nil

	case *ast.BodyPositive:
		return resolved.BodyPositive{Table: r.lookupTable(ns, x.Table), Terms: r.patterns(ns, x.Terms)}

	case *ast.BodyNegative:
		return resolved.BodyNegative{Table: r.lookupTable(ns, x.Table), Terms: r.patterns(ns, x.Terms)}

	case *ast.BodyFilter:
		callee := r.lookupRef(ns, x.Pred)
		if callee.Hook != nil && r.cfg.strictHooks() {
			r.errf(errors.UnexpectedHookErr(x.Pred.Pos(), x.Pred))
		}
		return resolved.BodyFilter{Pred: callee, Terms: r.exprs(ns, x.Terms)}

	case *ast.BodyLoop:
		return resolved.BodyLoop{Pat: r.pattern(ns, x.Pat), Source: r.expr(ns, x.Source)}

	default:
		return nil
	}
}

func (r *resolver) patterns(ns ast.NName, ps []ast.Pattern) []resolved.Pattern {
	out := make([]resolved.Pattern, len(ps))
	for i, p := range ps {
		out[i] = r.pattern(ns, p)
	}
	return out
}

func (r *resolver) bodyAtoms(ns ast.NName, bs []ast.BodyAtom) []resolved.BodyAtom {
	out := make([]resolved.BodyAtom, len(bs))
	for i, b := range bs {
		out[i] = r.bodyAtom(ns, b)
	}
	return out
}

// constraint resolves a single Datalog rule (or fact).
func (r *resolver) constraint(ns ast.NName, c *ast.Constraint) *resolved.Constraint {
	return &resolved.Constraint{Head: r.headAtom(ns, c.Head), Body: r.bodyAtoms(ns, c.Body)}
}

// property resolves a standalone assertion.
func (r *resolver) property(ns ast.NName, p *ast.Property) *resolved.Property {
	return &resolved.Property{Expr: r.expr(ns, p.Expr)}
}
