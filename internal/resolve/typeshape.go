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

// resolveShape maps a Named Type node to its Resolved.Shape
// counterpart without binding any reference to a symbol (spec.md
// §4.2, "Type resolver"): it exists solely so an enum's own declared
// type survives into diagnostics exactly as written, separately from
// its cases' payload types, which do go through the full canonical
// lookupType (§4.1) because the type-checker genuinely needs their
// resolved kinds.
//
// This never fails: an unresolvable name is simply rendered as
// written, since nothing here is consumed by anything but a
// diagnostic renderer.
func resolveShape(t ast.Type) resolved.Shape {
	switch x := t.(type) {
	case nil:
		return nil

	case *ast.TVar:
		return resolved.ShapeVar{Name: x.Name}

	case *ast.TUnit:
		return resolved.ShapeUnit{}

	case *ast.TRef:
		return resolved.ShapeRef{Written: x.QName.String()}

	case *ast.TEnum:
		return resolved.ShapeEnum{Written: x.Sym.String()}

	case *ast.TTuple:
		elems := make([]resolved.Shape, len(x.Elems))
		for i, e := range x.Elems {
			elems[i] = resolveShape(e)
		}
		return resolved.ShapeTuple{Elems: elems}

	case *ast.TArrow:
		params := make([]resolved.Shape, len(x.Params))
		for i, p := range x.Params {
			params[i] = resolveShape(p)
		}
		return resolved.ShapeArrow{Params: params, Ret: resolveShape(x.Ret)}

	case *ast.TApply:
		args := make([]resolved.Shape, len(x.Args))
		for i, a := range x.Args {
			args[i] = resolveShape(a)
		}
		return resolved.ShapeApply{Base: resolveShape(x.Base), Args: args}

	default:
		return nil
	}
}
