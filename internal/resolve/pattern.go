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

// pattern walks a Named Pattern (spec.md §4.3). Literals, wildcard,
// and variable patterns pass through; tuple patterns recurse; tag
// patterns invoke tag lookup.
func (r *resolver) pattern(ns ast.NName, p ast.Pattern) resolved.Pattern {
	switch x := p.(type) {
	case nil:
		return nil

	case *ast.PWild:
		return resolved.PWild{}

	case *ast.PVar:
		return resolved.PVar{Name: x.Name}

	case *ast.PLit:
		return resolved.PLit{Kind: x.Kind, Value: x.Value}

	case *ast.PTuple:
		elems := make([]resolved.Pattern, len(x.Elems))
		for i, e := range x.Elems {
			elems[i] = r.pattern(ns, e)
		}
		return resolved.PTuple{Elems: elems}

	case *ast.PTag:
		sym := r.lookupTag(ns, x.Enum, x.Tag)
		return resolved.PTag{Enum: sym, Tag: x.Tag.Name, Inner: r.pattern(ns, x.Inner)}

	default:
		return nil
	}
}
