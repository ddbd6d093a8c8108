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

// param resolves a formal parameter: its type via Type lookup, its
// symbol and location preserved verbatim (spec.md §4.6).
func (r *resolver) param(ns ast.NName, p ast.Param) resolved.Param {
	return resolved.Param{Sym: p.Sym, Name: p.Name, Type: r.lookupType(ns, p.Type)}
}

func (r *resolver) params(ns ast.NName, ps []ast.Param) []resolved.Param {
	out := make([]resolved.Param, len(ps))
	for i, p := range ps {
		out[i] = r.param(ns, p)
	}
	return out
}

// typeParams passes through structurally: full type resolution is
// deferred to the kind-inference phase.
func (r *resolver) typeParams(ps []ast.TypeParam) []resolved.TypeParam {
	out := make([]resolved.TypeParam, len(ps))
	for i, p := range ps {
		out[i] = resolved.TypeParam{Name: p.Name}
	}
	return out
}
