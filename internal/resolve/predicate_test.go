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
	"github.com/flowlang/flowc/errors"
)

// A hook reached from a Datalog filter position is rejected under the
// strict (zero-value) Config, matching spec.md §9's resolution of the
// Open Question about hooks in predicate position.
func TestBodyFilter_StrictRejectsHookCallee(t *testing.T) {
	p := ast.NewProgram()
	p.Hooks[ast.HookKey(ast.Root, "is_even")] = ast.Hook{}

	r := newResolver(nil, p)
	got := r.bodyAtom(ast.Root, &ast.BodyFilter{Pred: qname("is_even"), At: pos(1)})

	qt.Assert(t, qt.IsNotNil(got))
	errs := errors.Errors(r.errs)
	qt.Assert(t, qt.HasLen(errs, 1))
	qt.Assert(t, qt.Equals(errs[0].Code(), errors.UnexpectedHook))
}

// The same program resolves cleanly under RelaxedHooks, preserved only
// for host embedders migrating programs written against the source's
// original, unchecked behaviour.
func TestBodyFilter_RelaxedAllowsHookCallee(t *testing.T) {
	p := ast.NewProgram()
	p.Hooks[ast.HookKey(ast.Root, "is_even")] = ast.Hook{}

	r := newResolver(&Config{RelaxedHooks: true}, p)
	_ = r.bodyAtom(ast.Root, &ast.BodyFilter{Pred: qname("is_even"), At: pos(1)})

	qt.Assert(t, qt.IsNil(r.errs))
}
