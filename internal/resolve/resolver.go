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
)

// resolver holds the read-only input and the error accumulator shared
// by every category-level and sub-resolver. Mirrors the teacher's
// compiler struct in internal/core/compile: one small piece of state
// threaded through a family of methods, instead of a context.Context
// or a global.
type resolver struct {
	prog *ast.Program
	cfg  *Config

	errs errors.Error
}

func newResolver(cfg *Config, p *ast.Program) *resolver {
	return &resolver{prog: p, cfg: cfg}
}

// errf records a new error into r.errs. It returns nothing; call sites
// return their own zero value after calling it.
func (r *resolver) errf(err errors.Error) {
	r.errs = errors.Append(r.errs, err)
}
