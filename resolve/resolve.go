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

// Package resolve is the public entry point to the name-resolution
// phase. The algorithm itself lives in internal/resolve, following
// the teacher's convention of keeping the implementation package
// internal and the public surface a thin façade over it.
package resolve

import (
	"github.com/flowlang/flowc/ast"
	"github.com/flowlang/flowc/errors"
	internalresolve "github.com/flowlang/flowc/internal/resolve"
	"github.com/flowlang/flowc/resolved"
)

// Config configures a Resolve call. See internal/resolve.Config for
// field documentation; this is the same type re-exported so callers
// outside the module never need to import the internal package.
type Config = internalresolve.Config

// Resolve binds every textual reference in p to the canonical symbol
// of its declaration, producing a Resolved Program. Resolution is
// accumulating: a returned non-nil error may be an errors.List
// collecting every independent failure found in a single pass, not
// just the first one.
func Resolve(cfg *Config, p *ast.Program) (*resolved.Program, errors.Error) {
	return internalresolve.Run(cfg, p)
}
