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

package resolved

import (
	"github.com/flowlang/flowc/ast"
	"github.com/flowlang/flowc/symbol"
)

// Pattern is a Resolved pattern.
type Pattern interface{ isPattern() }

// PWild is the wildcard pattern.
type PWild struct{}

func (PWild) isPattern() {}

// PVar binds the scrutinee to a fresh local.
type PVar struct{ Name string }

func (PVar) isPattern() {}

// PLit is a literal pattern, threaded through unchanged.
type PLit struct {
	Kind  ast.LitKind
	Value string
}

func (PLit) isPattern() {}

// PTuple destructures a tuple.
type PTuple struct{ Elems []Pattern }

func (PTuple) isPattern() {}

// PTag matches an enum case; Enum is the bound enum symbol found by
// tag lookup.
type PTag struct {
	Enum  symbol.EnumSym
	Tag   string
	Inner Pattern
}

func (PTag) isPattern() {}
