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

//go:build !flowdebug

package resolve

import "github.com/flowlang/flowc/resolved"

// checkInvariants is a no-op outside a flowdebug build; see
// invariants_flowdebug.go for the real, cmp-based check.
func checkInvariants(p *resolved.Program) {}
