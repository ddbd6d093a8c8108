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

import "github.com/kr/pretty"

// dump renders v for Config.Trace output. The teacher only reaches for
// kr/pretty in its own tests; a trace line here is the one place this
// package asks the same library to pretty-print a production value,
// since a resolved declaration is exactly the kind of deeply nested
// struct kr/pretty was built to render.
func dump(v any) string {
	return pretty.Sprint(v)
}
