// Copyright 2017 The Wuffs Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package naming implements the Name & Mangling Services (spec §4.4):
// turning a declaration's spelling into an ir.UnqualifiedIdentifier (with
// synthesized names for unnamed parameters and "this"), and producing
// platform mangled names for functions, constructors and destructors.
package naming

import (
	"fmt"

	"github.com/google/cppheaderir/ir"
)

// ThisParamName is the synthetic leading parameter name for an instance
// method's receiver (spec §3 FuncParam).
const ThisParamName = "__this"

// ParamName returns the parameter's identifier: its spelling if named,
// or "__param_<index>" if it was declared unnamed (spec §4.4).
func ParamName(spelling string, index int) ir.Identifier {
	if spelling != "" {
		return ir.Identifier(spelling)
	}
	return ir.Identifier(fmt.Sprintf("__param_%d", index))
}

// DeclName translates a non-parameter declaration's name. An empty
// spelling is a failure sentinel (None) per spec §4.4, reported to the
// caller as ok == false so it can emit UnresolvableName.
func DeclName(spelling string) (ir.Identifier, bool) {
	if spelling == "" {
		return "", false
	}
	return ir.Identifier(spelling), true
}
