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

// Package traversal implements the Traversal Driver (spec §4.6): visits
// a translation unit, deduplicates declarations by canonical identity,
// gates by owning target, dispatches to the Declaration Importers, and
// interleaves the Comment Manager's floating comments.
package traversal

import "github.com/google/cppheaderir/ir"

// Config is the build-system-supplied configuration (spec §6
// Configuration).
type Config struct {
	// PublicHeaderNames is appended to IR.UsedHeaders verbatim, in order.
	PublicHeaderNames []ir.HeaderName
	// HeadersToTargets maps a header spelling to the build label that
	// owns it; Driver.owningTarget walks a declaration's include chain,
	// innermost first, until a mapped header is found.
	HeadersToTargets map[ir.HeaderName]ir.Label
	CurrentTarget    ir.Label
}

// unmappedSystemHeaderTarget and unmappedBuiltinTarget are the two
// fallback owning targets spec §6 Configuration names explicitly.
// unmappedHeaderTarget handles the case the spec leaves unnamed: a
// non-system header with a real filename that simply isn't in
// HeadersToTargets, meaning it belongs to some other build target this
// configuration doesn't know about. It is a label no CurrentTarget will
// ever equal, so such declarations are reliably gated out rather than
// spuriously attributed to the current target (see DESIGN.md).
const (
	unmappedSystemHeaderTarget = ir.Label("//:virtual_clang_resource_dir_target")
	unmappedBuiltinTarget      = ir.Label("//:builtin")
	unmappedHeaderTarget       = ir.Label("//:unmapped_header_target")
)
