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

package typemap

// wellKnown is the authoritative table of C++ standard-library type
// spellings whose target-language mapping is fixed, bypassing builtin
// desugaring entirely (spec §4.1 step 1). Both the bare and "std::"
// qualified spellings are listed, since the mapper never desugars to
// decide between them.
var wellKnown = buildWellKnown()

func buildWellKnown() map[string]string {
	m := map[string]string{}
	add := func(target string, names ...string) {
		for _, n := range names {
			m[n] = target
		}
	}
	add("isize", "ptrdiff_t", "intptr_t", "std::ptrdiff_t", "std::intptr_t")
	add("usize", "size_t", "uintptr_t", "std::size_t", "std::uintptr_t")
	add("i8", "int8_t", "std::int8_t")
	add("i16", "int16_t", "std::int16_t")
	add("i32", "int32_t", "std::int32_t")
	add("i64", "int64_t", "std::int64_t")
	add("u8", "uint8_t", "std::uint8_t")
	add("u16", "uint16_t", "std::uint16_t")
	add("u32", "uint32_t", "std::uint32_t")
	add("u64", "uint64_t", "std::uint64_t")
	add("u16", "char16_t")
	add("u32", "char32_t")
	add("i32", "wchar_t")
	return m
}

// IsWellKnown reports whether spelling is absorbed by the well-known
// type table, bypassing a TypeAlias declaration with the same spelling
// (spec §4.3 "Type aliases").
func IsWellKnown(spelling string) bool {
	_, ok := wellKnown[spelling]
	return ok
}
