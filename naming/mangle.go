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

package naming

import (
	"fmt"
	"strings"

	"github.com/google/cppheaderir/ir"
)

// Mangle produces the Itanium-flavored mangled name for a declaration.
// classNames is the (possibly empty) nested-name-specifier for a member
// function, outermost first; paramTypes excludes the synthetic __this
// parameter, which the Itanium ABI never mangles explicitly.
//
// Constructors and destructors always use the "complete object" variant
// (C1/D1); the "base object" (C2/D2) and "deleting" (D0) variants are
// never emitted (spec §4.4).
func Mangle(classNames []string, name ir.UnqualifiedIdentifier, paramTypes []ir.CcType) string {
	params := encodeParams(paramTypes)

	if len(classNames) == 0 {
		ident, _ := name.Identifier()
		return "_Z" + lengthPrefixed(string(ident)) + params
	}

	var b strings.Builder
	b.WriteString("_ZN")
	for _, c := range classNames {
		b.WriteString(lengthPrefixed(c))
	}
	switch {
	case name.IsConstructor():
		b.WriteString("C1")
	case name.IsDestructor():
		b.WriteString("D1")
	default:
		ident, _ := name.Identifier()
		b.WriteString(lengthPrefixed(string(ident)))
	}
	b.WriteString("E")
	b.WriteString(params)
	return b.String()
}

func encodeParams(paramTypes []ir.CcType) string {
	if len(paramTypes) == 0 {
		return "v"
	}
	var b strings.Builder
	for _, p := range paramTypes {
		b.WriteString(encodeCcType(p))
	}
	return b.String()
}

func encodeCcType(t ir.CcType) string {
	if t.IsVoid() {
		return "v"
	}
	switch t.Name {
	case ir.PointerSpelling:
		return "P" + encodeCcType(t.TypeParams[0])
	case ir.ReferenceSpelling:
		return "R" + encodeCcType(t.TypeParams[0])
	}

	base, ok := builtinCodes[t.Name]
	if !ok {
		base = lengthPrefixed(t.Name)
	}
	if t.IsConst {
		base = "K" + base
	}
	return base
}

// builtinCodes are the Itanium builtin-type mangling codes this mangler
// knows about (spec §4.1's builtin set, plus the signed-char/short/long
// family the ABI distinguishes even though the type mapper folds them
// into the same width-based target names).
var builtinCodes = map[string]string{
	"void":               "v",
	"bool":               "b",
	"char":               "c",
	"signed char":        "a",
	"unsigned char":      "h",
	"short":              "s",
	"unsigned short":     "t",
	"int":                "i",
	"unsigned int":       "j",
	"long":               "l",
	"unsigned long":      "m",
	"long long":          "x",
	"unsigned long long": "y",
	"float":              "f",
	"double":             "d",
}

func lengthPrefixed(name string) string {
	return fmt.Sprintf("%d%s", len(name), name)
}
