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

package ir

// PointerSpelling and ReferenceSpelling are the fixed cc-side names used
// for pointer and lvalue-reference wrapper types (spec §3 MappedType).
const (
	PointerSpelling   = "*"
	ReferenceSpelling = "&"
)

// CcType is the C++ side of a MappedType.
type CcType struct {
	Name       string
	IsConst    bool
	TypeParams []CcType
	DeclId     *DeclId
}

func (c CcType) IsVoid() bool    { return c.Name == "" && len(c.TypeParams) == 0 }
func (c CcType) IsPointer() bool { return c.Name == PointerSpelling }
func (c CcType) IsReference() bool {
	return c.Name == ReferenceSpelling
}

// RsType is the target-language (e.g. Rust) side of a MappedType.
type RsType struct {
	Name       string
	TypeParams []RsType
	DeclId     *DeclId
}

func (r RsType) IsVoid() bool    { return r.Name == "" && len(r.TypeParams) == 0 }
func (r RsType) IsPointer() bool { return r.Name == "*mut" || r.Name == "*const" }

// MappedType pairs the C++-side and target-side descriptions of the same
// abstract type. The two sides must be structurally parallel: both
// non-pointer, or both pointer/reference with a single, parallel
// pointee child and matching type_params arity (spec §3 invariant).
type MappedType struct {
	Cc CcType
	Rs RsType
}

// IsVoid reports whether this MappedType represents C++ void.
func (m MappedType) IsVoid() bool { return m.Cc.IsVoid() && m.Rs.IsVoid() }

// Void is the canonical void/() mapped type.
func Void() MappedType { return MappedType{} }
