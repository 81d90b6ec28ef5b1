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

// Package typemap implements the Type Mapper (spec §4.1): a pure
// function from a qualified C++ type to a dual-sided ir.MappedType, or a
// structured error naming the unsupported spelling.
package typemap

import (
	"fmt"

	"github.com/google/cppheaderir/ir"
	"github.com/google/cppheaderir/lifetime"
)

// Kind is the shape of a CxxType node, as reported by the parser.
type Kind uint8

const (
	KindBuiltin = Kind(iota)
	KindPointer
	KindLValueReference
	KindTag
	KindTypedef
)

// Builtin describes a C++ builtin type: bool, float, double, void, or an
// integer of IntWidth bits (8/16/32/64), with IntWidth == 0 meaning "not
// an integer" (i.e. bool/float/double/void, distinguished by Name).
type Builtin struct {
	Name     string // "bool", "float", "double", "void", or the integer's spelling
	IntWidth int
	Signed   bool
}

// CxxType is a qualified C++ type, exactly as much of it as the Type
// Mapper needs: enough to drive the priority-ordered algorithm in spec
// §4.1 without requiring desugaring.
type CxxType struct {
	// Spelling is the *unqualified* spelling as written, used for the
	// well-known short-circuit and preserved verbatim as the cc-side name.
	Spelling string
	IsConst  bool
	Kind     Kind

	Pointee *CxxType // set iff Kind is KindPointer or KindLValueReference
	Builtin Builtin  // set iff Kind is KindBuiltin

	// DeclId is the canonical declaration id for a KindTag or KindTypedef.
	DeclId ir.DeclId
}

// KnownTypeDecls answers whether a canonical declaration has already
// been imported (and so may be referenced by a tag/typedef type), and
// what its translated identifier is. The traversal driver owns the
// concrete set (spec §3 "known_type_decls").
type KnownTypeDecls interface {
	Lookup(id ir.DeclId) (name string, ok bool)
}

// ErrorURL identifies the UnsupportedType error kind for upstream
// surfacing (spec §4.1: "a well-known URL so upstream code may surface
// the offending spelling").
const ErrorURL = "type.googleapis.com/devtools.cppheaderir.UnsupportedType"

// UnsupportedTypeError is returned when MapType cannot translate Q.
type UnsupportedTypeError struct {
	Spelling string
	URL      string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("Unsupported type '%s'", e.Spelling)
}

func unsupported(spelling string) error {
	return &UnsupportedTypeError{Spelling: spelling, URL: ErrorURL}
}

// MapType translates q into a MappedType, consuming lifetimes from the
// back of lts as pointer/reference layers are peeled (spec §4.1 step 2).
// nullable is passed on for the outermost pointer only (inner recursions
// get false); it does not change the result, and the MappedType records
// no nullability.
func MapType(q CxxType, lts lifetime.Stack, nullable bool, known KnownTypeDecls) (ir.MappedType, error) {
	// Step 1: well-known short-circuit. This must run before any other
	// rule so that e.g. "size_t" is never desugared into its builtin
	// underlying type.
	if target, ok := wellKnown[q.Spelling]; ok {
		mt := ir.MappedType{
			Cc: ir.CcType{Name: q.Spelling},
			Rs: ir.RsType{Name: target},
		}
		return withConst(mt, q.IsConst), nil
	}

	switch q.Kind {
	case KindPointer, KindLValueReference:
		return mapPointerOrRef(q, lts, nullable, known)
	case KindBuiltin:
		return mapBuiltin(q, known)
	case KindTag, KindTypedef:
		return mapDecl(q, known)
	default:
		return ir.MappedType{}, unsupported(q.Spelling)
	}
}

func withConst(mt ir.MappedType, isConst bool) ir.MappedType {
	mt.Cc.IsConst = isConst
	return mt
}

func mapPointerOrRef(q CxxType, lts lifetime.Stack, nullable bool, known KnownTypeDecls) (ir.MappedType, error) {
	if q.Pointee == nil {
		return ir.MappedType{}, unsupported(q.Spelling)
	}
	_, rest, _ := lts.PopTail()

	pointee, err := MapType(*q.Pointee, rest, false, known)
	if err != nil {
		return ir.MappedType{}, err
	}

	// nullable is not read: the *mut/*const spelling tracks the
	// pointee's constness only.
	_ = nullable
	ccName, rsName := ir.PointerSpelling, "*mut"
	if q.Pointee.IsConst {
		rsName = "*const"
	}
	if q.Kind == KindLValueReference {
		ccName, rsName = ir.ReferenceSpelling, "&"
	}

	mt := ir.MappedType{
		Cc: ir.CcType{Name: ccName, TypeParams: []ir.CcType{pointee.Cc}},
		Rs: ir.RsType{Name: rsName, TypeParams: []ir.RsType{pointee.Rs}},
	}
	return withConst(mt, q.IsConst), nil
}

func mapBuiltin(q CxxType, known KnownTypeDecls) (ir.MappedType, error) {
	b := q.Builtin
	switch b.Name {
	case "bool":
		return withConst(simple(q.Spelling, "bool"), q.IsConst), nil
	case "float":
		return withConst(simple(q.Spelling, "f32"), q.IsConst), nil
	case "double":
		return withConst(simple(q.Spelling, "f64"), q.IsConst), nil
	case "void":
		return ir.Void(), nil
	}
	if b.IntWidth == 0 {
		return ir.MappedType{}, unsupported(q.Spelling)
	}
	switch b.IntWidth {
	case 8, 16, 32, 64:
		target := fmt.Sprintf("i%d", b.IntWidth)
		if !b.Signed {
			target = fmt.Sprintf("u%d", b.IntWidth)
		}
		return withConst(simple(q.Spelling, target), q.IsConst), nil
	default:
		return ir.MappedType{}, unsupported(q.Spelling)
	}
}

func mapDecl(q CxxType, known KnownTypeDecls) (ir.MappedType, error) {
	name, ok := known.Lookup(q.DeclId)
	if !ok {
		return ir.MappedType{}, unsupported(q.Spelling)
	}
	id := q.DeclId
	mt := ir.MappedType{
		Cc: ir.CcType{Name: name, DeclId: &id},
		Rs: ir.RsType{Name: name, DeclId: &id},
	}
	return withConst(mt, q.IsConst), nil
}

func simple(ccName, rsName string) ir.MappedType {
	return ir.MappedType{Cc: ir.CcType{Name: ccName}, Rs: ir.RsType{Name: rsName}}
}
