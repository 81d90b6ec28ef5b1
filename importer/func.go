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

// Package importer implements the Declaration Importers (spec §4.3): one
// importer per declaration kind, each producing zero or more ir.Item
// values. The record importer also registers the record's canonical
// identity in the traversal driver's known-type-decl set; the function
// and type-alias importers register nothing there.
package importer

import (
	"fmt"
	"sort"

	"github.com/google/cppheaderir/ir"
	"github.com/google/cppheaderir/lifetime"
	"github.com/google/cppheaderir/naming"
	"github.com/google/cppheaderir/parserapi"
	"github.com/google/cppheaderir/typemap"
)

// RegisterPassability answers whether a known record type can be passed
// by value in registers, the check a function's by-value record
// parameters and return type must pass (spec §4.3 step 3/4, Glossary
// "Passable in registers").
type RegisterPassability interface {
	CanPassInRegisters(id ir.DeclId) bool
}

// Registry is the subset of the traversal driver's known_type_decls the
// importers need: type-name resolution (for the Type Mapper) plus the
// register-passability predicate above.
type Registry interface {
	typemap.KnownTypeDecls
	RegisterPassability
}

// Lifetimes is the subset of the traversal driver's per-translation-unit
// lifetime pool the function importer needs.
type Lifetimes interface {
	Intern(name string) (lifetime.Id, error)
	Resolve(id lifetime.Id) (string, bool)
}

// Func imports one function or method declaration. It returns nil items
// (not even an UnsupportedItem) for a non-public member function (spec
// §4.3 step 5) or a deleted function (spec §4.3 preamble).
func Func(d parserapi.FuncDecl, owningTarget ir.Label, known Registry, lts Lifetimes) ([]ir.Item, error) {
	if d.IsDeleted() {
		return nil, nil
	}
	if d.IsMemberFunction() && d.Access() != ir.Public {
		return nil, nil
	}

	loc := d.Loc()
	qualifiedName := d.QualifiedName()

	if d.HasLifetimeAnnotations() {
		if len(d.ParamLifetimes()) != len(d.Params()) {
			return unsupported(qualifiedName, "lifetime annotation count does not match parameter count", loc), nil
		}
	}

	var params []ir.FuncParam
	var paramCcTypes []ir.CcType
	observed := map[lifetime.Id]bool{}
	var observedOrder []lifetime.Id

	observe := func(names []string) error {
		for _, n := range names {
			id, err := lts.Intern(n)
			if err != nil {
				return err
			}
			if id != 0 && !observed[id] {
				observed[id] = true
				observedOrder = append(observedOrder, id)
			}
		}
		return nil
	}

	var memberMeta *ir.MemberFuncMetadata
	if d.IsMemberFunction() && !d.IsStatic() {
		recv := d.ReceiverRecord()
		if recv == nil {
			return unsupported(qualifiedName, "member function without a receiver record", loc), nil
		}
		var thisLts []string
		if d.HasLifetimeAnnotations() {
			thisLts = d.ThisLifetimes()
		}
		if err := observe(thisLts); err != nil {
			return nil, err
		}
		recvId := recv.CanonicalId()
		thisType := typemap.CxxType{Kind: typemap.KindPointer, Spelling: "*", Pointee: &typemap.CxxType{Kind: typemap.KindTag, DeclId: recvId}}
		mt, err := typemap.MapType(thisType, lifetime.NewStack(internAll(lts, thisLts)), false, known)
		if err != nil {
			return unsupported(qualifiedName, err.Error(), loc), nil
		}
		params = append(params, ir.FuncParam{Type: mt, Identifier: naming.ThisParamName})
		paramCcTypes = append(paramCcTypes, mt.Cc)
		memberMeta = &ir.MemberFuncMetadata{Kind: memberFuncKind(d), RecordDeclId: recvId, IsInstanceMethod: true}
	}

	for i, p := range d.Params() {
		var lts_ []string
		if d.HasLifetimeAnnotations() {
			lts_ = d.ParamLifetimes()[i]
		}
		if err := observe(lts_); err != nil {
			return nil, err
		}
		mt, err := typemap.MapType(p.Type(), lifetime.NewStack(internAll(lts, lts_)), false, known)
		if err != nil {
			return unsupported(qualifiedName, err.Error(), loc), nil
		}
		if !passableByValue(p.Type(), known) {
			return unsupported(qualifiedName,
				fmt.Sprintf("parameter %q is a non-trivial-ABI record passed by value", p.Name()), loc), nil
		}
		params = append(params, ir.FuncParam{Type: mt, Identifier: naming.ParamName(p.Name(), i)})
		paramCcTypes = append(paramCcTypes, mt.Cc)
	}

	var returnLts []string
	if d.HasLifetimeAnnotations() {
		returnLts = d.ReturnLifetimes()
	}
	if err := observe(returnLts); err != nil {
		return nil, err
	}
	retType, err := typemap.MapType(d.ReturnType(), lifetime.NewStack(internAll(lts, returnLts)), false, known)
	if err != nil {
		return unsupported(qualifiedName, err.Error(), loc), nil
	}
	if !passableByValue(d.ReturnType(), known) {
		return unsupported(qualifiedName, "return type is a non-trivial-ABI record passed by value", loc), nil
	}

	name := funcName(d)
	mangled := naming.Mangle(classNamesOf(d), name, paramCcTypesWithoutThis(d, paramCcTypes))

	lifetimeParams := make([]ir.LifetimeRef, 0, len(observedOrder))
	for _, id := range observedOrder {
		n, _ := lts.Resolve(id)
		lifetimeParams = append(lifetimeParams, ir.LifetimeRef{Name: n, Id: uint32(id)})
	}
	sortLifetimeRefs(lifetimeParams)

	var doc *string
	if text, _, ok := d.DocComment(); ok {
		doc = &text
	}

	f := &ir.Func{
		Name:               name,
		OwningTarget:       owningTarget,
		DocComment:         doc,
		MangledName:        mangled,
		ReturnType:         retType,
		Params:             params,
		LifetimeParams:     lifetimeParams,
		IsInline:           d.IsInline(),
		MemberFuncMetadata: memberMeta,
		SourceLoc:          loc,
	}
	return []ir.Item{f}, nil
}

func funcName(d parserapi.FuncDecl) ir.UnqualifiedIdentifier {
	switch {
	case d.IsConstructor():
		return ir.ConstructorSentinel()
	case d.IsDestructor():
		return ir.DestructorSentinel()
	default:
		return ir.NewIdentifier(d.Name())
	}
}

func memberFuncKind(d parserapi.FuncDecl) ir.MemberFuncKind {
	switch {
	case d.IsDestructor():
		return ir.Destructor
	case d.IsConstructor():
		switch {
		case d.IsDefaultConstructor():
			return ir.DefaultConstructor
		case d.IsCopyConstructor():
			return ir.CopyConstructor
		case d.IsMoveConstructor():
			return ir.MoveConstructor
		default:
			return ir.OtherConstructor
		}
	default:
		return ir.OtherMemberFunc
	}
}

func classNamesOf(d parserapi.FuncDecl) []string {
	if !d.IsMemberFunction() || d.IsStatic() {
		return nil
	}
	recv := d.ReceiverRecord()
	if recv == nil {
		return nil
	}
	return []string{recv.Name()}
}

// paramCcTypesWithoutThis strips the synthetic __this entry the caller
// already appended to paramCcTypes for non-static member functions,
// since the Itanium ABI never mangles it explicitly.
func paramCcTypesWithoutThis(d parserapi.FuncDecl, paramCcTypes []ir.CcType) []ir.CcType {
	if d.IsMemberFunction() && !d.IsStatic() && len(paramCcTypes) > 0 {
		return paramCcTypes[1:]
	}
	return paramCcTypes
}

func internAll(lts Lifetimes, names []string) []lifetime.Id {
	ids := make([]lifetime.Id, 0, len(names))
	for _, n := range names {
		id, err := lts.Intern(n)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

func passableByValue(t typemap.CxxType, known RegisterPassability) bool {
	if t.Kind != typemap.KindTag {
		return true
	}
	return known.CanPassInRegisters(t.DeclId)
}

func sortLifetimeRefs(refs []ir.LifetimeRef) {
	sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
}

func unsupported(name, message string, loc ir.SourceLoc) []ir.Item {
	return []ir.Item{&ir.UnsupportedItem{Name: name, Message: message, SourceLoc: loc}}
}
