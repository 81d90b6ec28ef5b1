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

package importer

import (
	"github.com/google/cppheaderir/ir"
	"github.com/google/cppheaderir/lifetime"
	"github.com/google/cppheaderir/naming"
	"github.com/google/cppheaderir/parserapi"
	"github.com/google/cppheaderir/specialmember"
	"github.com/google/cppheaderir/typemap"
)

// MutableRegistry is the subset of the known-type-decl set the record
// importer needs to provisionally insert and, on field failure, retract
// a record's canonical identity (spec §3 "provisionally known", §4.3
// Records step 4-5, §9 "Self-referential records").
type MutableRegistry interface {
	Registry
	Insert(id ir.DeclId, name string, passInRegisters bool)
	Retract(id ir.DeclId)
}

// Record imports one struct/class declaration. It returns (nil, nil)
// when d is nested inside a function (silently skipped, spec §4.3
// preamble), and a single UnsupportedItem for every other rejection
// (nested-in-record, union, template, or missing a complete definition).
func Record(d parserapi.RecordDecl, owningTarget ir.Label, known MutableRegistry) ([]ir.Item, error) {
	loc := d.Loc()
	qualifiedName := d.QualifiedName()

	if d.IsNestedInFunction() {
		return nil, nil
	}
	if d.IsNestedInRecord() {
		return unsupported(qualifiedName, "nested records are not supported", loc), nil
	}
	if d.IsUnion() {
		return unsupported(qualifiedName, "unions are not supported", loc), nil
	}
	if d.IsTemplate() {
		return unsupported(qualifiedName, "class templates and specializations are not supported", loc), nil
	}
	if !d.HasDefinition() {
		return unsupported(qualifiedName, "record lacks a complete definition", loc), nil
	}

	// Step 1 ("force implicit member generation") is the parser's
	// responsibility: by the time RecordDecl reaches us, its special
	// member facts are already computable.

	isStruct := d.IsStruct()

	name, ok := naming.DeclName(d.Name())
	if !ok {
		return unsupported(qualifiedName, "record has no usable name", loc), nil
	}

	id := d.CanonicalId()
	known.Insert(id, string(name), d.CanPassInRegisters())

	fields, err := importFields(d.Fields(), isStruct, known)
	if err != nil {
		known.Retract(id)
		return unsupported(qualifiedName, err.Error(), loc), nil
	}

	sizeBytes, alignBytes, layoutOk := d.Layout()
	if !layoutOk {
		known.Retract(id)
		return unsupported(qualifiedName, "record layout is unavailable", loc), nil
	}

	r := &ir.Record{
		Identifier:      ir.NewIdentifier(string(name)),
		Id:              id,
		OwningTarget:    owningTarget,
		DocComment:      docCommentOf(d),
		Fields:          fields,
		SizeBytes:       sizeBytes,
		AlignmentBytes:  alignBytes,
		CopyConstructor: specialmember.Classify(d.CopyConstructor(), isStruct),
		MoveConstructor: specialmember.Classify(d.MoveConstructor(), isStruct),
		Destructor:      specialmember.Classify(d.Destructor(), isStruct),
		IsTrivialAbi:    d.CanPassInRegisters(),
		IsFinal:         d.IsFinal(),
		SourceLoc:       loc,
	}
	return []ir.Item{r}, nil
}

func importFields(fieldDecls []parserapi.FieldDecl, isStruct bool, known typemap.KnownTypeDecls) ([]ir.Field, error) {
	fields := make([]ir.Field, 0, len(fieldDecls))
	defaultAccess := ir.Public
	if !isStruct {
		defaultAccess = ir.Private
	}
	for _, fd := range fieldDecls {
		mt, err := typemap.MapType(fd.Type(), lifetime.Stack{}, false, known)
		if err != nil {
			return nil, err
		}
		name, ok := naming.DeclName(fd.Name())
		if !ok {
			return nil, errUnresolvableFieldName
		}
		access := defaultAccess
		if fd.AccessSpecified() {
			access = fd.Access()
		}
		fields = append(fields, ir.Field{
			Identifier: name,
			DocComment: docCommentOf(fd),
			Type:       mt,
			Access:     access,
			Offset:     fd.OffsetBits(),
		})
	}
	return fields, nil
}

var errUnresolvableFieldName = unresolvableNameError{}

type unresolvableNameError struct{}

func (unresolvableNameError) Error() string { return "field has no usable name" }

func docCommentOf(d parserapi.Decl) *string {
	if text, _, ok := d.DocComment(); ok {
		return &text
	}
	return nil
}
