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

// Package parsertest is an in-memory fixture implementation of
// parserapi, used the way lang/check/check_test.go builds a hand-rolled
// AST table to drive the checker: tests construct Func/Record/Typedef
// values directly as Go literals instead of parsing real C++ source.
package parsertest

import (
	"github.com/google/cppheaderir/ir"
	"github.com/google/cppheaderir/parserapi"
	"github.com/google/cppheaderir/specialmember"
	"github.com/google/cppheaderir/typemap"
)

// DeclCommon holds the fields shared by every fixture declaration.
type DeclCommon struct {
	Id                 ir.DeclId
	DeclLoc            ir.SourceLoc
	DeclExtentEnd      ir.SourceLoc
	DeclName           string
	DeclQualifiedName  string
	FromNamespace      bool
	Namespace          bool
	Chain              []ir.HeaderName
	InSystemHeader     bool
	NonBuiltinFilename bool
	DocText            string
	DocLoc             ir.SourceLoc
	HasDoc             bool
}

func (d DeclCommon) CanonicalId() ir.DeclId       { return d.Id }
func (d DeclCommon) Loc() ir.SourceLoc            { return d.DeclLoc }
func (d DeclCommon) ExtentEnd() ir.SourceLoc       { return d.DeclExtentEnd }
func (d DeclCommon) Name() string                  { return d.DeclName }
func (d DeclCommon) QualifiedName() string         { return d.DeclQualifiedName }
func (d DeclCommon) IsFromNamespace() bool         { return d.FromNamespace }
func (d DeclCommon) IsNamespace() bool             { return d.Namespace }
func (d DeclCommon) IncludeChain() []ir.HeaderName { return d.Chain }
func (d DeclCommon) IsInSystemHeader() bool        { return d.InSystemHeader }
func (d DeclCommon) HasNonBuiltinFilename() bool   { return d.NonBuiltinFilename }
func (d DeclCommon) DocComment() (string, ir.SourceLoc, bool) {
	return d.DocText, d.DocLoc, d.HasDoc
}

// Param is a fixture function parameter.
type Param struct {
	ParamName string
	ParamType typemap.CxxType
}

func (p Param) Name() string          { return p.ParamName }
func (p Param) Type() typemap.CxxType { return p.ParamType }

// Func is a fixture function/method declaration.
type Func struct {
	DeclCommon

	Member   bool
	Static   bool
	Deleted  bool
	Inline   bool
	Acc      ir.Access
	Ctor        bool
	Dtor        bool
	DefaultCtor bool
	CopyCtorFn  bool
	MoveCtorFn  bool
	Receiver    *Record

	Parameters []Param
	RetType    typemap.CxxType

	HasLifetimes bool
	ThisLts      []string
	ReturnLts    []string
	ParamLts     [][]string
}

func (f *Func) IsMemberFunction() bool { return f.Member }
func (f *Func) IsStatic() bool         { return f.Static }
func (f *Func) IsDeleted() bool        { return f.Deleted }
func (f *Func) IsInline() bool         { return f.Inline }
func (f *Func) Access() ir.Access      { return f.Acc }
func (f *Func) IsConstructor() bool    { return f.Ctor }
func (f *Func) IsDestructor() bool     { return f.Dtor }
func (f *Func) IsDefaultConstructor() bool { return f.DefaultCtor }
func (f *Func) IsCopyConstructor() bool    { return f.CopyCtorFn }
func (f *Func) IsMoveConstructor() bool    { return f.MoveCtorFn }

func (f *Func) ReceiverRecord() parserapi.RecordDecl {
	if f.Receiver == nil {
		return nil
	}
	return f.Receiver
}

func (f *Func) Params() []parserapi.ParamDecl {
	out := make([]parserapi.ParamDecl, len(f.Parameters))
	for i, p := range f.Parameters {
		out[i] = p
	}
	return out
}

func (f *Func) ReturnType() typemap.CxxType { return f.RetType }

func (f *Func) HasLifetimeAnnotations() bool { return f.HasLifetimes }
func (f *Func) ThisLifetimes() []string      { return f.ThisLts }
func (f *Func) ReturnLifetimes() []string    { return f.ReturnLts }
func (f *Func) ParamLifetimes() [][]string   { return f.ParamLts }

// Field is a fixture struct/class field.
type Field struct {
	DeclCommon

	FieldType     typemap.CxxType
	HasAccess     bool
	Acc           ir.Access
	OffsetBitsVal uint64
}

func (f *Field) Type() typemap.CxxType { return f.FieldType }
func (f *Field) AccessSpecified() bool { return f.HasAccess }
func (f *Field) Access() ir.Access     { return f.Acc }
func (f *Field) OffsetBits() uint64    { return f.OffsetBitsVal }

// Record is a fixture struct/class declaration.
type Record struct {
	DeclCommon

	Struct          bool
	Union           bool
	NestedInRecord  bool
	NestedInFunc    bool
	Template        bool
	Defined         bool
	FieldList       []*Field
	Final           bool
	SizeBytesVal    uint64
	AlignBytesVal   uint64
	LayoutOk        bool
	CopyCtor        specialmember.Member
	MoveCtor        specialmember.Member
	Dtor            specialmember.Member
	PassInRegisters bool
}

func (r *Record) IsStruct() bool           { return r.Struct }
func (r *Record) IsUnion() bool            { return r.Union }
func (r *Record) IsNestedInRecord() bool   { return r.NestedInRecord }
func (r *Record) IsNestedInFunction() bool { return r.NestedInFunc }
func (r *Record) IsTemplate() bool         { return r.Template }
func (r *Record) HasDefinition() bool      { return r.Defined }
func (r *Record) IsFinal() bool            { return r.Final }

func (r *Record) Fields() []parserapi.FieldDecl {
	out := make([]parserapi.FieldDecl, len(r.FieldList))
	for i, f := range r.FieldList {
		out[i] = f
	}
	return out
}

func (r *Record) Layout() (uint64, uint64, bool) {
	return r.SizeBytesVal, r.AlignBytesVal, r.LayoutOk
}

func (r *Record) CopyConstructor() specialmember.Member { return r.CopyCtor }
func (r *Record) MoveConstructor() specialmember.Member { return r.MoveCtor }
func (r *Record) Destructor() specialmember.Member      { return r.Dtor }
func (r *Record) CanPassInRegisters() bool              { return r.PassInRegisters }

// Typedef is a fixture type-alias declaration.
type Typedef struct {
	DeclCommon

	NestedInRecord bool
	NestedInFunc   bool
	Underlying     typemap.CxxType
}

func (t *Typedef) IsNestedInRecord() bool          { return t.NestedInRecord }
func (t *Typedef) IsNestedInFunction() bool        { return t.NestedInFunc }
func (t *Typedef) UnderlyingType() typemap.CxxType { return t.Underlying }

// TranslationUnit is a fixture AST root: a flat, already-ordered list of
// top-level declarations plus per-file raw comments.
type TranslationUnit struct {
	Decls       []parserapi.Decl
	SourceFiles []SourceFile
}

// SourceFile mirrors parserapi.SourceFile for fixture construction.
type SourceFile struct {
	Filename string
	Comments []parserapi.RawComment
}

func (tu *TranslationUnit) Visit(f func(parserapi.Decl) error) error {
	for _, d := range tu.Decls {
		if err := f(d); err != nil {
			return err
		}
	}
	return nil
}

func (tu *TranslationUnit) Files() []parserapi.SourceFile {
	out := make([]parserapi.SourceFile, len(tu.SourceFiles))
	for i, sf := range tu.SourceFiles {
		out[i] = parserapi.SourceFile{Filename: sf.Filename, Comments: sf.Comments}
	}
	return out
}
