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

// Package parserapi is the narrow interface the lowering core consumes
// from a Clang-like C++ parser front-end (spec §6 External Interfaces).
// The core never constructs these values; it only reads them while
// traversing a translation unit. A fixture implementation for tests
// lives in the parsertest sub-package.
package parserapi

import (
	"github.com/google/cppheaderir/ir"
	"github.com/google/cppheaderir/specialmember"
	"github.com/google/cppheaderir/typemap"
)

// Decl is the common surface of every declaration the traversal driver
// visits.
type Decl interface {
	// CanonicalId identifies the declaration's canonical redeclaration
	// for dedup purposes (spec §3 DeclId).
	CanonicalId() ir.DeclId
	Loc() ir.SourceLoc
	ExtentEnd() ir.SourceLoc
	// Name is the unqualified spelling, or "" if the declaration has no
	// name (an unnamed parameter is handled separately, by naming.ParamName).
	Name() string
	QualifiedName() string
	// IsFromNamespace reports whether the declaration's immediate parent
	// is a namespace (spec §4.6 step 3).
	IsFromNamespace() bool
	IsNamespace() bool
	// IncludeChain lists the headers that introduce this declaration,
	// innermost (the file it's actually written in) first, outward to
	// the translation unit's main file — i.e. the #include chain to
	// walk when computing owning_target (spec §6 Configuration).
	IncludeChain() []ir.HeaderName
	IsInSystemHeader() bool
	// HasNonBuiltinFilename reports whether the innermost file of
	// IncludeChain has a real (non-builtin) filename.
	HasNonBuiltinFilename() bool
	// DocComment returns the declaration's own attached doc comment, its
	// source location (so the Comment Manager can recognize and skip
	// it, spec §4.5), and whether one exists.
	DocComment() (text string, loc ir.SourceLoc, ok bool)
}

// ParamDecl is one function parameter.
type ParamDecl interface {
	Name() string
	Type() typemap.CxxType
}

// FuncDecl is a function or method declaration (spec §4.3 Functions).
type FuncDecl interface {
	Decl
	IsMemberFunction() bool
	IsStatic() bool
	IsDeleted() bool
	IsInline() bool
	Access() ir.Access
	IsConstructor() bool
	IsDestructor() bool
	// IsDefaultConstructor/IsCopyConstructor/IsMoveConstructor refine
	// IsConstructor for the emitter's local_order tiebreak (spec §4.7);
	// at most one is true, and only when IsConstructor is true.
	IsDefaultConstructor() bool
	IsCopyConstructor() bool
	IsMoveConstructor() bool
	// ReceiverRecord is non-nil iff IsMemberFunction and !IsStatic.
	ReceiverRecord() RecordDecl
	Params() []ParamDecl
	ReturnType() typemap.CxxType

	// HasLifetimeAnnotations reports whether a lifetime-annotation tool
	// ran over this function; if false, ThisLifetimes/ReturnLifetimes/
	// ParamLifetimes are all nil and no lifetimes are threaded through
	// (spec §4.3 step 1).
	HasLifetimeAnnotations() bool
	ThisLifetimes() []string
	ReturnLifetimes() []string
	// ParamLifetimes has exactly len(Params()) entries when
	// HasLifetimeAnnotations is true (spec §4.3 step 1 invariant).
	ParamLifetimes() [][]string
}

// FieldDecl is one data member of a record.
type FieldDecl interface {
	Decl
	Type() typemap.CxxType
	AccessSpecified() bool
	Access() ir.Access
	OffsetBits() uint64
}

// RecordDecl is a struct/class/union declaration (spec §4.3 Records).
type RecordDecl interface {
	Decl
	IsStruct() bool
	IsUnion() bool
	IsNestedInRecord() bool
	IsNestedInFunction() bool
	IsTemplate() bool
	HasDefinition() bool
	Fields() []FieldDecl
	IsFinal() bool
	// Layout returns the record's size and alignment in bytes; ok is
	// false if layout is unavailable (e.g. incomplete definition).
	Layout() (sizeBytes, alignBytes uint64, ok bool)
	CopyConstructor() specialmember.Member
	MoveConstructor() specialmember.Member
	Destructor() specialmember.Member
	// CanPassInRegisters is the platform-ABI "passable in registers"
	// predicate (spec §3 is_trivial_abi, Glossary).
	CanPassInRegisters() bool
}

// TypedefDecl is a "using Foo = Bar;" or "typedef Bar Foo;" declaration.
type TypedefDecl interface {
	Decl
	IsNestedInRecord() bool
	IsNestedInFunction() bool
	UnderlyingType() typemap.CxxType
}

// TranslationUnit is the AST root the traversal driver visits; Visit
// calls f once per top-level declaration reached by the parser's own
// depth-first order (spec §5: "processes declarations in the parser's
// own depth-first order").
type TranslationUnit interface {
	Visit(f func(Decl) error) error
	// Files returns, in the order they should be processed, each source
	// file's filename and raw comments — driving Comment Manager.LoadFile
	// (spec §4.5).
	Files() []SourceFile
}

// SourceFile is one file's worth of raw comments, for the Comment
// Manager.
type SourceFile struct {
	Filename string
	Comments []RawComment
}

// RawComment mirrors comments.RawComment to avoid parserapi depending on
// the comments package; traversal converts between the two.
type RawComment struct {
	Text string
	Loc  ir.SourceLoc
}
