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

// Definition is the definedness of a special member function (spec §3
// SpecialMemberFunc).
type Definition uint8

const (
	Trivial = Definition(iota)
	Nontrivial
	Deleted
)

func (d Definition) String() string {
	switch d {
	case Trivial:
		return "trivial"
	case Nontrivial:
		return "nontrivial"
	case Deleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// SpecialMemberFunc records how a copy-ctor, move-ctor or destructor is
// defined, and its access (spec §3, §4.2).
type SpecialMemberFunc struct {
	Definition Definition
	Access     Access
}

// Callable reports whether this special member is reachable at all
// (spec §3 invariant: a deleted special member is never callable).
func (s SpecialMemberFunc) Callable() bool { return s.Definition != Deleted }

// Field is one data member of a Record (spec §3 Field).
type Field struct {
	Identifier Identifier
	DocComment *string
	Type       MappedType
	Access     Access
	// Offset is the field's bit offset within the record, strictly
	// matching platform record layout and sorted by declaration order
	// (spec §3 Core invariants).
	Offset uint64
}

// Record is an imported struct/class (spec §3 Record).
type Record struct {
	Identifier      UnqualifiedIdentifier
	Id              DeclId
	OwningTarget    Label
	DocComment      *string
	Fields          []Field
	SizeBytes       uint64
	AlignmentBytes  uint64
	CopyConstructor SpecialMemberFunc
	MoveConstructor SpecialMemberFunc
	Destructor      SpecialMemberFunc
	IsTrivialAbi    bool
	IsFinal         bool
	SourceLoc       SourceLoc
}

func (r *Record) Kind() Kind     { return KRecord }
func (r *Record) Loc() SourceLoc { return r.SourceLoc }

// LocalOrder: top-level records sort at local_order 0 (spec §4.7).
func (r *Record) LocalOrder() int { return 0 }

// TypeAlias is an imported "using Foo = Bar;" or "typedef Bar Foo;"
// (spec §4.3 Type aliases).
type TypeAlias struct {
	Identifier     UnqualifiedIdentifier
	Id             DeclId
	OwningTarget   Label
	DocComment     *string
	UnderlyingType MappedType
	SourceLoc      SourceLoc
}

func (t *TypeAlias) Kind() Kind     { return KTypeAlias }
func (t *TypeAlias) Loc() SourceLoc { return t.SourceLoc }
func (t *TypeAlias) LocalOrder() int { return 7 }
