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

// FuncParam is one parameter of a Func. For instance methods, a
// synthetic leading parameter named "__this" is prepended by the
// importer; unnamed parameters are synthesized as "__param_0",
// "__param_1", etc (spec §3 FuncParam).
type FuncParam struct {
	Type       MappedType
	Identifier Identifier
}

// MemberFuncKind distinguishes the kind of member function, used by the
// emitter's local_order tiebreak (spec §4.7).
type MemberFuncKind uint8

const (
	NotAMemberFunc = MemberFuncKind(iota)
	DefaultConstructor
	CopyConstructor
	MoveConstructor
	OtherConstructor
	Destructor
	OtherMemberFunc
)

// MemberFuncMetadata is present on Func items that are non-static member
// functions.
type MemberFuncMetadata struct {
	Kind          MemberFuncKind
	RecordDeclId  DeclId
	IsInstanceMethod bool
}

// Func is one imported function or method (spec §3 Func).
type Func struct {
	Name               UnqualifiedIdentifier
	OwningTarget       Label
	DocComment         *string
	MangledName        string
	ReturnType         MappedType
	Params             []FuncParam
	LifetimeParams     []LifetimeRef
	IsInline           bool
	MemberFuncMetadata *MemberFuncMetadata
	SourceLoc          SourceLoc
}

// LifetimeRef names a lifetime parameter by its source name and stable
// id, sorted by name when a Func is emitted (spec §3 Func.lifetime_params).
type LifetimeRef struct {
	Name string
	Id   uint32
}

func (f *Func) Kind() Kind      { return KFunc }
func (f *Func) Loc() SourceLoc  { return f.SourceLoc }

// LocalOrder implements the emitter's intra-declaration tiebreak (spec
// §4.7): 2/3/4/5 for default/copy/move/other ctors, 6 for destructors, 7
// otherwise.
func (f *Func) LocalOrder() int {
	if f.MemberFuncMetadata == nil {
		return 7
	}
	switch f.MemberFuncMetadata.Kind {
	case DefaultConstructor:
		return 2
	case CopyConstructor:
		return 3
	case MoveConstructor:
		return 4
	case OtherConstructor:
		return 5
	case Destructor:
		return 6
	default:
		return 7
	}
}
