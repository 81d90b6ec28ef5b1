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

// Package specialmember implements the Special-Member Classifier (spec
// §4.2): deriving {definition, access} for a record's copy-ctor,
// move-ctor and destructor.
package specialmember

import "github.com/google/cppheaderir/ir"

// Member describes what the parser reports about one special member
// function, before classification. IsUserDeclared distinguishes a
// user-provided or explicitly-defaulted/deleted declaration from one
// that's wholly implicit.
type Member struct {
	IsUserDeclared     bool
	IsExplicitlyDefaulted bool
	IsDeleted          bool
	// ImplicitlyDeleted is set by the parser when C++'s rules suppress
	// the implicit member (e.g. a user-declared move-ctor suppresses the
	// implicit copy-ctor).
	ImplicitlyDeleted bool
	// IsTriviallyGenerated is set by the parser's ABI/ast query when an
	// implicit-or-defaulted member is trivial per the platform ABI.
	IsTriviallyGenerated bool
	AccessSpecified      bool
	Access               ir.Access
}

// Classify derives the SpecialMemberFunc per spec §4.2. isStruct selects
// the default access used when the member's access was never written
// explicitly (public for struct, private for class).
func Classify(m Member, isStruct bool) ir.SpecialMemberFunc {
	def := ir.Nontrivial
	switch {
	case m.IsDeleted || m.ImplicitlyDeleted:
		def = ir.Deleted
	case (!m.IsUserDeclared || m.IsExplicitlyDefaulted) && m.IsTriviallyGenerated:
		def = ir.Trivial
	}

	access := ir.Public
	if !isStruct {
		access = ir.Private
	}
	if m.AccessSpecified {
		access = m.Access
	}

	return ir.SpecialMemberFunc{Definition: def, Access: access}
}
