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

package main

import (
	"fmt"

	"github.com/google/cppheaderir/ir"
	"github.com/google/cppheaderir/parserapi"
	"github.com/google/cppheaderir/parserapi/parsertest"
	"github.com/google/cppheaderir/specialmember"
	"github.com/google/cppheaderir/traversal"
	"github.com/google/cppheaderir/typemap"
)

const demoHeader = "test/testing_header_0.h"

// fixtures are small translation units standing in for a real Clang
// front-end, which this repository deliberately never binds (spec §1
// "deliberately out of scope"). Each reproduces one of spec.md §8's
// literal end-to-end scenarios.
var fixtures = map[string]func() parserapi.TranslationUnit{
	"e1-void-func":  fixtureE1,
	"e3-struct":     fixtureE3,
	"e4-defaulted":  fixtureE4,
}

func fixtureNames() []string {
	names := make([]string, 0, len(fixtures))
	for n := range fixtures {
		names = append(names, n)
	}
	return names
}

func loc(line uint32) ir.SourceLoc {
	return ir.NewSourceLoc(demoHeader, line, 1)
}

func demoConfig() traversal.Config {
	return traversal.Config{
		PublicHeaderNames: []ir.HeaderName{demoHeader},
		HeadersToTargets:  map[ir.HeaderName]ir.Label{demoHeader: "//test:fixtures"},
		CurrentTarget:     "//test:fixtures",
	}
}

// fixtureE1 is spec.md §8 E1: "void Foo();".
func fixtureE1() parserapi.TranslationUnit {
	f := &parsertest.Func{
		DeclCommon: parsertest.DeclCommon{
			Id: 1, DeclLoc: loc(1), DeclExtentEnd: loc(1),
			DeclName: "Foo", DeclQualifiedName: "Foo",
		},
		RetType: typemap.CxxType{Kind: typemap.KindBuiltin, Builtin: typemap.Builtin{Name: "void"}},
	}
	return &parsertest.TranslationUnit{Decls: []parserapi.Decl{f}}
}

// fixtureE3 is spec.md §8 E3: a two-int-field struct.
func fixtureE3() parserapi.TranslationUnit {
	int32Type := typemap.CxxType{Kind: typemap.KindBuiltin, Spelling: "int", Builtin: typemap.Builtin{Name: "int", IntWidth: 32, Signed: true}}
	r := &parsertest.Record{
		DeclCommon: parsertest.DeclCommon{
			Id: 1, DeclLoc: loc(1), DeclExtentEnd: loc(1),
			DeclName: "S", DeclQualifiedName: "S",
		},
		Struct:  true,
		Defined: true,
		FieldList: []*parsertest.Field{
			{DeclCommon: parsertest.DeclCommon{DeclName: "first_field"}, FieldType: int32Type, OffsetBitsVal: 0},
			{DeclCommon: parsertest.DeclCommon{DeclName: "second_field"}, FieldType: int32Type, OffsetBitsVal: 32},
		},
		SizeBytesVal: 8, AlignBytesVal: 4, LayoutOk: true,
		PassInRegisters: true,
	}
	return &parsertest.TranslationUnit{Decls: []parserapi.Decl{r}}
}

// fixtureE4 is spec.md §8 E4: a defaulted, private copy-ctor class.
func fixtureE4() parserapi.TranslationUnit {
	r := &parsertest.Record{
		DeclCommon: parsertest.DeclCommon{
			Id: 1, DeclLoc: loc(1), DeclExtentEnd: loc(1),
			DeclName: "Defaulted", DeclQualifiedName: "Defaulted",
		},
		Struct:  false,
		Defined: true,
		CopyCtor: specialMemberDefaultedTrivial(),
		SizeBytesVal: 1, AlignBytesVal: 1, LayoutOk: true,
	}
	return &parsertest.TranslationUnit{Decls: []parserapi.Decl{r}}
}

func specialMemberDefaultedTrivial() specialmember.Member {
	return specialmember.Member{
		IsUserDeclared:        true,
		IsExplicitlyDefaulted: true,
		IsTriviallyGenerated:  true,
		AccessSpecified:       true,
		Access:                ir.Private,
	}
}

func printFixtureList() {
	for _, n := range fixtureNames() {
		fmt.Println(n)
	}
}
