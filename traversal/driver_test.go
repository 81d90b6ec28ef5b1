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

package traversal

import (
	"testing"

	"github.com/google/cppheaderir/emitter"
	"github.com/google/cppheaderir/ir"
	"github.com/google/cppheaderir/parserapi"
	"github.com/google/cppheaderir/parserapi/parsertest"
	"github.com/google/cppheaderir/specialmember"
	"github.com/google/cppheaderir/typemap"
)

const testHeader = "test/testing_header_0.h"

func testConfig() Config {
	return Config{
		PublicHeaderNames: []ir.HeaderName{testHeader},
		HeadersToTargets:  map[ir.HeaderName]ir.Label{testHeader: "//test:fixtures"},
		CurrentTarget:     "//test:fixtures",
	}
}

func at(line uint32) ir.SourceLoc { return ir.NewSourceLoc(testHeader, line, 1) }

func run(t *testing.T, tu parserapi.TranslationUnit) []ir.Item {
	t.Helper()
	doc, err := NewDriver(testConfig()).Run(tu)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	return emitter.OrderDefault(doc.Items)
}

// TestE1VoidFunc reproduces spec.md §8 E1.
func TestE1VoidFunc(t *testing.T) {
	f := &parsertest.Func{
		DeclCommon: parsertest.DeclCommon{Id: 1, DeclLoc: at(1), DeclExtentEnd: at(1), DeclName: "Foo", DeclQualifiedName: "Foo"},
		RetType:    typemap.CxxType{Kind: typemap.KindBuiltin, Builtin: typemap.Builtin{Name: "void"}},
	}
	items := run(t, &parsertest.TranslationUnit{Decls: []parserapi.Decl{f}})
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1: %+v", len(items), items)
	}
	fn, ok := items[0].(*ir.Func)
	if !ok {
		t.Fatalf("item is %T, want *ir.Func", items[0])
	}
	if fn.MangledName != "_Z3Foov" {
		t.Errorf("MangledName = %q, want _Z3Foov", fn.MangledName)
	}
	if !fn.ReturnType.IsVoid() {
		t.Error("ReturnType should be void")
	}
	if len(fn.Params) != 0 {
		t.Errorf("Params = %+v, want empty", fn.Params)
	}
}

// TestE2PointerParam reproduces spec.md §8 E2.
func TestE2PointerParam(t *testing.T) {
	intType := typemap.CxxType{Kind: typemap.KindBuiltin, Spelling: "int", Builtin: typemap.Builtin{Name: "int", IntWidth: 32, Signed: true}}
	ptrType := typemap.CxxType{Kind: typemap.KindPointer, Pointee: &intType}

	f := &parsertest.Func{
		DeclCommon: parsertest.DeclCommon{Id: 1, DeclLoc: at(1), DeclExtentEnd: at(1), DeclName: "Foo", DeclQualifiedName: "Foo"},
		RetType:    ptrType,
		Parameters: []parsertest.Param{{ParamName: "a", ParamType: ptrType}},
	}
	items := run(t, &parsertest.TranslationUnit{Decls: []parserapi.Decl{f}})
	fn := items[0].(*ir.Func)

	if fn.ReturnType.Cc.Name != ir.PointerSpelling || fn.ReturnType.Rs.Name != "*mut" {
		t.Fatalf("ReturnType = %+v, want */*mut wrapping i32", fn.ReturnType)
	}
	if len(fn.Params) != 1 || fn.Params[0].Identifier != "a" {
		t.Fatalf("Params = %+v, want one param named a", fn.Params)
	}
	if fn.Params[0].Type.Rs.Name != "*mut" {
		t.Errorf("param type = %+v, want *mut wrapper", fn.Params[0].Type)
	}
}

// TestE3StructFields reproduces spec.md §8 E3.
func TestE3StructFields(t *testing.T) {
	intType := typemap.CxxType{Kind: typemap.KindBuiltin, Spelling: "int", Builtin: typemap.Builtin{Name: "int", IntWidth: 32, Signed: true}}
	r := &parsertest.Record{
		DeclCommon: parsertest.DeclCommon{Id: 1, DeclLoc: at(1), DeclExtentEnd: at(1), DeclName: "S", DeclQualifiedName: "S"},
		Struct:     true,
		Defined:    true,
		FieldList: []*parsertest.Field{
			{DeclCommon: parsertest.DeclCommon{DeclName: "first_field"}, FieldType: intType, OffsetBitsVal: 0},
			{DeclCommon: parsertest.DeclCommon{DeclName: "second_field"}, FieldType: intType, OffsetBitsVal: 32},
		},
		SizeBytesVal: 8, AlignBytesVal: 4, LayoutOk: true,
	}
	items := run(t, &parsertest.TranslationUnit{Decls: []parserapi.Decl{r}})
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1: %+v", len(items), items)
	}
	rec := items[0].(*ir.Record)
	if rec.SizeBytes != 8 || rec.AlignmentBytes != 4 {
		t.Errorf("size/alignment = %d/%d, want 8/4", rec.SizeBytes, rec.AlignmentBytes)
	}
	if len(rec.Fields) != 2 || rec.Fields[0].Offset != 0 || rec.Fields[1].Offset != 32 {
		t.Fatalf("Fields = %+v, want offsets 0 and 32", rec.Fields)
	}
}

// TestE4DefaultedCopyCtor reproduces spec.md §8 E4.
func TestE4DefaultedCopyCtor(t *testing.T) {
	r := &parsertest.Record{
		DeclCommon: parsertest.DeclCommon{Id: 1, DeclLoc: at(1), DeclExtentEnd: at(1), DeclName: "Defaulted", DeclQualifiedName: "Defaulted"},
		Struct:     false,
		Defined:    true,
		CopyCtor: specialmember.Member{
			IsUserDeclared: true, IsExplicitlyDefaulted: true, IsTriviallyGenerated: true,
		},
		SizeBytesVal: 1, AlignBytesVal: 1, LayoutOk: true,
	}
	items := run(t, &parsertest.TranslationUnit{Decls: []parserapi.Decl{r}})
	rec := items[0].(*ir.Record)
	if rec.CopyConstructor.Definition != ir.Trivial {
		t.Errorf("copy ctor definition = %v, want trivial", rec.CopyConstructor.Definition)
	}
	if rec.CopyConstructor.Access != ir.Private {
		t.Errorf("copy ctor access = %v, want private (implicit on class)", rec.CopyConstructor.Access)
	}
}

// TestE5TrivialAbiWithNontrivialCopyCtor reproduces spec.md §8 E5.
func TestE5TrivialAbiWithNontrivialCopyCtor(t *testing.T) {
	r := &parsertest.Record{
		DeclCommon:      parsertest.DeclCommon{Id: 1, DeclLoc: at(1), DeclExtentEnd: at(1), DeclName: "N", DeclQualifiedName: "N"},
		Struct:          true,
		Defined:         true,
		CopyCtor:        specialmember.Member{IsUserDeclared: true},
		PassInRegisters: true,
		SizeBytesVal:    1, AlignBytesVal: 1, LayoutOk: true,
	}
	items := run(t, &parsertest.TranslationUnit{Decls: []parserapi.Decl{r}})
	rec := items[0].(*ir.Record)
	if rec.CopyConstructor.Definition != ir.Nontrivial {
		t.Errorf("copy ctor definition = %v, want nontrivial", rec.CopyConstructor.Definition)
	}
	if !rec.IsTrivialAbi {
		t.Error("IsTrivialAbi should be true regardless of the copy ctor's triviality")
	}
}

// TestE6DocCommentsInDeclarationOrder reproduces spec.md §8 E6.
func TestE6DocCommentsInDeclarationOrder(t *testing.T) {
	mk := func(line uint32, name, doc string) *parsertest.Record {
		return &parsertest.Record{
			DeclCommon: parsertest.DeclCommon{
				Id: ir.DeclId(line), DeclLoc: at(line), DeclExtentEnd: at(line),
				DeclName: name, DeclQualifiedName: name,
				HasDoc: true, DocText: doc, DocLoc: at(line - 1),
			},
			Struct: true, Defined: true, LayoutOk: true, SizeBytesVal: 1, AlignBytesVal: 1,
		}
	}
	decls := []parserapi.Decl{
		mk(2, "A", "/// triple slash"),
		mk(4, "B", "/** block */"),
		mk(6, "C", "// double slash"),
		mk(8, "D", "/*! bang block */"),
		mk(10, "E", "//! bang line"),
	}
	items := run(t, &parsertest.TranslationUnit{Decls: decls})
	if len(items) != 5 {
		t.Fatalf("got %d items, want 5: %+v", len(items), items)
	}
	wantNames := []string{"A", "B", "C", "D", "E"}
	for i, name := range wantNames {
		rec, ok := items[i].(*ir.Record)
		if !ok || rec.Identifier.String() != name {
			t.Fatalf("position %d: got %+v, want Record %s", i, items[i], name)
		}
		if rec.DocComment == nil || *rec.DocComment != decls[i].(*parsertest.Record).DocText {
			t.Errorf("position %d: DocComment = %v, want %q", i, rec.DocComment, decls[i].(*parsertest.Record).DocText)
		}
	}
}

func TestCanonicalDedup(t *testing.T) {
	f1 := &parsertest.Func{DeclCommon: parsertest.DeclCommon{Id: 7, DeclLoc: at(1), DeclExtentEnd: at(1), DeclName: "Foo", DeclQualifiedName: "Foo"},
		RetType: typemap.CxxType{Kind: typemap.KindBuiltin, Builtin: typemap.Builtin{Name: "void"}}}
	f2 := &parsertest.Func{DeclCommon: parsertest.DeclCommon{Id: 7, DeclLoc: at(5), DeclExtentEnd: at(5), DeclName: "Foo", DeclQualifiedName: "Foo"},
		RetType: typemap.CxxType{Kind: typemap.KindBuiltin, Builtin: typemap.Builtin{Name: "void"}}}
	items := run(t, &parsertest.TranslationUnit{Decls: []parserapi.Decl{f1, f2}})
	if len(items) != 1 {
		t.Fatalf("got %d items for a forward-declared-then-defined function, want 1: %+v", len(items), items)
	}
}

func TestNamespaceContainedItemIsUnsupported(t *testing.T) {
	f := &parsertest.Func{
		DeclCommon: parsertest.DeclCommon{
			Id: 1, DeclLoc: at(1), DeclExtentEnd: at(1), DeclName: "Foo", DeclQualifiedName: "ns::Foo",
			FromNamespace: true,
		},
		RetType: typemap.CxxType{Kind: typemap.KindBuiltin, Builtin: typemap.Builtin{Name: "void"}},
	}
	items := run(t, &parsertest.TranslationUnit{Decls: []parserapi.Decl{f}})
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1 UnsupportedItem: %+v", len(items), items)
	}
	u, ok := items[0].(*ir.UnsupportedItem)
	if !ok {
		t.Fatalf("item is %T, want *ir.UnsupportedItem", items[0])
	}
	if u.Message != "Items contained in namespaces are not supported yet" {
		t.Errorf("Message = %q", u.Message)
	}
}

func TestNonPublicMemberFunctionIsSilentlySkipped(t *testing.T) {
	recv := &parsertest.Record{DeclCommon: parsertest.DeclCommon{Id: 1, DeclLoc: at(1), DeclExtentEnd: at(3), DeclName: "C", DeclQualifiedName: "C"},
		Struct: false, Defined: true, LayoutOk: true, SizeBytesVal: 1, AlignBytesVal: 1}
	m := &parsertest.Func{
		DeclCommon: parsertest.DeclCommon{Id: 2, DeclLoc: at(2), DeclExtentEnd: at(2), DeclName: "priv", DeclQualifiedName: "C::priv"},
		Member:     true,
		Acc:        ir.Private,
		Receiver:   recv,
		RetType:    typemap.CxxType{Kind: typemap.KindBuiltin, Builtin: typemap.Builtin{Name: "void"}},
	}
	items := run(t, &parsertest.TranslationUnit{Decls: []parserapi.Decl{recv, m}})
	for _, it := range items {
		if it.Kind() == ir.KFunc {
			t.Fatalf("a private member function must not produce any item: %+v", items)
		}
	}
}

func TestOwningTargetGatesUnmappedHeader(t *testing.T) {
	cfg := testConfig()
	other := ir.HeaderName("other/unmapped.h")
	f := &parsertest.Func{
		DeclCommon: parsertest.DeclCommon{
			Id: 1, DeclLoc: ir.NewSourceLoc(string(other), 1, 1), DeclExtentEnd: ir.NewSourceLoc(string(other), 1, 1),
			DeclName: "Foo", DeclQualifiedName: "Foo",
			Chain: []ir.HeaderName{other}, NonBuiltinFilename: true,
		},
		RetType: typemap.CxxType{Kind: typemap.KindBuiltin, Builtin: typemap.Builtin{Name: "void"}},
	}
	doc, err := NewDriver(cfg).Run(&parsertest.TranslationUnit{Decls: []parserapi.Decl{f}})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(doc.Items) != 0 {
		t.Fatalf("a declaration from an unmapped header with a non-builtin filename, distinct from current_target, should be ignored: %+v", doc.Items)
	}
}

func TestUnresolvableReturnTypeBecomesUnsupported(t *testing.T) {
	f := &parsertest.Func{
		DeclCommon: parsertest.DeclCommon{Id: 1, DeclLoc: at(1), DeclExtentEnd: at(1), DeclName: "Foo", DeclQualifiedName: "Foo"},
		RetType:    typemap.CxxType{Kind: typemap.KindTag, Spelling: "Unknown", DeclId: 999},
	}
	items := run(t, &parsertest.TranslationUnit{Decls: []parserapi.Decl{f}})
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1 UnsupportedItem: %+v", len(items), items)
	}
	if _, ok := items[0].(*ir.UnsupportedItem); !ok {
		t.Fatalf("item is %T, want *ir.UnsupportedItem", items[0])
	}
}
