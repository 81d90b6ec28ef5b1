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

package comments

import (
	"testing"

	"github.com/google/cppheaderir/ir"
)

func loc(line uint32) ir.SourceLoc { return ir.NewSourceLoc("f.h", line, 1) }

func TestBeforeDeclSkipsOwnDocComment(t *testing.T) {
	m := NewManager()
	m.LoadFile([]RawComment{
		{Text: "// floating", Loc: loc(1)},
		{Text: "// doc for Foo", Loc: loc(2)},
	})

	ownLoc := loc(2)
	got := m.BeforeDecl(loc(3), &ownLoc)
	if len(got) != 1 || got[0].Text != "// floating" {
		t.Fatalf("BeforeDecl = %+v, want only the floating comment", got)
	}
}

func TestBeforeDeclWithNoOwnDocComment(t *testing.T) {
	m := NewManager()
	m.LoadFile([]RawComment{
		{Text: "// a", Loc: loc(1)},
		{Text: "// b", Loc: loc(2)},
	})
	got := m.BeforeDecl(loc(3), nil)
	if len(got) != 2 {
		t.Fatalf("BeforeDecl returned %d comments, want 2", len(got))
	}
}

func TestAfterDeclDropsInteriorComments(t *testing.T) {
	m := NewManager()
	m.LoadFile([]RawComment{
		{Text: "// interior", Loc: loc(5)},
		{Text: "// after", Loc: loc(20)},
	})
	m.AfterDecl(loc(10), false)
	got := m.Flush()
	if len(got) != 1 || got[0].Text != "// after" {
		t.Fatalf("Flush() after AfterDecl = %+v, want only the trailing comment", got)
	}
}

func TestAfterDeclNamespaceIsNotAScope(t *testing.T) {
	m := NewManager()
	m.LoadFile([]RawComment{
		{Text: "// interior", Loc: loc(5)},
	})
	m.AfterDecl(loc(10), true)
	got := m.Flush()
	if len(got) != 1 {
		t.Fatalf("a namespace's extent must not swallow interior comments; got %+v", got)
	}
}

func TestLoadFileFlushesPreviousFile(t *testing.T) {
	m := NewManager()
	m.LoadFile([]RawComment{{Text: "// old", Loc: loc(1)}})
	floating := m.LoadFile([]RawComment{{Text: "// new", Loc: loc(1)}})
	if len(floating) != 1 || floating[0].Text != "// old" {
		t.Fatalf("LoadFile did not flush the previous file's remaining comments: %+v", floating)
	}
}

func TestFlushAtTranslationUnitEnd(t *testing.T) {
	m := NewManager()
	m.LoadFile([]RawComment{{Text: "// trailing", Loc: loc(1)}})
	got := m.Flush()
	if len(got) != 1 || got[0].Text != "// trailing" {
		t.Fatalf("Flush() = %+v, want the one buffered comment", got)
	}
	if got2 := m.Flush(); len(got2) != 0 {
		t.Fatalf("second Flush() = %+v, want empty", got2)
	}
}
