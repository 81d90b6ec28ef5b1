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
	"github.com/google/cppheaderir/typemap"
)

// TypeAlias imports one "using Foo = Bar;" or "typedef Bar Foo;"
// declaration. It returns (nil, nil) when d is nested inside a function
// (silently skipped) or when its spelling is absorbed by the well-known
// type table (spec §4.1 step 1 already covers it, so emitting a
// TypeAlias item for it would be redundant).
func TypeAlias(d parserapi.TypedefDecl, owningTarget ir.Label, known typemap.KnownTypeDecls) ([]ir.Item, error) {
	if d.IsNestedInFunction() {
		return nil, nil
	}

	loc := d.Loc()
	qualifiedName := d.QualifiedName()

	if d.IsNestedInRecord() {
		return unsupported(qualifiedName, "type aliases nested in a record are not supported", loc), nil
	}
	if isWellKnownSpelling(d.Name()) {
		return nil, nil
	}

	name, ok := naming.DeclName(d.Name())
	if !ok {
		return unsupported(qualifiedName, "type alias has no usable name", loc), nil
	}

	underlying, err := typemap.MapType(d.UnderlyingType(), lifetime.Stack{}, false, known)
	if err != nil {
		return unsupported(qualifiedName, err.Error(), loc), nil
	}

	var doc *string
	if text, _, ok := d.DocComment(); ok {
		doc = &text
	}

	ta := &ir.TypeAlias{
		Identifier:     ir.NewIdentifier(string(name)),
		Id:             d.CanonicalId(),
		OwningTarget:   owningTarget,
		DocComment:     doc,
		UnderlyingType: underlying,
		SourceLoc:      loc,
	}
	return []ir.Item{ta}, nil
}

func isWellKnownSpelling(spelling string) bool {
	return typemap.IsWellKnown(spelling)
}
