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

import "github.com/google/cppheaderir/ir"

type knownTypeDeclEntry struct {
	name            string
	passInRegisters bool
}

// KnownTypeDecls is the traversal driver's canonical-declaration set
// (spec §3 "known_type_decls"): the Type Mapper's Lookup, the function
// importer's RegisterPassability, and the record importer's provisional
// insert/retract (spec §9 "Self-referential records").
type KnownTypeDecls struct {
	byId map[ir.DeclId]knownTypeDeclEntry
}

// NewKnownTypeDecls returns an empty set.
func NewKnownTypeDecls() *KnownTypeDecls {
	return &KnownTypeDecls{byId: map[ir.DeclId]knownTypeDeclEntry{}}
}

func (k *KnownTypeDecls) Lookup(id ir.DeclId) (string, bool) {
	e, ok := k.byId[id]
	return e.name, ok
}

func (k *KnownTypeDecls) Insert(id ir.DeclId, name string, passInRegisters bool) {
	k.byId[id] = knownTypeDeclEntry{name: name, passInRegisters: passInRegisters}
}

func (k *KnownTypeDecls) Retract(id ir.DeclId) {
	delete(k.byId, id)
}

func (k *KnownTypeDecls) CanPassInRegisters(id ir.DeclId) bool {
	return k.byId[id].passInRegisters
}

// seenDecls tracks which canonical declarations have already been
// dispatched (whether or not that produced an item), so redeclarations
// and forward declarations are imported at
// most once (spec §3 Core invariants, §4.6 step 2). Namespaces are
// exempt and never recorded here.
type seenDecls struct {
	ids map[ir.DeclId]bool
}

func newSeenDecls() *seenDecls {
	return &seenDecls{ids: map[ir.DeclId]bool{}}
}

func (s *seenDecls) markIfNew(id ir.DeclId) (alreadySeen bool) {
	if s.ids[id] {
		return true
	}
	s.ids[id] = true
	return false
}
