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

// Package emitter implements the deterministic ordering pass (spec
// §4.7): a stable sort of the traversal driver's unordered item list by
// (begin_loc, local_order), with invalid source locations sorting
// before every valid one.
package emitter

import (
	"sort"

	"github.com/google/cppheaderir/ir"
)

// BeforeInTranslationUnit orders two source locations. The parser's own
// SourceManager.isBeforeInTranslationUnit (spec §6) is authoritative in
// production, since #include boundaries can make translation-unit order
// differ from lexicographic filename order; this package takes the
// comparator as a parameter so a real front-end can supply it; tests and
// the parsertest fixture pass ir.SourceLoc.Before.
type BeforeInTranslationUnit func(a, b ir.SourceLoc) bool

// Order stably sorts items by (begin_loc, local_order) using before as
// the location comparator. Invalid locations (ir.SourceLoc.IsValid ==
// false) sort before every valid one. The input slice is not mutated; a
// new slice is returned.
func Order(items []ir.Item, before BeforeInTranslationUnit) []ir.Item {
	out := make([]ir.Item, len(items))
	copy(out, items)

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		al, bl := a.Loc(), b.Loc()

		if al.IsValid() != bl.IsValid() {
			return !al.IsValid()
		}
		if al.IsValid() && al != bl {
			return before(al, bl)
		}

		ao, bo := localOrder(a), localOrder(b)
		return ao < bo
	})
	return out
}

// OrderDefault is Order using ir.SourceLoc.Before as the comparator,
// suitable whenever the caller has no real SourceManager (every test and
// the parsertest fixture, spec §9 "Deterministic emission").
func OrderDefault(items []ir.Item) []ir.Item {
	return Order(items, ir.SourceLoc.Before)
}

func localOrder(item ir.Item) int {
	if lo, ok := item.(ir.LocalOrderer); ok {
		return lo.LocalOrder()
	}
	return 7
}
