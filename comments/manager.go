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

// Package comments implements the Comment Manager (spec §4.5): the
// per-file ordered buffer of raw comments that yields the floating
// (non-attached) comments interleaved with declarations in source order.
package comments

import (
	"sort"

	"github.com/google/cppheaderir/ir"
)

// RawComment is one comment span as enumerated by the parser, before the
// Manager decides whether it floats or is a declaration's own doc
// comment.
type RawComment struct {
	Text string
	Loc  ir.SourceLoc
}

// Manager holds one source file's worth of raw comments and an iterator
// position into them.
type Manager struct {
	comments []RawComment
	idx      int
}

// NewManager returns an empty Comment Manager.
func NewManager() *Manager {
	return &Manager{}
}

// LoadFile is called on encountering a new source file: it flushes any
// comments still buffered from the previous file (returned, in source
// order, as floating items), then loads raw, sorted by position, and
// resets the iterator (spec §4.5 "On encountering a new source file").
func (m *Manager) LoadFile(raw []RawComment) []ir.Comment {
	floating := m.flushRemaining()

	sorted := make([]RawComment, len(raw))
	copy(sorted, raw)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Loc.Before(sorted[j].Loc) })

	m.comments = sorted
	m.idx = 0
	return floating
}

// BeforeDecl advances the iterator, emitting every buffered comment
// whose begin location precedes declLoc, except the one (if any) at
// ownDocCommentLoc — the declaration's own doc comment, which is
// attached to the declaration's Item instead of emitted here (spec
// §4.5 "Before processing declaration D").
func (m *Manager) BeforeDecl(declLoc ir.SourceLoc, ownDocCommentLoc *ir.SourceLoc) []ir.Comment {
	var out []ir.Comment
	for m.idx < len(m.comments) && m.comments[m.idx].Loc.Before(declLoc) {
		c := m.comments[m.idx]
		m.idx++
		if ownDocCommentLoc != nil && c.Loc == *ownDocCommentLoc {
			continue
		}
		out = append(out, ir.Comment{Text: c.Text, SourceLoc: c.Loc})
	}
	return out
}

// AfterDecl skips (drops, without emitting) any comments whose begin
// location falls within [declLoc, extentEnd], since those belong to D's
// body. A namespace's extent is not a scope for this purpose — its
// interior comments are left for whatever visits its (currently
// unsupported) contents (spec §4.5 "After D").
func (m *Manager) AfterDecl(extentEnd ir.SourceLoc, isNamespace bool) {
	if isNamespace {
		return
	}
	for m.idx < len(m.comments) && !extentEnd.Before(m.comments[m.idx].Loc) {
		m.idx++
	}
}

// Flush emits every comment still buffered, in source order; called at
// translation-unit end (spec §4.5 "At translation-unit end").
func (m *Manager) Flush() []ir.Comment {
	return m.flushRemaining()
}

func (m *Manager) flushRemaining() []ir.Comment {
	var out []ir.Comment
	for ; m.idx < len(m.comments); m.idx++ {
		c := m.comments[m.idx]
		out = append(out, ir.Comment{Text: c.Text, SourceLoc: c.Loc})
	}
	return out
}
