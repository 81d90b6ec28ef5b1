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

// Comment is a floating (top-level) comment, one not attached to any
// imported declaration's doc_comment field (spec §4.5).
type Comment struct {
	Text      string
	SourceLoc SourceLoc
}

func (c *Comment) Kind() Kind      { return KComment }
func (c *Comment) Loc() SourceLoc  { return c.SourceLoc }
func (c *Comment) LocalOrder() int { return 0 }

// UnsupportedItem is emitted in place of a declaration that could not be
// imported (spec §3 UnsupportedItem, §7 error taxonomy).
type UnsupportedItem struct {
	Name       string // qualified name of the offending declaration
	Message    string
	SourceLoc  SourceLoc
}

func (u *UnsupportedItem) Kind() Kind      { return KUnsupported }
func (u *UnsupportedItem) Loc() SourceLoc  { return u.SourceLoc }
func (u *UnsupportedItem) LocalOrder() int { return 7 }
