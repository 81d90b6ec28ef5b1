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

package lifetime

// Stack is a lifetime annotation list threaded through the type mapper.
// It is consumed from the back: the outermost pointer/reference layer
// pops the tail entry first, then the mapper recurses on the pointee
// with whatever remains (spec §4.1 step 2, §9). The consumption order
// must match exactly how the annotation tool emitted the list.
type Stack struct {
	ids []Id
}

// NewStack wraps an already-ordered list of lifetime ids, innermost
// first: the tail entry belongs to the outermost layer, which pops it.
// The zero Stack (nil ids) is valid and always yields (0, false).
func NewStack(ids []Id) Stack {
	return Stack{ids: ids}
}

// Empty reports whether there is nothing left to consume.
func (s Stack) Empty() bool { return len(s.ids) == 0 }

// PopTail removes and returns the last id in the stack, along with the
// remaining Stack. ok is false if the stack was empty.
func (s Stack) PopTail() (id Id, rest Stack, ok bool) {
	if len(s.ids) == 0 {
		return 0, s, false
	}
	n := len(s.ids) - 1
	return s.ids[n], Stack{ids: s.ids[:n]}, true
}
