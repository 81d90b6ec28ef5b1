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

// LocalOrderer is implemented by every Item; it is the intra-declaration
// tiebreak used when two items share a begin location (spec §4.7).
type LocalOrderer interface {
	LocalOrder() int
}

func (f *Func) String() string {
	return "Func " + f.Name.String() + " " + f.MangledName
}

func (r *Record) String() string {
	return "Record " + r.Identifier.String()
}

func (t *TypeAlias) String() string {
	return "TypeAlias " + t.Identifier.String()
}
