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

// Package lifetime interns lifetime names to stable ids within one
// translation unit, and threads a lifetime stack through the type
// mapper's pointer/reference peeling (spec §3 Lifetime, §4.1, §9
// "Lifetime stack consumption").
//
// The interning Pool follows the same insert-or-lookup shape as a
// compiler's identifier table: a name is assigned the next id the first
// time it's seen and the same id thereafter.
package lifetime

import "errors"

// Id is stable within a translation unit.
type Id uint32

// Lifetime pairs a lifetime's source name with its interned Id.
type Lifetime struct {
	Name string
	Id   Id
}

// Pool interns lifetime names into stable Ids, in first-seen order.
type Pool struct {
	byName map[string]Id
	byId   []string
}

// NewPool returns an empty lifetime pool.
func NewPool() *Pool {
	return &Pool{byName: map[string]Id{}}
}

// Intern returns the Id for name, allocating a new one on first sight.
// The empty string and "static" are not interned; they return the zero
// Id, which callers treat as "no named lifetime".
func (p *Pool) Intern(name string) (Id, error) {
	if name == "" || name == "static" {
		return 0, nil
	}
	if id, ok := p.byName[name]; ok {
		return id, nil
	}
	id := Id(len(p.byId) + 1)
	if id == 0 {
		return 0, errors.New("lifetime: too many distinct lifetimes")
	}
	p.byName[name] = id
	p.byId = append(p.byId, name)
	return id, nil
}

// Name returns the source spelling for id, or "" if unknown.
func (p *Pool) Name(id Id) string {
	if id == 0 || int(id) > len(p.byId) {
		return ""
	}
	return p.byId[id-1]
}

// Resolve looks up a previously interned name without allocating a new
// Id; used when a later traversal phase needs "the source name" for a
// lifetime collected earlier (spec §4.3 step 7).
func (p *Pool) Resolve(id Id) (string, bool) {
	name := p.Name(id)
	return name, name != ""
}
