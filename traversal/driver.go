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
	"github.com/google/cppheaderir/comments"
	"github.com/google/cppheaderir/importer"
	"github.com/google/cppheaderir/ir"
	"github.com/google/cppheaderir/lifetime"
	"github.com/google/cppheaderir/parserapi"
)

// Driver runs one translation unit through the pipeline and produces an
// unordered (source-visitation-order) item list; callers pass the
// result to the emitter package for the final deterministic sort (spec
// §4.6, §4.7).
type Driver struct {
	cfg     Config
	known   *KnownTypeDecls
	seen    *seenDecls
	lts     *lifetime.Pool
	cmgr    *comments.Manager
	byFile  map[string][]comments.RawComment
	curFile string
	items   []ir.Item
}

// NewDriver returns a Driver ready to run a single translation unit.
func NewDriver(cfg Config) *Driver {
	return &Driver{
		cfg:    cfg,
		known:  NewKnownTypeDecls(),
		seen:   newSeenDecls(),
		lts:    lifetime.NewPool(),
		cmgr:   comments.NewManager(),
		byFile: map[string][]comments.RawComment{},
	}
}

// Run visits tu and returns the resulting IR. Item order is whatever the
// parser's depth-first visitation produced, interleaved with floating
// comments as files and declarations are encountered; Run does not sort
// by (begin_loc, local_order) itself — see the emitter package.
func (d *Driver) Run(tu parserapi.TranslationUnit) (ir.IR, error) {
	for _, f := range tu.Files() {
		raw := make([]comments.RawComment, len(f.Comments))
		for i, c := range f.Comments {
			raw[i] = comments.RawComment{Text: c.Text, Loc: c.Loc}
		}
		d.byFile[f.Filename] = raw
	}

	err := tu.Visit(func(decl parserapi.Decl) error {
		return d.visit(decl)
	})
	if err != nil {
		return ir.IR{}, err
	}
	d.emitComments(d.cmgr.Flush())

	return ir.IR{
		UsedHeaders:   d.cfg.PublicHeaderNames,
		CurrentTarget: d.cfg.CurrentTarget,
		Items:         d.items,
	}, nil
}

func (d *Driver) visit(decl parserapi.Decl) error {
	// Step 1: skip a nil declaration. Only a nil interface value is
	// caught here; a typed nil pointer wrapped in the interface is not.
	if decl == nil {
		return nil
	}

	d.loadFileIfNeeded(decl.Loc().Filename)

	owningTarget := d.owningTarget(decl)
	if owningTarget != d.cfg.CurrentTarget {
		return nil
	}

	loc := decl.Loc()
	var ownDocLoc *ir.SourceLoc
	if _, dcLoc, ok := decl.DocComment(); ok {
		ownDocLoc = &dcLoc
	}
	d.emitComments(d.cmgr.BeforeDecl(loc, ownDocLoc))

	d.dispatch(decl, owningTarget)

	d.cmgr.AfterDecl(decl.ExtentEnd(), decl.IsNamespace())
	return nil
}

func (d *Driver) dispatch(decl parserapi.Decl, owningTarget ir.Label) {
	isNamespace := decl.IsNamespace()

	// Step 2: dedup by canonical identity; namespaces are exempt
	// (re-opening a namespace is allowed).
	if !isNamespace && d.seen.markIfNew(decl.CanonicalId()) {
		return
	}

	// Step 3: a declaration whose immediate parent is a namespace is not
	// yet supported.
	if decl.IsFromNamespace() {
		d.items = append(d.items, &ir.UnsupportedItem{
			Name:      decl.QualifiedName(),
			Message:   "Items contained in namespaces are not supported yet",
			SourceLoc: decl.Loc(),
		})
		return
	}

	switch v := decl.(type) {
	case parserapi.FuncDecl:
		d.importFunc(v, owningTarget)
	case parserapi.RecordDecl:
		d.importRecord(v, owningTarget)
	case parserapi.TypedefDecl:
		d.importTypeAlias(v, owningTarget)
	}
}

func (d *Driver) importFunc(fd parserapi.FuncDecl, owningTarget ir.Label) {
	items, err := importer.Func(fd, owningTarget, d.registry(), d.lts)
	d.appendOrUnsupported(fd, items, err)
}

func (d *Driver) importRecord(rd parserapi.RecordDecl, owningTarget ir.Label) {
	items, err := importer.Record(rd, owningTarget, d.known)
	d.appendOrUnsupported(rd, items, err)
}

func (d *Driver) importTypeAlias(td parserapi.TypedefDecl, owningTarget ir.Label) {
	items, err := importer.TypeAlias(td, owningTarget, d.known)
	d.appendOrUnsupported(td, items, err)
}

// appendOrUnsupported appends the importer's items, or a single
// UnsupportedItem if the importer returned a hard error instead of
// reporting it inline (importer.Func does so when a lifetime name cannot
// be interned; the record and type-alias importers report every
// rejection inline).
func (d *Driver) appendOrUnsupported(decl parserapi.Decl, items []ir.Item, err error) {
	if err != nil {
		d.items = append(d.items, &ir.UnsupportedItem{
			Name:      decl.QualifiedName(),
			Message:   err.Error(),
			SourceLoc: decl.Loc(),
		})
		return
	}
	d.items = append(d.items, items...)
}

func (d *Driver) registry() importer.Registry {
	return d.known
}

func (d *Driver) loadFileIfNeeded(filename string) {
	if filename == d.curFile && d.curFile != "" {
		return
	}
	d.curFile = filename
	d.emitComments(d.cmgr.LoadFile(d.byFile[filename]))
}

func (d *Driver) emitComments(cs []ir.Comment) {
	for i := range cs {
		c := cs[i]
		d.items = append(d.items, &c)
	}
}

// owningTarget walks decl's include chain, innermost header first,
// against cfg.HeadersToTargets; falling back to CurrentTarget when decl
// belongs to the main file itself (empty chain), to the two fixed labels
// for an unmapped system header or an unmapped header with no
// non-builtin filename, and to unmappedHeaderTarget for any other
// unmapped header (spec §6 Configuration).
func (d *Driver) owningTarget(decl parserapi.Decl) ir.Label {
	chain := decl.IncludeChain()
	for _, h := range chain {
		if t, ok := d.cfg.HeadersToTargets[h]; ok {
			return t
		}
	}
	// An empty chain means the declaration is written directly in the
	// main translation-unit file, not behind any #include.
	if len(chain) == 0 {
		return d.cfg.CurrentTarget
	}
	if decl.IsInSystemHeader() {
		return unmappedSystemHeaderTarget
	}
	if !decl.HasNonBuiltinFilename() {
		return unmappedBuiltinTarget
	}
	return unmappedHeaderTarget
}
