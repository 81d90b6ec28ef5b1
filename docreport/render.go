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

// Package docreport renders a human-readable report of one lowered
// translation unit: a Markdown summary of every imported Func, Record
// and TypeAlias plus the UnsupportedItems that explain what was
// dropped. The report itself has no table of contents; TableOfContents
// derives one, with anchor slugs, from its Markdown.
package docreport

import (
	"fmt"
	"strings"

	anchor "github.com/shurcooL/sanitized_anchor_name"
	"gopkg.in/russross/blackfriday.v2"

	"github.com/google/cppheaderir/ir"
)

// Report is a rendered doc report: Markdown source plus its HTML
// rendering.
type Report struct {
	Markdown string
	HTML     []byte
}

// Heading is one table-of-contents entry.
type Heading struct {
	Title  string
	Anchor string
}

// Render builds a Markdown report for the IR's items, in the order
// given (callers typically pass emitter.OrderDefault's output so the
// report reads in source order), then renders it to HTML with
// blackfriday.
func Render(doc ir.IR) Report {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", string(doc.CurrentTarget))

	if len(doc.UsedHeaders) > 0 {
		b.WriteString("Headers:\n\n")
		for _, h := range doc.UsedHeaders {
			fmt.Fprintf(&b, "- `%s`\n", string(h))
		}
		b.WriteString("\n")
	}

	for _, item := range doc.Items {
		renderItem(&b, item)
	}

	md := b.String()
	html := blackfriday.Run([]byte(md))
	return Report{Markdown: md, HTML: html}
}

// TableOfContents extracts the level-3 (declaration) headings from a
// rendered report's Markdown, pairing each title with its GitHub-style
// anchor slug from sanitized_anchor_name. Render's HTML does not turn on
// blackfriday's automatic heading ids, so its headings carry no ids.
func TableOfContents(markdown string) []Heading {
	var out []Heading
	for _, line := range strings.Split(markdown, "\n") {
		const prefix = "### "
		if !strings.HasPrefix(line, prefix) {
			continue
		}
		title := strings.TrimPrefix(line, prefix)
		out = append(out, Heading{Title: title, Anchor: anchor.Create(title)})
	}
	return out
}

func renderItem(b *strings.Builder, item ir.Item) {
	switch v := item.(type) {
	case *ir.Func:
		fmt.Fprintf(b, "### %s\n\n", v.Name.String())
		if v.DocComment != nil {
			fmt.Fprintf(b, "%s\n\n", *v.DocComment)
		}
		fmt.Fprintf(b, "`%s`\n\n", v.MangledName)
	case *ir.Record:
		fmt.Fprintf(b, "### %s\n\n", v.Identifier.String())
		if v.DocComment != nil {
			fmt.Fprintf(b, "%s\n\n", *v.DocComment)
		}
		fmt.Fprintf(b, "size=%d alignment=%d\n\n", v.SizeBytes, v.AlignmentBytes)
		for _, f := range v.Fields {
			fmt.Fprintf(b, "- `%s` (%s) at bit %d\n", string(f.Identifier), f.Access, f.Offset)
		}
		b.WriteString("\n")
	case *ir.TypeAlias:
		fmt.Fprintf(b, "### %s\n\n", v.Identifier.String())
		if v.DocComment != nil {
			fmt.Fprintf(b, "%s\n\n", *v.DocComment)
		}
	case *ir.Comment:
		fmt.Fprintf(b, "%s\n\n", v.Text)
	case *ir.UnsupportedItem:
		fmt.Fprintf(b, "> **Unsupported:** %s — %s\n\n", v.Name, v.Message)
	}
}
