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

// cppheaderir is a tool for exercising the C++-header-to-IR lowering
// pipeline. It has no real Clang front-end bound in; its subcommands
// run the pipeline over small built-in fixture translation units that
// reproduce the worked examples from the lowering specification, so the
// wiring between packages can be inspected without a parser dependency.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/cppheaderir/docreport"
	"github.com/google/cppheaderir/emitter"
	"github.com/google/cppheaderir/ir"
	"github.com/google/cppheaderir/traversal"
)

var commands = []struct {
	name string
	do   func(args []string) error
}{
	{"lower", doLower},
	{"report", doReport},
	{"fixtures", doFixtures},
}

func usage() {
	fmt.Fprintf(os.Stderr, `cppheaderir is a tool for exercising the lowering pipeline.

Usage:

	cppheaderir command [arguments]

The commands are:

	lower     run the pipeline over a fixture translation unit and print the IR
	report    run the pipeline and render a Markdown doc report
	fixtures  list the available fixture names
`)
}

func main() {
	if err := main1(); err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

func main1() error {
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) > 0 {
		for _, c := range commands {
			if args[0] == c.name {
				return c.do(args[1:])
			}
		}
	}
	usage()
	os.Exit(1)
	return nil
}

func lowerFixture(name string) (ir.IR, error) {
	build, ok := fixtures[name]
	if !ok {
		return ir.IR{}, fmt.Errorf("cppheaderir: unknown fixture %q (see the 'fixtures' command)", name)
	}
	d := traversal.NewDriver(demoConfig())
	doc, err := d.Run(build())
	if err != nil {
		return ir.IR{}, err
	}
	doc.Items = emitter.OrderDefault(doc.Items)
	return doc, nil
}

func doLower(args []string) error {
	fs := flag.NewFlagSet("lower", flag.ExitOnError)
	name := fs.String("fixture", "e1-void-func", fixtureFlagUsage)
	fs.Parse(args)

	doc, err := lowerFixture(*name)
	if err != nil {
		return err
	}
	for _, item := range doc.Items {
		fmt.Println(itemSummary(item))
	}
	return nil
}

func doReport(args []string) error {
	fs := flag.NewFlagSet("report", flag.ExitOnError)
	name := fs.String("fixture", "e1-void-func", fixtureFlagUsage)
	fs.Parse(args)

	doc, err := lowerFixture(*name)
	if err != nil {
		return err
	}
	r := docreport.Render(doc)
	os.Stdout.WriteString(r.Markdown)
	return nil
}

func doFixtures(args []string) error {
	printFixtureList()
	return nil
}

const fixtureFlagUsage = "name of the built-in fixture translation unit to lower"

func itemSummary(item ir.Item) string {
	type stringer interface{ String() string }
	if s, ok := item.(stringer); ok {
		return s.String()
	}
	return item.Kind().String()
}
