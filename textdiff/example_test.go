// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package textdiff_test

import (
	"fmt"

	"znkr.io/tablediff/align"
	"znkr.io/tablediff/textdiff"
)

func ExampleSpans() {
	for s := range textdiff.Spans("the cat sat", "the dog sat") {
		switch s.Op {
		case align.Match:
			fmt.Printf("  %q\n", s.Text)
		case align.Delete:
			fmt.Printf("- %q\n", s.Text)
		case align.Insert:
			fmt.Printf("+ %q\n", s.Text)
		default:
			panic("never reached")
		}
	}
	// Output:
	//   "the "
	// + "dog"
	// - "cat"
	//   " sat"
}

func ExampleSides() {
	x, y := textdiff.Sides(textdiff.Spans("the cat sat", "the dog sat"))
	fmt.Println(x)
	fmt.Println(y)
	// Output:
	// [{Match the } {Delete cat} {Match  sat}]
	// [{Match the } {Insert dog} {Match  sat}]
}

func ExampleInline() {
	fmt.Println(textdiff.Inline("the cat sat", "the dog sat"))
	fmt.Println(textdiff.Inline("2024-01-15", "2024-02-15"))
	fmt.Println(textdiff.Inline("2024-01-15", "2024-02-15", textdiff.WordTokens()))
	// Output:
	// the {+dog+}[-cat-] sat
	// 2024-0{+2+}[-1-]-15
	// {+2024-02-15+}[-2024-01-15-]
}
