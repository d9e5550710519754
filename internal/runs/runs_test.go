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

package runs

import (
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"znkr.io/tablediff/align"
)

func TestAll(t *testing.T) {
	tests := []struct {
		name string
		x, y string
		want []Run
	}{
		{
			name: "empty",
			want: nil,
		},
		{
			name: "identical",
			x:    "abc",
			y:    "abc",
			want: []Run{{align.Match, 0, 3}},
		},
		{
			name: "x-empty",
			y:    "abc",
			want: []Run{{align.Insert, 0, 3}},
		},
		{
			name: "y-empty",
			x:    "abc",
			want: []Run{{align.Delete, 0, 3}},
		},
		{
			name: "swap",
			x:    "ab",
			y:    "ba",
			want: []Run{
				{align.Insert, 0, 1},
				{align.Match, 1, 2},
				{align.Delete, 2, 3},
			},
		},
		{
			name: "replace-middle",
			x:    "axxb",
			y:    "ayb",
			want: []Run{
				{align.Match, 0, 1},
				{align.Insert, 1, 2},
				{align.Delete, 2, 4},
				{align.Match, 4, 5},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := align.Align(split(tt.x), split(tt.y))
			got := slices.Collect(All(a))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("All(...) result is different [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestAllBreak(t *testing.T) {
	a := align.Align(split("ab"), split("ba"))
	var got []Run
	for r := range All(a) {
		got = append(got, r)
		break
	}
	if diff := cmp.Diff([]Run{{align.Insert, 0, 1}}, got); diff != "" {
		t.Errorf("All(...) didn't stop early [-want,+got]:\n%s", diff)
	}
}

func split(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "")
}
