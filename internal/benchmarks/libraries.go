// Package benchmarks compares the token alignment of this module with other diff libraries.
package benchmarks

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/aymanbagabas/go-udiff"
	godebug "github.com/kylelemons/godebug/diff"
	mb0 "github.com/mb0/diff"
	gointernal "github.com/rogpeppe/go-internal/diff"
	"github.com/sergi/go-diff/diffmatchpatch"
	"znkr.io/diff"
	"znkr.io/tablediff/align"
)

// Impl is an alignment implementation. Align returns the number of tokens that are matched
// between x and y.
type Impl struct {
	Name  string
	Align func(x, y []string) int
}

var Impls = []Impl{
	{
		Name: "tablediff",
		Align: func(x, y []string) int {
			return align.Align(x, y).LCS()
		},
	},
	{
		Name: "znkr",
		Align: func(x, y []string) int {
			n := 0
			for _, e := range diff.Edits(x, y) {
				if e.Op == diff.Match {
					n++
				}
			}
			return n
		},
	},
	{
		Name: "diffmatchpatch",
		Align: func(x, y []string) int {
			// Every token is mapped to a single rune, equal runs are then counted in runes.
			dmp := diffmatchpatch.New()
			rx, ry, _ := dmp.DiffLinesToRunes(lines(x), lines(y))
			n := 0
			for _, d := range dmp.DiffMainRunes(rx, ry, false) {
				if d.Type == diffmatchpatch.DiffEqual {
					n += utf8.RuneCountInString(d.Text)
				}
			}
			return n
		},
	},
	{
		Name: "mb0",
		Align: func(x, y []string) int {
			n := len(x)
			for _, ch := range mb0.Diff(len(x), len(y), mb0tokens{x, y}) {
				n -= ch.Del
			}
			return n
		},
	},
	{
		Name: "go-internal",
		Align: func(x, y []string) int {
			return len(x) - deletions(string(gointernal.Diff("x", []byte(lines(x)), "y", []byte(lines(y)))))
		},
	},
	{
		Name: "godebug",
		Align: func(x, y []string) int {
			return len(x) - deletions(godebug.Diff(lines(x), lines(y)))
		},
	},
	{
		Name: "udiff",
		Align: func(x, y []string) int {
			return len(x) - deletions(udiff.Unified("x", "y", lines(x), lines(y)))
		},
	},
}

// lines formats tokens one per line so they can be compared by line based diffs.
func lines(tokens []string) string {
	var sb strings.Builder
	for _, t := range tokens {
		sb.WriteString(strconv.Quote(t))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// deletions counts deleted lines produced by lines in a line based diff.
func deletions(diff string) int {
	n := 0
	for line := range strings.Lines(diff) {
		if strings.HasPrefix(line, `-"`) {
			n++
		}
	}
	return n
}

type mb0tokens struct {
	x, y []string
}

func (d mb0tokens) Equal(i, j int) bool { return d.x[i] == d.y[j] }
