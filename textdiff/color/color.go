// Package color provides configuration for coloring rendered diffs using ANSI escape sequences.
//
// Specifying colors uses [Select Graphic Rendition parameters]. For example the code below,
// presents deletions in bold red:
//
//	Deletes(1, 31)
//
// This is equivalent to the following raw ANSI sequence: \033[1;31m.
//
// It's the responsibility of the caller to ensure that the parameters are correct and supported
// by the underlying terminal.
//
// [Select Graphic Rendition parameters]: https://en.wikipedia.org/wiki/ANSI_escape_code#SGR
package color

import (
	"fmt"
	"strings"

	"znkr.io/tablediff/internal/config"
)

// A Option makes it possible to configure custom colors in [textdiff.TerminalColors].
//
// [textdiff.TerminalColors]: https://pkg.go.dev/znkr.io/tablediff/textdiff#TerminalColors
type Option func(*config.ColorConfig)

// Matches colors text and cells that are identical in both inputs. Matches are not colored by
// default.
func Matches(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.Match = code
	}
}

// Deletes colors deleted text and cells.
func Deletes(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.Delete = code
	}
}

// Inserts colors inserted text and cells.
func Inserts(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.Insert = code
	}
}

// Changes colors table cells that are present in both tables but have different values.
func Changes(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.Changed = code
	}
}

// Gaps colors placeholders for table cells that don't exist in one or both of the tables.
func Gaps(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.Gap = code
	}
}

func format(params []int) string {
	if len(params) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("\033[")
	for i, v := range params {
		if i > 0 {
			sb.WriteRune(';')
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteRune('m')
	return sb.String()
}
