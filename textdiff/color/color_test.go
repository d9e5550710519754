package color

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"znkr.io/tablediff/internal/config"
)

func TestOptions(t *testing.T) {
	var got config.ColorConfig
	for _, opt := range []Option{
		Matches(),
		Deletes(1, 31),
		Inserts(32),
		Changes(30, 43),
		Gaps(90),
	} {
		opt(&got)
	}
	want := config.ColorConfig{
		Match:   "",
		Delete:  "\033[1;31m",
		Insert:  "\033[32m",
		Changed: "\033[30;43m",
		Gap:     "\033[90m",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("options produce a different config [-want,+got]:\n%s", diff)
	}
}
