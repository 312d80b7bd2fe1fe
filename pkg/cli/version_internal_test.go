package cli

import (
	"testing"

	"github.com/suzuki-shunsuke/urfave-cli-v3-util/urfave"
)

func Test_versionString(t *testing.T) {
	t.Parallel()
	data := []struct {
		name    string
		ldFlags *urfave.LDFlags
		exp     string
	}{
		{name: "without commit", ldFlags: &urfave.LDFlags{Version: "v1.0.0"}, exp: "v1.0.0"},
		{name: "with commit", ldFlags: &urfave.LDFlags{Version: "v1.0.0", Commit: "abc1234"}, exp: "v1.0.0 (abc1234)"},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			if got := versionString(d.ldFlags); got != d.exp {
				t.Errorf("wanted %q, got %q", d.exp, got)
			}
		})
	}
}
