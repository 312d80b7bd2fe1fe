package main

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/suzuki-shunsuke/wfdiag/pkg/controller/diagnose"
)

func Test_exitCode(t *testing.T) {
	t.Parallel()
	data := []struct {
		name   string
		err    error
		exp    int
		stderr string
	}{
		{name: "success", exp: 0},
		{
			name:   "workflow directory not found",
			err:    fmt.Errorf("%w: %s", diagnose.ErrWorkflowDirNotFound, "missing/workflows"),
			exp:    2,
			stderr: "workflow directory not found: missing/workflows\n",
		},
		{name: "warnings found", err: diagnose.ErrWarningsFound, exp: 1},
		{name: "other error", err: errors.New("parse a workflow file a.yml"), exp: 1},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			buf := &bytes.Buffer{}
			if code := exitCode(buf, d.err); code != d.exp {
				t.Fatalf("wanted %d, got %d", d.exp, code)
			}
			if buf.String() != d.stderr {
				t.Fatalf("wanted stderr %q, got %q", d.stderr, buf.String())
			}
		})
	}
}
