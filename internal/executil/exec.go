package executil

import (
	"bytes"
	"os/exec"

	"github.com/depwave/depwave-cli/internal/config"
)

type Result struct {
	Stdout string
	Stderr string
	Code   int
}

// RunShell executes the command through bash -ceu, optionally in c.Dir, and
// captures its output. The exit code is reported in Result rather than as an
// error so callers decide how to treat failures.
func RunShell(c config.Command) Result {
	cmd := exec.Command("bash", "-ceu", c.Command)
	if c.Dir != "" {
		cmd.Dir = c.Dir
	}
	var out, errb bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errb
	err := cmd.Run()
	code := 0
	if err != nil {
		if e, ok := err.(*exec.ExitError); ok {
			code = e.ExitCode()
		} else {
			code = 1
		}
	}
	return Result{Stdout: out.String(), Stderr: errb.String(), Code: code}
}
