package process

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

var globalVerbose bool

// SetGlobalVerbose sets verbose mode for all runners.
func SetGlobalVerbose(v bool) {
	globalVerbose = v
}

type Runner struct {
	verbose bool
}

func NewRunner() *Runner {
	return &Runner{verbose: globalVerbose}
}

func (r *Runner) SetVerbose(v bool) {
	r.verbose = v
}

func (r *Runner) logCommand(name string, args []string) {
	if r.verbose {
		fmt.Fprintf(os.Stderr, "  $ %s %s\n", name, strings.Join(args, " "))
	}
}

// RunSilent executes a command and returns stdout. Stderr is included in errors.
func (r *Runner) RunSilent(ctx context.Context, name string, args []string) ([]byte, error) {
	r.logCommand(name, args)

	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if stderr.Len() > 0 {
			return nil, fmt.Errorf("%w: %s", err, stderr.String())
		}
		return nil, err
	}

	return stdout.Bytes(), nil
}

func CommandExists(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
