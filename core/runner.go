package core

import (
	"bytes"
	"fmt"
	"os/exec"

	"github.com/sirupsen/logrus"
)

// ReadFlags are the default flags for a read invocation: forced output
// for missing values, group names, unknown tags, and duplicate tags.
var ReadFlags = []string{"-f", "-G", "-u", "-a"}

// Invoker runs the external metadata tool against a file. The file
// path is always the last argument; args are everything before it.
type Invoker interface {
	Run(path string, args ...string) (string, error)
}

// ToolRunner is the production Invoker. It executes the tool binary
// directly with an argument array; values are never shell-interpolated.
type ToolRunner struct {
	Tool string
}

// NewToolRunner returns a runner for the configured tool binary.
func NewToolRunner(cfg *Config) *ToolRunner {
	return &ToolRunner{Tool: cfg.Tool}
}

// Run executes the tool and returns its standard output. A non-zero
// exit status is fatal for the call; the returned error carries the
// tool's captured output for diagnostics. There are no retries.
func (r *ToolRunner) Run(path string, args ...string) (string, error) {
	if r.Tool == "" {
		return "", ErrToolNotConfigured
	}
	if _, err := exec.LookPath(r.Tool); err != nil {
		return "", fmt.Errorf("%w: %q not found", ErrToolNotConfigured, r.Tool)
	}

	cmd := exec.Command(r.Tool, append(append([]string{}, args...), path)...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logrus.WithFields(logrus.Fields{
		"tool": r.Tool,
		"args": len(args),
		"file": path,
	}).Debug("invoking metadata tool")

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%s failed on %s: %w (output: %s%s)",
			r.Tool, path, err, stdout.String(), stderr.String())
	}
	return stdout.String(), nil
}
