package decompiler

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

type ExecRunner struct{}

func (r *ExecRunner) Run(ctx context.Context, name string, args []string) error {
	bin, err := exec.LookPath(name)
	if err != nil {
		return fmt.Errorf("%s is not installed or not found in PATH: %w", name, err)
	}

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stderr = &stderr

	err = cmd.Run()
	if err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return fmt.Errorf("%s: %w: %s", name, err, msg)
		}

		return fmt.Errorf("%s: %w", name, err)
	}

	return nil
}
