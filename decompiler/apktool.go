package decompiler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
)

const DefaultBinary = "apktool"

var (
	ErrPackageNotFound = errors.New("package file not found")
	ErrDecompile       = errors.New("decompilation failed")
)

// Runner starts an external process and waits for it to exit.
type Runner interface {
	Run(ctx context.Context, name string, args []string) error
}

type Apktool struct {
	log    *slog.Logger
	binary string
	extra  []string
	runner Runner
}

type Option func(*Apktool)

func WithBinary(path string) Option {
	return func(a *Apktool) {
		if path != "" {
			a.binary = path
		}
	}
}

// WithArgs appends extra arguments after the fixed decode flags.
func WithArgs(args ...string) Option {
	return func(a *Apktool) {
		a.extra = append(a.extra, args...)
	}
}

func WithRunner(r Runner) Option {
	return func(a *Apktool) {
		a.runner = r
	}
}

func WithLogger(log *slog.Logger) Option {
	return func(a *Apktool) {
		a.log = log
	}
}

func NewApktool(opts ...Option) *Apktool {
	a := &Apktool{
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		binary: DefaultBinary,
		runner: &ExecRunner{},
	}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Decompile decodes the package at src into dst, overwriting dst if it exists.
func (a *Apktool) Decompile(ctx context.Context, src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrPackageNotFound, src)
		}

		return fmt.Errorf("unable to stat package %s: %w", src, err)
	}

	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s is not a regular file", ErrPackageNotFound, src)
	}

	args := a.decodeArgs(src, dst)
	a.log.Debug("running decompiler", "binary", a.binary, "args", args)

	err = a.runner.Run(ctx, a.binary, args)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDecompile, err)
	}

	return nil
}

func (a *Apktool) decodeArgs(src, dst string) []string {
	args := []string{"-q", "d", "-f", "-o", dst}
	args = append(args, a.extra...)
	return append(args, src)
}
