package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gamma-omg/key-detector/pkginfo"
	"github.com/gamma-omg/key-detector/scanner"
)

type PackageDecompiler interface {
	Decompile(ctx context.Context, src, dst string) error
}

type TreeScanner interface {
	Scan(ctx context.Context, root string, keywords []string) (*scanner.Results, error)
}

// StatusDisplay shows what the detector is doing while a step runs.
type StatusDisplay interface {
	Start(status string)
	Stop()
}

type Detector struct {
	log        *slog.Logger
	decompiler PackageDecompiler
	scanner    TreeScanner
	status     StatusDisplay
	workDir    string
}

type Detection struct {
	Package *pkginfo.Info
	Results *scanner.Results
}

// Detect decompiles pkg into a fresh temporary directory and scans it for
// assignments to identifiers containing any of the keywords. The temporary
// directory is removed before Detect returns.
func (d *Detector) Detect(ctx context.Context, pkg string, keywords []string) (*Detection, error) {
	tmp, err := os.MkdirTemp(d.workDir, "key-detector-")
	if err != nil {
		return nil, fmt.Errorf("unable to create working directory: %w", err)
	}
	defer func() {
		if err := os.RemoveAll(tmp); err != nil {
			d.log.Warn("failed to remove working directory", "path", tmp, "error", err)
		}
	}()

	out := filepath.Join(tmp, "decompiled")

	d.status.Start(fmt.Sprintf("Decompiling %s...", filepath.Base(pkg)))
	err = d.decompiler.Decompile(ctx, pkg, out)
	d.status.Stop()
	if err != nil {
		return nil, err
	}

	info, err := pkginfo.Read(pkg)
	if err != nil {
		d.log.Warn("unable to read package manifest", "package", pkg, "error", err)
	}

	d.status.Start("Searching for keywords as variables...")
	res, err := d.scanner.Scan(ctx, out, keywords)
	d.status.Stop()
	if err != nil {
		return nil, err
	}

	d.log.Info("scan finished", "package", pkg, "keywords", keywords, "matches", res.Total())

	return &Detection{
		Package: info,
		Results: res,
	}, nil
}
