package report

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/briandowns/spinner"
)

// Spinner shows an animated status line with a running file counter.
type Spinner struct {
	s *spinner.Spinner
}

func NewSpinner(w io.Writer) *Spinner {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(w))
	s.Color("yellow")
	return &Spinner{s: s}
}

func (p *Spinner) Start(status string) {
	p.setSuffix(" " + status)
	p.s.Start()
}

func (p *Spinner) Stop() {
	p.s.Stop()
}

func (p *Spinner) FileScanned(path string, scanned int) {
	p.setSuffix(fmt.Sprintf(" Scanned %d files (%s)", scanned, filepath.Base(path)))
}

func (p *Spinner) setSuffix(suffix string) {
	p.s.Lock()
	p.s.Suffix = suffix
	p.s.Unlock()
}

// Silent discards all progress updates.
type Silent struct{}

func (Silent) Start(string) {}

func (Silent) Stop() {}

func (Silent) FileScanned(string, int) {}
