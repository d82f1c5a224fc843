// Package scanner walks a directory tree and reports lines that assign values
// to identifiers containing one of a set of keywords.
package scanner

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/gamma-omg/key-detector/keywords"
	"github.com/gamma-omg/key-detector/readers"
)

type FileReader interface {
	ReadLines(path string) ([]string, error)
}

// Progress is notified after every regular file the scanner visits, including
// files that could not be read.
type Progress interface {
	FileScanned(path string, scanned int)
}

type Scanner struct {
	log      *slog.Logger
	rule     Rule
	reader   FileReader
	progress Progress
}

type Option func(*Scanner)

func WithLogger(log *slog.Logger) Option {
	return func(s *Scanner) {
		s.log = log
	}
}

func WithRule(rule Rule) Option {
	return func(s *Scanner) {
		s.rule = rule
	}
}

func WithReader(reader FileReader) Option {
	return func(s *Scanner) {
		s.reader = reader
	}
}

func WithProgress(p Progress) Option {
	return func(s *Scanner) {
		s.progress = p
	}
}

func New(opts ...Option) *Scanner {
	s := &Scanner{
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		rule:   AssignmentRule{},
		reader: &readers.TextFileReader{},
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

type keywordMatcher struct {
	keyword string
	matcher Matcher
}

// Scan walks root in lexical order and matches every line of every regular
// file against each keyword. Blank and duplicate keywords are dropped first.
// Unreadable files are logged and skipped.
func (s *Scanner) Scan(ctx context.Context, root string, words []string) (*Results, error) {
	words = keywords.Normalize(words)

	matchers := make([]keywordMatcher, 0, len(words))
	for _, w := range words {
		m, err := s.rule.ForKeyword(w)
		if err != nil {
			return nil, err
		}

		matchers = append(matchers, keywordMatcher{keyword: w, matcher: m})
	}

	state := newScanState(words)
	if len(matchers) == 0 {
		return state.results, nil
	}

	scanned := 0
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}

			s.log.Warn("unable to access path", "path", path, "error", err)
			return nil
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		if !d.Type().IsRegular() {
			return nil
		}

		scanned++
		s.scanFile(root, path, matchers, state)
		if s.progress != nil {
			s.progress.FileScanned(path, scanned)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", root, err)
	}

	return state.results, nil
}

func (s *Scanner) scanFile(root, path string, matchers []keywordMatcher, state *scanState) {
	lines, err := s.reader.ReadLines(path)
	if err != nil {
		s.log.Warn("could not read file", "path", path, "error", err)
		return
	}

	file := relPath(root, path)
	for i, line := range lines {
		n := i + 1
		for _, km := range matchers {
			if state.seen(file, n) {
				break
			}

			if !km.matcher.Match(line) {
				continue
			}

			state.record(km.keyword, Match{
				File: file,
				Line: n,
				Text: strings.TrimSpace(line),
			})
		}
	}
}

func relPath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}

	if rel == "." {
		return filepath.Base(path)
	}

	return filepath.ToSlash(rel)
}
