// Package keywords loads the set of identifier keywords to search for.
package keywords

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

var (
	ErrNoSource          = errors.New("no keyword source given")
	ErrConflictingSource = errors.New("keyword list and wordlist are mutually exclusive")
	ErrNoKeywords        = errors.New("keyword source contains no keywords")
)

// Parse splits a comma separated keyword list.
func Parse(csv string) []string {
	return Normalize(strings.Split(csv, ","))
}

// Load reads a wordlist file with one keyword per line.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open wordlist: %w", err)
	}
	defer f.Close()

	var words []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		words = append(words, sc.Text())
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("unable to read wordlist %s: %w", path, err)
	}

	return Normalize(words), nil
}

// Resolve picks exactly one of the comma separated list or the wordlist file.
func Resolve(csv, wordlist string) ([]string, error) {
	csv = strings.TrimSpace(csv)
	wordlist = strings.TrimSpace(wordlist)

	var (
		words []string
		err   error
	)
	switch {
	case csv != "" && wordlist != "":
		return nil, ErrConflictingSource
	case csv != "":
		words = Parse(csv)
	case wordlist != "":
		words, err = Load(wordlist)
		if err != nil {
			return nil, err
		}
	default:
		return nil, ErrNoSource
	}

	if len(words) == 0 {
		return nil, ErrNoKeywords
	}

	return words, nil
}

// Normalize trims every keyword, drops blank ones and collapses duplicates
// case-insensitively. The first spelling and position of a keyword win.
func Normalize(words []string) []string {
	res := make([]string, 0, len(words))
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}

		key := strings.ToLower(w)
		if _, ok := seen[key]; ok {
			continue
		}

		seen[key] = struct{}{}
		res = append(res, w)
	}

	return res
}
