package scanner

import (
	"fmt"
	"regexp"
	"strings"
)

// Matcher reports whether a line assigns to an identifier of interest.
type Matcher interface {
	Match(line string) bool
}

// Rule builds the Matcher used for a single keyword.
type Rule interface {
	ForKeyword(keyword string) (Matcher, error)
}

// assignmentPattern matches an optional leading type word, an identifier that
// embeds keyword, an equals sign and the first non-blank character of the
// right hand side. Group 1 holds the blanks after the equals sign and group 2
// that first character, so the matcher can tell "==" apart from "= =x".
func assignmentPattern(keyword string) (*regexp.Regexp, error) {
	expr := `(?i)(?:\w+\s+)?\b\w*` + regexp.QuoteMeta(keyword) + `\w*\s*=(\s*)(\S)`
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("unable to compile pattern for keyword %q: %w", keyword, err)
	}

	return re, nil
}

type regexpMatcher struct {
	re   *regexp.Regexp
	mask bool
}

func (m *regexpMatcher) Match(line string) bool {
	if m.mask {
		line = maskLine(line)
	}

	for _, loc := range m.re.FindAllStringSubmatchIndex(line, -1) {
		blanks := loc[3] > loc[2]
		if blanks || line[loc[4]:loc[5]] != "=" {
			return true
		}
	}

	return false
}

// AssignmentRule blanks out string literal contents and comments before
// looking for an assignment, so keywords mentioned only there never match.
type AssignmentRule struct{}

func (AssignmentRule) ForKeyword(keyword string) (Matcher, error) {
	re, err := assignmentPattern(keyword)
	if err != nil {
		return nil, err
	}

	return &regexpMatcher{re: re, mask: true}, nil
}

// RegexpRule applies the assignment pattern to the raw line.
type RegexpRule struct{}

func (RegexpRule) ForKeyword(keyword string) (Matcher, error) {
	re, err := assignmentPattern(keyword)
	if err != nil {
		return nil, err
	}

	return &regexpMatcher{re: re}, nil
}

// IsAssignment reports whether line assigns a value to an identifier
// containing keyword, using AssignmentRule.
func IsAssignment(line, keyword string) bool {
	m, err := AssignmentRule{}.ForKeyword(keyword)
	if err != nil {
		return false
	}

	return m.Match(line)
}

var commentPrefixes = []string{"#", "*", "<!--"}

// maskLine replaces the contents of quoted literals and block comments with
// spaces and cuts the line at a line comment. Quote characters are kept so a
// right hand side that is a literal still counts as non-blank.
func maskLine(line string) string {
	trimmed := strings.TrimLeft(line, " \t")
	for _, p := range commentPrefixes {
		if strings.HasPrefix(trimmed, p) {
			return ""
		}
	}

	b := []byte(line)
	var quote byte
	inComment := false
	for i := 0; i < len(b); i++ {
		c := b[i]
		switch {
		case inComment:
			if c == '*' && i+1 < len(b) && b[i+1] == '/' {
				b[i], b[i+1] = ' ', ' '
				i++
				inComment = false
				continue
			}
			b[i] = ' '
		case quote != 0:
			if c == '\\' && i+1 < len(b) {
				b[i], b[i+1] = ' ', ' '
				i++
				continue
			}
			if c == quote {
				quote = 0
				continue
			}
			b[i] = ' '
		case c == '"' || c == '\'':
			quote = c
		case c == '/' && i+1 < len(b) && b[i+1] == '/':
			return string(b[:i])
		case c == '/' && i+1 < len(b) && b[i+1] == '*':
			b[i], b[i+1] = ' ', ' '
			i++
			inComment = true
		}
	}

	return string(b)
}
