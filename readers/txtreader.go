package readers

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// TextFileReader reads any file as text. Invalid UTF-8 sequences are replaced
// with U+FFFD and a leading byte order mark is honoured, so reads never fail
// on content.
type TextFileReader struct{}

func (r *TextFileReader) ReadText(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("reading text file: %w", err)
	}
	defer f.Close()

	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	buf, err := io.ReadAll(transform.NewReader(f, dec))
	if err != nil {
		return "", fmt.Errorf("decoding text file: %w", err)
	}

	return string(buf), nil
}

// ReadLines returns the lines of the file without line terminators. Index 0
// holds line 1.
func (r *TextFileReader) ReadLines(path string) ([]string, error) {
	text, err := r.ReadText(path)
	if err != nil {
		return nil, err
	}

	return splitLines(text), nil
}

func splitLines(text string) []string {
	if text == "" {
		return []string{}
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines
}
