package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gamma-omg/key-detector/pkginfo"
	"github.com/gamma-omg/key-detector/scanner"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported report format: %s", s)
	}
}

type KeywordResult struct {
	Keyword string          `json:"keyword" yaml:"keyword"`
	Matches []scanner.Match `json:"matches" yaml:"matches"`
}

// Document is the exported form of a scan.
type Document struct {
	Package  *pkginfo.Info   `json:"package,omitempty" yaml:"package,omitempty"`
	Keywords []string        `json:"keywords" yaml:"keywords"`
	Total    int             `json:"total" yaml:"total"`
	Results  []KeywordResult `json:"results" yaml:"results"`
}

func NewDocument(info *pkginfo.Info, res *scanner.Results) Document {
	doc := Document{
		Package:  info,
		Keywords: res.Keywords(),
		Total:    res.Total(),
		Results:  make([]KeywordResult, 0, len(res.Keywords())),
	}
	if doc.Keywords == nil {
		doc.Keywords = []string{}
	}

	for _, kw := range res.Keywords() {
		matches := res.Matches(kw)
		if matches == nil {
			matches = []scanner.Match{}
		}

		doc.Results = append(doc.Results, KeywordResult{Keyword: kw, Matches: matches})
	}

	return doc
}

func Write(w io.Writer, format Format, doc Document) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "    ")
		return enc.Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	default:
		return writeText(w, doc)
	}
}

func writeText(w io.Writer, doc Document) error {
	if label := doc.Package.String(); label != "" {
		if _, err := fmt.Fprintf(w, "# %s\n\n", label); err != nil {
			return err
		}
	}

	for _, r := range doc.Results {
		if _, err := fmt.Fprintf(w, "[%s]\n", r.Keyword); err != nil {
			return err
		}

		for _, m := range r.Matches {
			if _, err := fmt.Fprintf(w, "- %s:%d: %s\n", m.File, m.Line, m.Text); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	return nil
}

// Save writes doc to path, replacing any existing file.
func Save(path string, format Format, doc Document) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create report file: %w", err)
	}
	defer f.Close()

	if err := Write(f, format, doc); err != nil {
		return fmt.Errorf("unable to write report: %w", err)
	}

	return f.Close()
}
