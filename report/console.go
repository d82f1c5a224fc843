package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/gamma-omg/key-detector/pkginfo"
	"github.com/gamma-omg/key-detector/scanner"
)

const banner = `
 _  __            ____       _            _
| |/ /___ _   _  |  _ \  ___| |_ ___  ___| |_ ___  _ __
| ' // _ \ | | | | | | |/ _ \ __/ _ \/ __| __/ _ \| '__|
| . \  __/ |_| | | |_| |  __/ ||  __/ (__| || (_) | |
|_|\_\___|\__, | |____/ \___|\__\___|\___|\__\___/|_|
          |___/
`

// Console prints human readable progress notices and results.
type Console struct {
	w     io.Writer
	color bool
}

func NewConsole(w io.Writer) *Console {
	return &Console{w: w, color: colorEnabled()}
}

func (c *Console) line(s style, format string, args ...any) {
	fmt.Fprintln(c.w, s.paint(fmt.Sprintf(format, args...), c.color))
}

func (c *Console) Banner() {
	c.line(styleTitle, "%s", banner)
	fmt.Fprintln(c.w, " --")
	fmt.Fprintln(c.w, " Hunting hard-coded keys in decompiled Android packages")
	fmt.Fprintln(c.w)
}

func (c *Console) Notice(format string, args ...any) {
	c.line(styleNotice, "[!] %s", fmt.Sprintf(format, args...))
}

func (c *Console) Error(err error) {
	c.line(styleFailure, "[-] %s", err)
}

// Results prints every keyword's matches followed by a per keyword summary.
func (c *Console) Results(info *pkginfo.Info, res *scanner.Results) {
	if label := info.String(); label != "" {
		fmt.Fprintln(c.w)
		c.line(styleInfo, "** Package: %s", label)
	}

	for _, kw := range res.Keywords() {
		fmt.Fprintln(c.w)
		c.line(styleFound, "[+] Results for keyword '%s':", kw)

		matches := res.Matches(kw)
		if len(matches) == 0 {
			c.line(styleFailure, "[-] No matches found.")
			continue
		}

		for _, m := range matches {
			fmt.Fprintf(c.w, "%s %s, Line: %d, %s\n",
				styleFound.paint("[+] File Found:", c.color), m.File, m.Line,
				styleValue.paint("[+] Match Value: "+m.Text, c.color))
		}
	}

	c.Summary(res)
}

func (c *Console) Summary(res *scanner.Results) {
	if res.Empty() {
		fmt.Fprintln(c.w)
		c.line(styleNotice, "** No matches found for any keyword.")
		return
	}

	parts := make([]string, 0, len(res.Keywords()))
	for _, kw := range res.Keywords() {
		parts = append(parts, fmt.Sprintf("%s=%d", kw, len(res.Matches(kw))))
	}

	fmt.Fprintln(c.w)
	c.line(styleTitle, "** %d matches (%s)", res.Total(), strings.Join(parts, ", "))
}
