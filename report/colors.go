package report

import "os"

// style is an ANSI SGR sequence applied to a whole console line or fragment.
type style string

const (
	styleTitle   style = "\033[95m"
	styleInfo    style = "\033[94m"
	styleFound   style = "\033[92m"
	styleValue   style = "\033[92;1m"
	styleNotice  style = "\033[93m"
	styleFailure style = "\033[91m"

	styleReset = "\033[0m"
)

// colorEnabled reports whether console output should carry ANSI styles.
// Setting NO_COLOR to any non-empty value turns them off.
func colorEnabled() bool {
	return os.Getenv("NO_COLOR") == ""
}

func (s style) paint(text string, enabled bool) string {
	if !enabled || text == "" {
		return text
	}
	return string(s) + text + styleReset
}
