package scanner

// Match is a line that assigns to an identifier containing a keyword. File is
// relative to the scanned root and uses forward slashes.
type Match struct {
	File string `json:"file" yaml:"file"`
	Line int    `json:"line" yaml:"line"`
	Text string `json:"text" yaml:"text"`
}

// Results maps every scanned keyword to its matches in discovery order.
type Results struct {
	keywords []string
	matches  map[string][]Match
}

func newResults(keywords []string) *Results {
	r := &Results{
		keywords: make([]string, 0, len(keywords)),
		matches:  make(map[string][]Match, len(keywords)),
	}
	for _, k := range keywords {
		r.keywords = append(r.keywords, k)
		r.matches[k] = nil
	}

	return r
}

// Keywords returns the scanned keywords in the order they were supplied.
func (r *Results) Keywords() []string {
	return append([]string(nil), r.keywords...)
}

func (r *Results) Matches(keyword string) []Match {
	return r.matches[keyword]
}

// Total counts matches over all keywords.
func (r *Results) Total() int {
	n := 0
	for _, m := range r.matches {
		n += len(m)
	}

	return n
}

func (r *Results) Empty() bool {
	return r.Total() == 0
}

type lineRef struct {
	file string
	line int
}

// scanState accumulates one scan's matches and remembers reported lines so a
// line matched by several keywords is recorded only for the first of them.
type scanState struct {
	results  *Results
	reported map[lineRef]struct{}
}

func newScanState(keywords []string) *scanState {
	return &scanState{
		results:  newResults(keywords),
		reported: make(map[lineRef]struct{}),
	}
}

func (s *scanState) seen(file string, line int) bool {
	_, ok := s.reported[lineRef{file: file, line: line}]
	return ok
}

func (s *scanState) record(keyword string, m Match) {
	s.reported[lineRef{file: m.File, line: m.Line}] = struct{}{}
	s.results.matches[keyword] = append(s.results.matches[keyword], m)
}
