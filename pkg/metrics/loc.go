package metrics

import "encoding/json"

// Loc tracks the line counts of a space: strict (sloc), physical (ploc),
// logical (lloc), comment (cloc), and blank lines.
//
// Code and comment lines are tracked as sets of 1-based line numbers so that
// merging a child space never double-counts a line shared with its parent.
type Loc struct {
	startLine    uint64
	endLine      uint64
	codeLines    map[uint64]struct{}
	commentLines map[uint64]struct{}
	logical      uint64
}

// NewLoc returns the metric for a space spanning the given 1-based inclusive
// line range. An empty unit uses (0, 0).
func NewLoc(startLine, endLine uint64) Loc {
	return Loc{
		startLine:    startLine,
		endLine:      endLine,
		codeLines:    make(map[uint64]struct{}),
		commentLines: make(map[uint64]struct{}),
	}
}

// AddCodeLines marks the 1-based line range [start, end] as holding code.
func (l *Loc) AddCodeLines(start, end uint64) {
	for line := start; line <= end; line++ {
		l.codeLines[line] = struct{}{}
	}
}

// AddCommentLines marks the 1-based line range [start, end] as comment.
func (l *Loc) AddCommentLines(start, end uint64) {
	for line := start; line <= end; line++ {
		l.commentLines[line] = struct{}{}
	}
}

// AddLogical records one logical statement.
func (l *Loc) AddLogical() {
	l.logical++
}

// Merge folds a child space's counters into this one. The line span stays
// this space's own: a parent always covers its children.
func (l *Loc) Merge(other *Loc) {
	for line := range other.codeLines {
		l.codeLines[line] = struct{}{}
	}
	for line := range other.commentLines {
		l.commentLines[line] = struct{}{}
	}
	l.logical += other.logical
}

// Sloc returns the strict line count: every line in the space's span. A unit
// whose last token sits on its first line has an end line before its start
// line; that still spans one line.
func (l Loc) Sloc() float64 {
	if l.startLine == 0 && l.endLine == 0 {
		return 0
	}
	if l.endLine < l.startLine {
		return 1
	}
	return float64(l.endLine - l.startLine + 1)
}

// Ploc returns the physical line count: lines holding at least one code token.
func (l Loc) Ploc() float64 {
	return float64(len(l.codeLines))
}

// Lloc returns the logical line count: the number of statements.
func (l Loc) Lloc() float64 {
	return float64(l.logical)
}

// Cloc returns the comment line count.
func (l Loc) Cloc() float64 {
	return float64(len(l.commentLines))
}

// Blank returns the lines in the span that hold neither code nor comments.
func (l Loc) Blank() float64 {
	blank := l.Sloc() - l.Ploc() - l.Cloc()
	if blank < 0 {
		return 0
	}
	return blank
}

func (l Loc) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]float64{
		"sloc":  l.Sloc(),
		"ploc":  l.Ploc(),
		"lloc":  l.Lloc(),
		"cloc":  l.Cloc(),
		"blank": l.Blank(),
	})
}
