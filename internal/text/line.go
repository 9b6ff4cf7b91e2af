// Package text holds a single editable line as a sequence of grapheme
// clusters together with the terminal width of each cluster.
package text

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Width is the number of terminal columns a fragment occupies.
type Width int

const (
	Half Width = 1
	Full Width = 2
)

// Glyphs shown in place of graphemes that cannot be printed as is.
const (
	TabGlyph      = ' '
	BlankGlyph    = '␣'
	ControlGlyph  = '▯'
	ZeroGlyph     = '·'
	EllipsisGlyph = '⋯'
)

// widths ignores the locale so that the same text always measures the same.
var widths = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// ClusterWidth returns the column count of a single grapheme cluster.
func ClusterWidth(cluster string) int {
	return widths.StringWidth(cluster)
}

// Fragment is one grapheme cluster of a line.
type Fragment struct {
	Grapheme    string
	Width       Width
	Replacement rune // zero when Grapheme is printed unchanged
}

// Glyph returns what the terminal should print for the fragment.
func (f Fragment) Glyph() string {
	if f.Replacement != 0 {
		return string(f.Replacement)
	}
	return f.Grapheme
}

// Line is an ordered list of fragments. The fragment list is the only state.
type Line struct {
	fragments []Fragment
}

// FromString segments s into grapheme clusters.
func FromString(s string) *Line {
	return &Line{fragments: toFragments(s)}
}

func toFragments(s string) []Fragment {
	if s == "" {
		return nil
	}
	out := make([]Fragment, 0, len(s))
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.StepString(s, state)
		out = append(out, newFragment(cluster))
	}
	return out
}

func newFragment(cluster string) Fragment {
	if r, ok := replacement(cluster); ok {
		return Fragment{Grapheme: cluster, Width: Half, Replacement: r}
	}
	w := Half
	if ClusterWidth(cluster) > 1 {
		w = Full
	}
	return Fragment{Grapheme: cluster, Width: w}
}

func replacement(cluster string) (rune, bool) {
	width := ClusterWidth(cluster)
	switch {
	case cluster == " ":
		return 0, false
	case cluster == "\t":
		return TabGlyph, true
	case width > 0 && strings.TrimSpace(cluster) == "":
		return BlankGlyph, true
	case width == 0:
		r, size := utf8.DecodeRuneInString(cluster)
		if size == len(cluster) && unicode.IsControl(r) {
			return ControlGlyph, true
		}
		return ZeroGlyph, true
	}
	return 0, false
}

// GraphemeCount returns the number of cursor stops on the line.
func (l *Line) GraphemeCount() int {
	return len(l.fragments)
}

// Fragments returns the fragments of the line. Callers must not modify them.
func (l *Line) Fragments() []Fragment {
	return l.fragments
}

// WidthUntil sums the widths of the first n fragments.
func (l *Line) WidthUntil(n int) int {
	if n > len(l.fragments) {
		n = len(l.fragments)
	}
	total := 0
	for i := 0; i < n; i++ {
		total += int(l.fragments[i].Width)
	}
	return total
}

// Width returns the display width of the whole line.
func (l *Line) Width() int {
	return l.WidthUntil(len(l.fragments))
}

// VisibleGraphemes returns the text to print for the columns [start, end).
// A wide fragment cut by either edge is shown as a single ellipsis.
func (l *Line) VisibleGraphemes(start, end int) string {
	if start >= end {
		return ""
	}
	var b strings.Builder
	pos := 0
	for _, f := range l.fragments {
		if pos >= end {
			break
		}
		fragmentEnd := pos + int(f.Width)
		if fragmentEnd > start {
			if fragmentEnd > end || pos < start {
				b.WriteRune(EllipsisGlyph)
			} else {
				b.WriteString(f.Glyph())
			}
		}
		pos = fragmentEnd
	}
	return b.String()
}

// InsertChar inserts ch before fragment at, or appends it when at is past the end.
// The line is segmented again since ch may join a neighbouring cluster.
func (l *Line) InsertChar(ch rune, at int) {
	var b strings.Builder
	for i, f := range l.fragments {
		if i == at {
			b.WriteRune(ch)
		}
		b.WriteString(f.Grapheme)
	}
	if at >= len(l.fragments) {
		b.WriteRune(ch)
	}
	l.fragments = toFragments(b.String())
}

// Delete removes fragment at. Out of range indexes are ignored.
func (l *Line) Delete(at int) {
	if at < 0 || at >= len(l.fragments) {
		return
	}
	var b strings.Builder
	for i, f := range l.fragments {
		if i != at {
			b.WriteString(f.Grapheme)
		}
	}
	l.fragments = toFragments(b.String())
}

// Append concatenates other onto l.
func (l *Line) Append(other *Line) {
	l.fragments = toFragments(l.String() + other.String())
}

// Split truncates l to [0, at) and returns the fragments [at, end) as a new line.
// When at is past the end l is left unchanged and an empty line is returned.
func (l *Line) Split(at int) *Line {
	if at < 0 || at > len(l.fragments) {
		return &Line{}
	}
	tail := make([]Fragment, len(l.fragments)-at)
	copy(tail, l.fragments[at:])
	l.fragments = l.fragments[:at:at]
	return &Line{fragments: tail}
}

// String returns the source text of the line, which is what gets saved.
func (l *Line) String() string {
	var b strings.Builder
	for _, f := range l.fragments {
		b.WriteString(f.Grapheme)
	}
	return b.String()
}
