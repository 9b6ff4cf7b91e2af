package view

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/kobzarvs/hecto/internal/command"
	"github.com/kobzarvs/hecto/internal/document"
)

func newView(t *testing.T, content string, size Size) *View {
	t.Helper()
	v := New(3)
	v.SetDocument(document.Parse(content))
	v.Resize(size)
	return v
}

func lineText(t *testing.T, v *View, i int) string {
	t.Helper()
	line, ok := v.Document().Line(i)
	if !ok {
		t.Fatalf("line %d missing", i)
	}
	return line.String()
}

func assertLocation(t *testing.T, v *View, line, grapheme int) {
	t.Helper()
	got := v.Location()
	if got.LineIndex != line || got.GraphemeIndex != grapheme {
		t.Fatalf("location = (%d,%d), want (%d,%d)", got.LineIndex, got.GraphemeIndex, line, grapheme)
	}
}

func move(v *View, d command.Direction) {
	v.Handle(command.Move{Direction: d})
}

func TestWideGlyphCutByRightEdge(t *testing.T) {
	v := newView(t, "ab\n世界", Size{Height: 5, Width: 3})
	v.SetLocation(document.Location{LineIndex: 1})

	rows := v.Draw(0)
	if len(rows) != 5 {
		t.Fatalf("rows = %d, want 5", len(rows))
	}
	want := []string{"ab", "世⋯", "~", "~", "~"}
	for i, w := range want {
		if rows[i].Y != i || rows[i].Text != w {
			t.Fatalf("row %d = %+v, want %q", i, rows[i], w)
		}
	}
}

func TestDeleteBackwardAtDocumentStart(t *testing.T) {
	v := newView(t, "", Size{Height: 10, Width: 20})
	v.Handle(command.DeleteBackward{})
	assertLocation(t, v, 0, 0)
	if v.Document().Height() != 0 {
		t.Fatalf("height = %d, want 0", v.Document().Height())
	}

	v = newView(t, "abc", Size{Height: 10, Width: 20})
	v.Handle(command.DeleteBackward{})
	if got := lineText(t, v, 0); got != "abc" {
		t.Fatalf("line = %q, want abc", got)
	}
}

func TestNewlineAtEndThenInsert(t *testing.T) {
	v := newView(t, "abc\ndef", Size{Height: 10, Width: 20})
	v.SetLocation(document.Location{LineIndex: 1, GraphemeIndex: 3})
	v.Handle(command.InsertNewline{})
	v.Handle(command.Insert{Char: 'x'})

	if h := v.Document().Height(); h != 3 {
		t.Fatalf("height = %d, want 3", h)
	}
	if got := lineText(t, v, 2); got != "x" {
		t.Fatalf("new line = %q, want x", got)
	}
	assertLocation(t, v, 2, 1)
}

func TestNewlineSplitsLine(t *testing.T) {
	v := newView(t, "hello", Size{Height: 10, Width: 20})
	v.SetLocation(document.Location{GraphemeIndex: 2})
	v.Handle(command.InsertNewline{})
	if lineText(t, v, 0) != "he" || lineText(t, v, 1) != "llo" {
		t.Fatalf("lines = %q %q, want he llo", lineText(t, v, 0), lineText(t, v, 1))
	}
	assertLocation(t, v, 1, 0)
}

func TestMoveDownClampsToShorterLine(t *testing.T) {
	v := newView(t, "hello world\nhi", Size{Height: 10, Width: 40})
	v.SetLocation(document.Location{GraphemeIndex: 8})
	move(v, command.Down)
	assertLocation(t, v, 1, 2)

	move(v, command.Up)
	assertLocation(t, v, 0, 2)
}

func TestMoveDownStopsAtAppendPosition(t *testing.T) {
	v := newView(t, "a\nb", Size{Height: 10, Width: 40})
	for i := 0; i < 5; i++ {
		move(v, command.Down)
	}
	assertLocation(t, v, 2, 0)
}

func TestHorizontalWrapAround(t *testing.T) {
	v := newView(t, "ab\ncd", Size{Height: 10, Width: 40})
	v.SetLocation(document.Location{GraphemeIndex: 2})
	move(v, command.Right)
	assertLocation(t, v, 1, 0)

	move(v, command.Left)
	assertLocation(t, v, 0, 2)

	v.SetLocation(document.Location{})
	move(v, command.Left)
	assertLocation(t, v, 0, 0)
}

func TestHomeEnd(t *testing.T) {
	v := newView(t, "a世b", Size{Height: 10, Width: 40})
	move(v, command.End)
	assertLocation(t, v, 0, 3)
	if got := v.CaretPosition(); got != (Position{Row: 0, Col: 4}) {
		t.Fatalf("caret = %+v, want {0 4}", got)
	}
	move(v, command.Home)
	assertLocation(t, v, 0, 0)
}

func TestPageMovesByViewportMinusOne(t *testing.T) {
	content := strings.Repeat("line\n", 20)
	v := newView(t, content, Size{Height: 5, Width: 40})
	move(v, command.PageDown)
	assertLocation(t, v, 4, 0)
	if off := v.ScrollOffset(); off.Row != 0 {
		t.Fatalf("scroll row = %d, want 0", off.Row)
	}
	move(v, command.PageDown)
	assertLocation(t, v, 8, 0)
	if off := v.ScrollOffset(); off.Row != 4 {
		t.Fatalf("scroll row = %d, want 4", off.Row)
	}
	move(v, command.PageUp)
	assertLocation(t, v, 4, 0)
	if off := v.ScrollOffset(); off.Row != 4 {
		t.Fatalf("scroll row = %d, want 4", off.Row)
	}
	move(v, command.Up)
	if off := v.ScrollOffset(); off.Row != 3 {
		t.Fatalf("scroll row = %d, want 3", off.Row)
	}
}

func TestHorizontalScrollIsMinimal(t *testing.T) {
	v := newView(t, "abcdefghij", Size{Height: 3, Width: 4})
	v.Draw(0)
	move(v, command.End)
	if off := v.ScrollOffset(); off.Col != 7 {
		t.Fatalf("scroll col = %d, want 7", off.Col)
	}
	if !v.NeedsRedraw() {
		t.Fatalf("scrolling did not request a redraw")
	}
	rows := v.Draw(0)
	if rows[0].Text != "hij" {
		t.Fatalf("row 0 = %q, want hij", rows[0].Text)
	}
	if got := v.CaretPosition(); got != (Position{Row: 0, Col: 3}) {
		t.Fatalf("caret = %+v, want {0 3}", got)
	}

	move(v, command.Home)
	if off := v.ScrollOffset(); off.Col != 0 {
		t.Fatalf("scroll col = %d, want 0", off.Col)
	}
}

func TestInsertAdvancesOnlyWhenCountGrows(t *testing.T) {
	v := newView(t, "e", Size{Height: 3, Width: 10})
	move(v, command.End)
	v.Handle(command.Insert{Char: '\u0301'})
	assertLocation(t, v, 0, 1)
	if got := lineText(t, v, 0); got != "e\u0301" {
		t.Fatalf("line = %q", got)
	}

	v.Handle(command.Insert{Char: '世'})
	assertLocation(t, v, 0, 2)
	if got := v.CaretPosition(); got.Col != 3 {
		t.Fatalf("caret col = %d, want 3", got.Col)
	}
}

func TestInsertIntoEmptyDocument(t *testing.T) {
	v := newView(t, "", Size{Height: 3, Width: 10})
	v.Handle(command.Insert{Char: 'a'})
	v.Handle(command.Insert{Char: 'b'})
	if got := lineText(t, v, 0); got != "ab" {
		t.Fatalf("line = %q, want ab", got)
	}
	assertLocation(t, v, 0, 2)
	if !v.Document().IsDirty() {
		t.Fatalf("document not dirty after insert")
	}
}

func TestBackspaceJoinsLines(t *testing.T) {
	v := newView(t, "ab\ncd", Size{Height: 3, Width: 10})
	v.SetLocation(document.Location{LineIndex: 1})
	v.Handle(command.DeleteBackward{})
	if v.Document().Height() != 1 || lineText(t, v, 0) != "abcd" {
		t.Fatalf("lines after backspace: height %d", v.Document().Height())
	}
	assertLocation(t, v, 0, 2)
}

func TestDeleteForwardJoinsLines(t *testing.T) {
	v := newView(t, "ab\ncd", Size{Height: 3, Width: 10})
	move(v, command.End)
	v.Handle(command.DeleteForward{})
	if got := lineText(t, v, 0); got != "abcd" {
		t.Fatalf("line = %q, want abcd", got)
	}
	assertLocation(t, v, 0, 2)
}

func TestDrawIsGatedByRedrawFlag(t *testing.T) {
	v := newView(t, "abc", Size{Height: 3, Width: 10})
	if rows := v.Draw(0); len(rows) != 3 {
		t.Fatalf("first draw rows = %d, want 3", len(rows))
	}
	if rows := v.Draw(0); rows != nil {
		t.Fatalf("second draw = %v, want nil", rows)
	}
	move(v, command.Right)
	if v.NeedsRedraw() {
		t.Fatalf("cursor move inside the viewport requested a redraw")
	}
	v.Handle(command.Insert{Char: 'x'})
	if rows := v.Draw(0); len(rows) != 3 || rows[0].Text != "axbc" {
		t.Fatalf("draw after insert = %v", rows)
	}
}

func TestDrawUsesOrigin(t *testing.T) {
	v := newView(t, "abc", Size{Height: 2, Width: 10})
	rows := v.Draw(3)
	if rows[0].Y != 3 || rows[1].Y != 4 {
		t.Fatalf("rows = %+v, want Y 3 and 4", rows)
	}
}

func TestBannerOnEmptyDocument(t *testing.T) {
	v := newView(t, "", Size{Height: 9, Width: 40})
	rows := v.Draw(0)
	for i, row := range rows {
		if i == 3 {
			if !strings.HasPrefix(row.Text, "~") || !strings.Contains(row.Text, "hecto editor -- version") {
				t.Fatalf("banner row = %q", row.Text)
			}
			if len(row.Text) != 40 {
				t.Fatalf("banner width = %d, want 40", len(row.Text))
			}
			continue
		}
		if row.Text != "~" {
			t.Fatalf("row %d = %q, want ~", i, row.Text)
		}
	}

	narrow := newView(t, "", Size{Height: 9, Width: 10})
	if rows := narrow.Draw(0); rows[3].Text != "~" {
		t.Fatalf("narrow banner = %q, want ~", rows[3].Text)
	}

	notEmpty := newView(t, "\n", Size{Height: 9, Width: 40})
	if rows := notEmpty.Draw(0); rows[3].Text != "~" {
		t.Fatalf("banner drawn for a non-empty document: %q", rows[3].Text)
	}
}

func TestZeroSizeDrawsNothing(t *testing.T) {
	v := newView(t, "abc", Size{})
	if rows := v.Draw(0); rows != nil {
		t.Fatalf("draw = %v, want nil", rows)
	}
	move(v, command.End)
	if off := v.ScrollOffset(); off != (Position{}) {
		t.Fatalf("scroll = %+v with zero size", off)
	}
}

func TestSetLocationClamps(t *testing.T) {
	v := newView(t, "ab\ncd", Size{Height: 3, Width: 10})
	v.SetLocation(document.Location{LineIndex: 99, GraphemeIndex: 5})
	assertLocation(t, v, 2, 0)
	v.SetLocation(document.Location{LineIndex: 1, GraphemeIndex: 99})
	assertLocation(t, v, 1, 2)
	v.SetLocation(document.Location{LineIndex: -3, GraphemeIndex: -1})
	assertLocation(t, v, 0, 0)
}

func TestRestoreKeepsVisibleOffset(t *testing.T) {
	content := strings.Repeat("x\n", 100)
	v := newView(t, content, Size{Height: 10, Width: 10})
	v.Restore(document.Location{LineIndex: 50}, Position{Row: 45})
	if off := v.ScrollOffset(); off.Row != 45 {
		t.Fatalf("scroll row = %d, want 45", off.Row)
	}
	v.Restore(document.Location{LineIndex: 50}, Position{})
	if off := v.ScrollOffset(); off.Row != 41 {
		t.Fatalf("scroll row = %d, want 41", off.Row)
	}
}

func TestStatus(t *testing.T) {
	v := newView(t, "ab\ncd", Size{Height: 3, Width: 10})
	move(v, command.Down)
	s := v.Status()
	if s.FileName != "[No Name]" || s.TotalLines != 2 || s.IsModified {
		t.Fatalf("status = %+v", s)
	}
	if s.PositionIndicator() != "2/2" || s.LineCount() != "2 lines" || s.ModifiedIndicator() != "" {
		t.Fatalf("indicators = %q %q %q", s.PositionIndicator(), s.LineCount(), s.ModifiedIndicator())
	}
	v.Handle(command.Insert{Char: 'z'})
	if got := v.Status().ModifiedIndicator(); got != "(modified)" {
		t.Fatalf("modified indicator = %q", got)
	}
}

func TestResizeCommand(t *testing.T) {
	v := newView(t, strings.Repeat("x\n", 30), Size{Height: 20, Width: 10})
	v.SetLocation(document.Location{LineIndex: 15})
	v.Draw(0)
	v.Handle(command.Resize{Width: 10, Height: 5})
	if v.Size() != (Size{Height: 5, Width: 10}) {
		t.Fatalf("size = %+v", v.Size())
	}
	if off := v.ScrollOffset(); off.Row != 11 {
		t.Fatalf("scroll row = %d, want 11", off.Row)
	}
	if !v.NeedsRedraw() {
		t.Fatalf("resize did not request a redraw")
	}
}

func TestCursorStaysInsideViewport(t *testing.T) {
	content := "short\n" +
		strings.Repeat("a", 50) + "\n" +
		"世界世界世界世界世界世界\n" +
		"\n" +
		"tab\there\u200bzero\n" +
		strings.Repeat("long line of text ", 6) + "\n" +
		"x"
	v := newView(t, content, Size{Height: 4, Width: 7})
	rng := rand.New(rand.NewSource(7))
	directions := []command.Direction{
		command.PageUp, command.PageDown, command.Home, command.End,
		command.Up, command.Left, command.Right, command.Down,
	}
	for i := 0; i < 2000; i++ {
		if rng.Intn(10) == 0 {
			v.Handle(command.Resize{Width: 1 + rng.Intn(12), Height: 1 + rng.Intn(6)})
		} else {
			move(v, directions[rng.Intn(len(directions))])
		}
		pos := v.textLocationToPosition()
		off := v.ScrollOffset()
		size := v.Size()
		if pos.Row < off.Row || pos.Row >= off.Row+size.Height {
			t.Fatalf("step %d: row %d outside [%d,%d)", i, pos.Row, off.Row, off.Row+size.Height)
		}
		if pos.Col < off.Col || pos.Col >= off.Col+size.Width {
			t.Fatalf("step %d: col %d outside [%d,%d)", i, pos.Col, off.Col, off.Col+size.Width)
		}
		caret := v.CaretPosition()
		if caret.Row >= size.Height || caret.Col >= size.Width {
			t.Fatalf("step %d: caret %+v outside %+v", i, caret, size)
		}
	}
}
