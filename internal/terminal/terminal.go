// Package terminal adapts a tcell screen to the rows-and-caret output the
// editor produces.
package terminal

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/kobzarvs/hecto/internal/config"
	"github.com/kobzarvs/hecto/internal/text"
	"github.com/kobzarvs/hecto/internal/view"
)

// Terminal owns the screen between Init and Terminate. Terminate must run on
// every exit path so the user's terminal gets back to cooked mode.
type Terminal struct {
	screen     tcell.Screen
	style      tcell.Style
	inverted   tcell.Style
	title      string
	terminated bool
}

// New opens the real terminal.
func New(theme config.Theme) (*Terminal, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewWithScreen(s, theme)
}

// NewWithScreen initializes s and takes ownership of it.
func NewWithScreen(s tcell.Screen, theme config.Theme) (*Terminal, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	style := tcell.StyleDefault.
		Foreground(parseColor(theme.Foreground, tcell.ColorDefault)).
		Background(parseColor(theme.Background, tcell.ColorDefault))
	inverted := style.Reverse(true)
	if theme.StatuslineForeground != "" || theme.StatuslineBackground != "" {
		inverted = tcell.StyleDefault.
			Foreground(parseColor(theme.StatuslineForeground, tcell.ColorDefault)).
			Background(parseColor(theme.StatuslineBackground, tcell.ColorDefault))
	}
	s.SetStyle(style)
	s.Clear()
	return &Terminal{screen: s, style: style, inverted: inverted}, nil
}

// Terminate restores the terminal. Calling it more than once is harmless.
func (t *Terminal) Terminate() {
	if t.terminated {
		return
	}
	t.terminated = true
	t.screen.Fini()
}

func (t *Terminal) Size() view.Size {
	w, h := t.screen.Size()
	return view.Size{Height: h, Width: w}
}

func (t *Terminal) PrintRow(y int, s string) error {
	return t.printRow(y, s, t.style)
}

func (t *Terminal) PrintInvertedRow(y int, s string) error {
	return t.printRow(y, s, t.inverted)
}

// printRow clears row y and prints s from its first column, one grapheme
// cluster per cell (two for wide clusters).
func (t *Terminal) printRow(y int, s string, style tcell.Style) error {
	w, h := t.screen.Size()
	if y < 0 || y >= h {
		return fmt.Errorf("row %d out of range [0,%d)", y, h)
	}
	clearLine(t.screen, y, w, style)
	x := 0
	state := -1
	for len(s) > 0 && x < w {
		var cluster string
		cluster, s, _, state = uniseg.StepString(s, state)
		cw := max(text.ClusterWidth(cluster), 1)
		if x+cw > w {
			break
		}
		runes := []rune(cluster)
		t.screen.SetContent(x, y, runes[0], runes[1:], style)
		x += cw
	}
	return nil
}

// MoveCaretTo shows the caret at p, given in screen coordinates.
func (t *Terminal) MoveCaretTo(p view.Position) {
	t.screen.ShowCursor(p.Col, p.Row)
}

func (t *Terminal) HideCaret() {
	t.screen.HideCursor()
}

// SetTitle sets the window title on screens that support it.
func (t *Terminal) SetTitle(title string) {
	if title == t.title {
		return
	}
	t.title = title
	if ts, ok := t.screen.(interface{ SetTitle(string) }); ok {
		ts.SetTitle(title)
	}
}

func (t *Terminal) Title() string {
	return t.title
}

// Execute flushes everything printed since the last call.
func (t *Terminal) Execute() {
	t.screen.Show()
}

// Sync repaints the whole screen, used after a resize.
func (t *Terminal) Sync() {
	t.screen.Sync()
}

func (t *Terminal) PollEvent() tcell.Event {
	return t.screen.PollEvent()
}

func clearLine(s tcell.Screen, y, w int, style tcell.Style) {
	for x := 0; x < w; x++ {
		s.SetContent(x, y, ' ', nil, style)
	}
}

func parseColor(name string, fallback tcell.Color) tcell.Color {
	name = strings.TrimSpace(name)
	if name == "" {
		return fallback
	}
	if strings.HasPrefix(name, "#") && len(name) == 7 {
		r, err1 := strconv.ParseInt(name[1:3], 16, 32)
		g, err2 := strconv.ParseInt(name[3:5], 16, 32)
		b, err3 := strconv.ParseInt(name[5:7], 16, 32)
		if err1 == nil && err2 == nil && err3 == nil {
			return tcell.NewRGBColor(int32(r), int32(g), int32(b))
		}
		return fallback
	}
	name = strings.ToLower(name)
	if name == "default" {
		return tcell.ColorDefault
	}
	c := tcell.GetColor(name)
	if c == tcell.ColorDefault {
		return fallback
	}
	return c
}
