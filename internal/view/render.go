package view

import (
	"strings"

	"github.com/kobzarvs/hecto/internal/config"
)

const filler = "~"

// Draw returns the rows to print, starting at terminal row originRow. It
// returns nil when nothing changed since the last draw.
func (v *View) Draw(originRow int) []Row {
	if !v.needsRedraw {
		return nil
	}
	v.needsRedraw = false
	if v.size.Height == 0 || v.size.Width == 0 {
		return nil
	}

	bannerRow := v.size.Height / v.bannerFraction
	left := v.scrollOffset.Col
	right := left + v.size.Width

	rows := make([]Row, 0, v.size.Height)
	for y := 0; y < v.size.Height; y++ {
		row := Row{Y: originRow + y}
		if line, ok := v.doc.Line(y + v.scrollOffset.Row); ok {
			row.Text = line.VisibleGraphemes(left, right)
		} else if v.doc.IsEmpty() && y == bannerRow {
			row.Text = banner(v.size.Width)
		} else {
			row.Text = filler
		}
		rows = append(rows, row)
	}
	return rows
}

// banner centers the product name after a filler glyph, or falls back to the
// filler alone when it does not fit.
func banner(width int) string {
	if width <= 0 {
		return ""
	}
	msg := config.AppName + " editor -- version " + config.Version
	remaining := width - 1
	if remaining < len(msg) {
		return filler
	}
	pad := remaining - len(msg)
	leftPad := pad / 2
	return filler + strings.Repeat(" ", leftPad) + msg + strings.Repeat(" ", pad-leftPad)
}
