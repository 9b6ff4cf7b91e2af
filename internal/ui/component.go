// Package ui holds the status bar and message bar drawn below the text view.
package ui

import (
	"github.com/kobzarvs/hecto/internal/logger"
	"github.com/kobzarvs/hecto/internal/view"
)

// Printer writes whole rows to the terminal.
type Printer interface {
	PrintRow(y int, text string) error
	PrintInvertedRow(y int, text string) error
}

// Component is a rectangular piece of the screen that knows when it has to be
// drawn again.
type Component interface {
	NeedsRedraw() bool
	SetNeedsRedraw(bool)
	SetSize(view.Size)
	Draw(p Printer, originRow int) error
}

// Render draws c at originRow if it needs it. The redraw flag is only cleared
// when drawing succeeded.
func Render(c Component, p Printer, originRow int) {
	if !c.NeedsRedraw() {
		return
	}
	if err := c.Draw(p, originRow); err != nil {
		logger.Error("render failed", "row", originRow, "error", err)
		return
	}
	c.SetNeedsRedraw(false)
}
