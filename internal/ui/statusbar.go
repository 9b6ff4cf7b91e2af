package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/kobzarvs/hecto/internal/view"
)

var widths = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

type StatusBar struct {
	status       view.DocumentStatus
	branch       string
	branchSymbol string
	size         view.Size
	needsRedraw  bool
}

func NewStatusBar(branchSymbol string) *StatusBar {
	return &StatusBar{branchSymbol: branchSymbol, needsRedraw: true}
}

// Update replaces what the bar shows. It only asks for a redraw when
// something changed.
func (b *StatusBar) Update(status view.DocumentStatus, branch string) {
	if status == b.status && branch == b.branch {
		return
	}
	b.status = status
	b.branch = branch
	b.needsRedraw = true
}

func (b *StatusBar) NeedsRedraw() bool     { return b.needsRedraw }
func (b *StatusBar) SetNeedsRedraw(v bool) { b.needsRedraw = v }

func (b *StatusBar) SetSize(size view.Size) {
	b.size = size
	b.needsRedraw = true
}

func (b *StatusBar) Draw(p Printer, originRow int) error {
	return p.PrintInvertedRow(originRow, b.Text())
}

// Text is the full-width line the bar prints.
func (b *StatusBar) Text() string {
	left := b.status.FileName + " - " + b.status.LineCount()
	if m := b.status.ModifiedIndicator(); m != "" {
		left += " " + m
	}
	right := b.status.PositionIndicator()
	if b.branch != "" {
		right = formatGitBranch(b.branchSymbol, b.branch) + "  " + right
	}
	return composeStatusLine(left, right, b.size.Width)
}

// composeStatusLine puts left and right at the two ends of a width-column
// line. The left part is truncated first.
func composeStatusLine(left, right string, width int) string {
	if width <= 0 {
		return ""
	}
	lw := widths.StringWidth(left)
	rw := widths.StringWidth(right)
	if lw+rw > width {
		if rw >= width {
			right = widths.Truncate(right, width, "")
			rw = widths.StringWidth(right)
			left, lw = "", 0
		} else {
			left = widths.Truncate(left, width-rw, "")
			lw = widths.StringWidth(left)
		}
	}
	return left + strings.Repeat(" ", max(width-lw-rw, 0)) + right
}

func formatGitBranch(symbol, branch string) string {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		symbol = "git:"
	}
	if strings.HasSuffix(symbol, ":") || strings.HasSuffix(symbol, " ") {
		return symbol + branch
	}
	return symbol + " " + branch
}
