package view

import "github.com/kobzarvs/hecto/internal/command"

func (v *View) move(d command.Direction) {
	switch d {
	case command.Up:
		v.moveUp(1)
	case command.Down:
		v.moveDown(1)
	case command.Left:
		v.moveLeft()
	case command.Right:
		v.moveRight()
	case command.PageUp:
		v.moveUp(max(v.size.Height-1, 0))
	case command.PageDown:
		v.moveDown(max(v.size.Height-1, 0))
	case command.Home:
		v.moveToStartOfLine()
	case command.End:
		v.moveToEndOfLine()
	}
}

func (v *View) moveUp(n int) {
	v.location.LineIndex = max(v.location.LineIndex-n, 0)
	v.snapToValidGrapheme()
}

// moveDown stops at the append position one past the last line.
func (v *View) moveDown(n int) {
	v.location.LineIndex = min(v.location.LineIndex+n, v.doc.Height())
	v.snapToValidGrapheme()
}

func (v *View) moveRight() {
	if v.location.GraphemeIndex < v.doc.GraphemeCount(v.location.LineIndex) {
		v.location.GraphemeIndex++
		return
	}
	if v.location.LineIndex < v.doc.Height() {
		v.moveToStartOfLine()
		v.moveDown(1)
	}
}

func (v *View) moveLeft() {
	if v.location.GraphemeIndex > 0 {
		v.location.GraphemeIndex--
		return
	}
	if v.location.LineIndex > 0 {
		v.moveUp(1)
		v.moveToEndOfLine()
	}
}

func (v *View) moveToStartOfLine() {
	v.location.GraphemeIndex = 0
}

func (v *View) moveToEndOfLine() {
	v.location.GraphemeIndex = v.doc.GraphemeCount(v.location.LineIndex)
}

// snapToValidGrapheme clamps the grapheme index to the current line's length.
func (v *View) snapToValidGrapheme() {
	v.location.GraphemeIndex = min(v.location.GraphemeIndex, v.doc.GraphemeCount(v.location.LineIndex))
}

// scrollIntoView moves the viewport the least amount that makes the cursor visible.
func (v *View) scrollIntoView() {
	pos := v.textLocationToPosition()
	v.scrollVertically(pos.Row)
	v.scrollHorizontally(pos.Col)
}

func (v *View) scrollVertically(to int) {
	height := v.size.Height
	if height == 0 {
		return
	}
	offset := v.scrollOffset.Row
	switch {
	case to < offset:
		v.scrollOffset.Row = to
	case to >= offset+height:
		v.scrollOffset.Row = to - height + 1
	default:
		return
	}
	v.needsRedraw = true
}

func (v *View) scrollHorizontally(to int) {
	width := v.size.Width
	if width == 0 {
		return
	}
	offset := v.scrollOffset.Col
	switch {
	case to < offset:
		v.scrollOffset.Col = to
	case to >= offset+width:
		v.scrollOffset.Col = to - width + 1
	default:
		return
	}
	v.needsRedraw = true
}
