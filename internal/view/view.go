// Package view keeps the cursor and the scroll offset of a document and
// renders the visible part of it.
package view

import (
	"github.com/kobzarvs/hecto/internal/command"
	"github.com/kobzarvs/hecto/internal/document"
	"github.com/kobzarvs/hecto/internal/logger"
)

// View owns the cursor location and the viewport over a document. All
// operations clamp instead of failing.
type View struct {
	doc            *document.Document
	needsRedraw    bool
	size           Size
	location       document.Location
	scrollOffset   Position
	bannerFraction int
}

// New returns a view over an empty document. The banner is drawn at
// height/bannerFraction.
func New(bannerFraction int) *View {
	if bannerFraction < 1 {
		bannerFraction = 1
	}
	return &View{
		doc:            document.New(),
		needsRedraw:    true,
		bannerFraction: bannerFraction,
	}
}

// SetDocument replaces the document and puts the cursor at its start.
func (v *View) SetDocument(doc *document.Document) {
	v.doc = doc
	v.location = document.Location{}
	v.scrollOffset = Position{}
	v.needsRedraw = true
}

func (v *View) Document() *document.Document {
	return v.doc
}

// Save writes the document to its file.
func (v *View) Save() error {
	return v.doc.Save()
}

// Handle applies an editing, motion or resize command. Save and Quit are left
// to the caller.
func (v *View) Handle(cmd command.Command) {
	switch c := cmd.(type) {
	case command.Move:
		v.move(c.Direction)
	case command.Insert:
		v.insertChar(c.Char)
	case command.DeleteForward:
		v.deleteForward()
	case command.DeleteBackward:
		v.deleteBackward()
	case command.InsertNewline:
		v.insertNewline()
	case command.Resize:
		v.Resize(Size{Height: c.Height, Width: c.Width})
		return
	default:
		return
	}
	v.scrollIntoView()
}

func (v *View) Resize(size Size) {
	v.size = Size{Height: max(size.Height, 0), Width: max(size.Width, 0)}
	logger.Debug("view resized", "rows", v.size.Height, "cols", v.size.Width)
	v.scrollIntoView()
	v.needsRedraw = true
}

func (v *View) Size() Size {
	return v.size
}

func (v *View) Location() document.Location {
	return v.location
}

func (v *View) ScrollOffset() Position {
	return v.scrollOffset
}

// SetLocation moves the cursor to loc, clamped to the document, and scrolls
// it into view.
func (v *View) SetLocation(loc document.Location) {
	v.location = loc
	v.location.LineIndex = min(max(v.location.LineIndex, 0), v.doc.Height())
	v.location.GraphemeIndex = max(v.location.GraphemeIndex, 0)
	v.snapToValidGrapheme()
	v.scrollIntoView()
	v.needsRedraw = true
}

// Restore puts back a cursor and scroll offset saved earlier. The offset is
// adjusted if it would hide the cursor.
func (v *View) Restore(loc document.Location, offset Position) {
	v.scrollOffset = Position{Row: max(offset.Row, 0), Col: max(offset.Col, 0)}
	v.SetLocation(loc)
}

func (v *View) NeedsRedraw() bool {
	return v.needsRedraw
}

func (v *View) SetNeedsRedraw(needsRedraw bool) {
	v.needsRedraw = needsRedraw
}

func (v *View) Status() DocumentStatus {
	return DocumentStatus{
		TotalLines:       v.doc.Height(),
		CurrentLineIndex: v.location.LineIndex,
		IsModified:       v.doc.IsDirty(),
		FileName:         v.doc.FileInfo().String(),
	}
}

// CaretPosition is the cursor's display position relative to the viewport.
func (v *View) CaretPosition() Position {
	return v.textLocationToPosition().Sub(v.scrollOffset)
}

func (v *View) textLocationToPosition() Position {
	col := 0
	if line, ok := v.doc.Line(v.location.LineIndex); ok {
		col = line.WidthUntil(v.location.GraphemeIndex)
	}
	return Position{Row: v.location.LineIndex, Col: col}
}

func (v *View) insertChar(ch rune) {
	before := v.doc.GraphemeCount(v.location.LineIndex)
	v.doc.InsertChar(ch, v.location)
	after := v.doc.GraphemeCount(v.location.LineIndex)
	if after > before {
		v.moveRight()
	}
	v.needsRedraw = true
}

func (v *View) deleteBackward() {
	if v.location.LineIndex == 0 && v.location.GraphemeIndex == 0 {
		return
	}
	v.moveLeft()
	v.deleteForward()
}

func (v *View) deleteForward() {
	v.doc.Delete(v.location)
	v.needsRedraw = true
}

func (v *View) insertNewline() {
	v.doc.InsertNewline(v.location)
	v.moveRight()
	v.needsRedraw = true
}
