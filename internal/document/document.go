package document

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/kobzarvs/hecto/internal/logger"
	"github.com/kobzarvs/hecto/internal/text"
)

// ErrNoFileName is returned when saving a document that was never given a path.
var ErrNoFileName = errors.New("no file name")

// Location addresses a grapheme inside the document. LineIndex may equal the
// document height, which is the position where a new line gets appended.
type Location struct {
	GraphemeIndex int
	LineIndex     int
}

type FileInfo struct {
	Path string
}

func (f FileInfo) HasPath() bool {
	return f.Path != ""
}

// String returns the base name of the file, or "[No Name]".
func (f FileInfo) String() string {
	if f.Path == "" {
		return "[No Name]"
	}
	return filepath.Base(f.Path)
}

// Document is an ordered list of lines plus the file they belong to.
// An empty document has no lines at all.
type Document struct {
	lines    []*text.Line
	fileInfo FileInfo
	dirty    bool
}

func New() *Document {
	return &Document{}
}

// Parse splits s into lines on "\n" and "\r\n". A trailing line break does
// not start an extra line.
func Parse(s string) *Document {
	d := &Document{}
	if s == "" {
		return d
	}
	s = strings.TrimSuffix(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	for _, part := range strings.Split(s, "\n") {
		d.lines = append(d.lines, text.FromString(part))
	}
	return d
}

// Load reads path and records it as the document's file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	d := Parse(string(data))
	d.fileInfo = FileInfo{Path: path}
	logger.Debug("document loaded", "path", path, "lines", d.Height())
	return d, nil
}

func (d *Document) Height() int {
	return len(d.lines)
}

func (d *Document) IsEmpty() bool {
	return len(d.lines) == 0
}

func (d *Document) IsDirty() bool {
	return d.dirty
}

func (d *Document) FileInfo() FileInfo {
	return d.fileInfo
}

// SetFileInfo changes where the document will be saved. It does not touch the
// dirty flag.
func (d *Document) SetFileInfo(info FileInfo) {
	d.fileInfo = info
}

// Line returns line i, or false when i is out of range.
func (d *Document) Line(i int) (*text.Line, bool) {
	if i < 0 || i >= len(d.lines) {
		return nil, false
	}
	return d.lines[i], true
}

// GraphemeCount returns the grapheme count of line i, or 0 when there is no such line.
func (d *Document) GraphemeCount(i int) int {
	line, ok := d.Line(i)
	if !ok {
		return 0
	}
	return line.GraphemeCount()
}

// InsertChar inserts ch at the location. At the append position a new line
// holding just ch is added; further below nothing happens.
func (d *Document) InsertChar(ch rune, at Location) {
	switch {
	case at.LineIndex == d.Height():
		d.lines = append(d.lines, text.FromString(string(ch)))
		d.dirty = true
	case at.LineIndex >= 0 && at.LineIndex < d.Height():
		d.lines[at.LineIndex].InsertChar(ch, at.GraphemeIndex)
		d.dirty = true
	}
}

// Delete removes the grapheme at the location. At or past the end of a line the
// next line is joined onto it instead.
func (d *Document) Delete(at Location) {
	line, ok := d.Line(at.LineIndex)
	if !ok {
		return
	}
	count := line.GraphemeCount()
	switch {
	case at.GraphemeIndex >= count && at.LineIndex+1 < d.Height():
		next := d.lines[at.LineIndex+1]
		d.lines = append(d.lines[:at.LineIndex+1], d.lines[at.LineIndex+2:]...)
		line.Append(next)
		d.dirty = true
	case at.GraphemeIndex >= 0 && at.GraphemeIndex < count:
		line.Delete(at.GraphemeIndex)
		d.dirty = true
	}
}

// InsertNewline splits the line at the location, moving the tail onto a new
// line right below. At the append position an empty line is added.
func (d *Document) InsertNewline(at Location) {
	if at.LineIndex == d.Height() {
		d.lines = append(d.lines, &text.Line{})
		d.dirty = true
		return
	}
	line, ok := d.Line(at.LineIndex)
	if !ok {
		return
	}
	tail := line.Split(at.GraphemeIndex)
	d.lines = append(d.lines, nil)
	copy(d.lines[at.LineIndex+2:], d.lines[at.LineIndex+1:])
	d.lines[at.LineIndex+1] = tail
	d.dirty = true
}

// Content returns the text that Save writes: every line followed by "\n",
// including the last one.
func (d *Document) Content() string {
	var b strings.Builder
	for _, line := range d.lines {
		b.WriteString(line.String())
		b.WriteByte('\n')
	}
	return b.String()
}

func (d *Document) Save() error {
	if !d.fileInfo.HasPath() {
		return ErrNoFileName
	}
	if err := os.WriteFile(d.fileInfo.Path, []byte(d.Content()), 0o644); err != nil {
		logger.Error("save failed", "path", d.fileInfo.Path, "error", err)
		return err
	}
	d.dirty = false
	logger.Info("document saved", "path", d.fileInfo.Path, "lines", d.Height())
	return nil
}
