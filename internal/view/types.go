package view

import "fmt"

// Size is a rectangle measured in terminal cells.
type Size struct {
	Height int
	Width  int
}

// Position is a display coordinate: Row is a line index, Col a column.
type Position struct {
	Row int
	Col int
}

// Sub subtracts o from p, stopping at zero on each axis.
func (p Position) Sub(o Position) Position {
	return Position{Row: max(p.Row-o.Row, 0), Col: max(p.Col-o.Col, 0)}
}

// Row is one line of terminal output produced by Draw.
type Row struct {
	Y    int
	Text string
}

// DocumentStatus is what the status bar shows about the open document.
type DocumentStatus struct {
	TotalLines       int
	CurrentLineIndex int
	IsModified       bool
	FileName         string
}

func (s DocumentStatus) ModifiedIndicator() string {
	if s.IsModified {
		return "(modified)"
	}
	return ""
}

func (s DocumentStatus) LineCount() string {
	return fmt.Sprintf("%d lines", s.TotalLines)
}

// PositionIndicator returns "<line>/<total>" with a one-based line number.
func (s DocumentStatus) PositionIndicator() string {
	return fmt.Sprintf("%d/%d", s.CurrentLineIndex+1, s.TotalLines)
}
