// Package command turns terminal events into editor commands.
package command

import "fmt"

type Direction int

const (
	PageUp Direction = iota
	PageDown
	Home
	End
	Up
	Left
	Right
	Down
)

func (d Direction) String() string {
	switch d {
	case PageUp:
		return "page_up"
	case PageDown:
		return "page_down"
	case Home:
		return "home"
	case End:
		return "end"
	case Up:
		return "up"
	case Left:
		return "left"
	case Right:
		return "right"
	case Down:
		return "down"
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

// Command is one decoded user action. The set of implementations is closed.
type Command interface {
	isCommand()
}

type Move struct {
	Direction Direction
}

type Insert struct {
	Char rune
}

type DeleteForward struct{}

type DeleteBackward struct{}

type InsertNewline struct{}

type Save struct{}

type Resize struct {
	Width  int
	Height int
}

type Quit struct{}

func (Move) isCommand()           {}
func (Insert) isCommand()         {}
func (DeleteForward) isCommand()  {}
func (DeleteBackward) isCommand() {}
func (InsertNewline) isCommand()  {}
func (Save) isCommand()           {}
func (Resize) isCommand()         {}
func (Quit) isCommand()           {}
