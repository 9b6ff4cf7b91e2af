package command

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/kobzarvs/hecto/internal/config"
	"github.com/kobzarvs/hecto/internal/logger"
)

// Decoder maps terminal events to commands through a keymap of key names
// ("ctrl+s", "left", "pgdn") to action names.
type Decoder struct {
	keymap map[string]string
}

func NewDecoder(keymap map[string]string) *Decoder {
	km := make(map[string]string, len(keymap))
	for k, v := range keymap {
		km[strings.ToLower(k)] = v
	}
	return &Decoder{keymap: km}
}

// FromEvent returns the command for ev, or false when ev means nothing to the editor.
func (d *Decoder) FromEvent(ev tcell.Event) (Command, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return d.fromKey(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		return Resize{Width: w, Height: h}, true
	}
	return nil, false
}

func (d *Decoder) fromKey(ev *tcell.EventKey) (Command, bool) {
	name := KeyName(ev)
	if action, ok := d.keymap[strings.ToLower(name)]; ok {
		if cmd, ok := FromAction(action); ok {
			return cmd, true
		}
	}
	if ev.Key() == tcell.KeyRune && ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt|tcell.ModMeta) == 0 {
		return Insert{Char: ev.Rune()}, true
	}
	logger.Debug("unbound key", "key", name)
	return nil, false
}

// FromAction returns the command bound to a keymap action name.
func FromAction(action string) (Command, bool) {
	switch action {
	case config.ActionQuit:
		return Quit{}, true
	case config.ActionSave:
		return Save{}, true
	case config.ActionMoveLeft:
		return Move{Direction: Left}, true
	case config.ActionMoveRight:
		return Move{Direction: Right}, true
	case config.ActionMoveUp:
		return Move{Direction: Up}, true
	case config.ActionMoveDown:
		return Move{Direction: Down}, true
	case config.ActionPageUp:
		return Move{Direction: PageUp}, true
	case config.ActionPageDown:
		return Move{Direction: PageDown}, true
	case config.ActionLineStart:
		return Move{Direction: Home}, true
	case config.ActionLineEnd:
		return Move{Direction: End}, true
	case config.ActionBackspace:
		return DeleteBackward{}, true
	case config.ActionDeleteChar:
		return DeleteForward{}, true
	case config.ActionNewline:
		return InsertNewline{}, true
	case config.ActionInsertTab:
		return Insert{Char: '\t'}, true
	}
	return nil, false
}

// KeyName returns the keymap name of ev, or "" for keys without one.
func KeyName(ev *tcell.EventKey) string {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			return "ctrl+" + strings.ToLower(string(r))
		}
		if ev.Modifiers()&tcell.ModAlt != 0 {
			return "alt+" + string(r)
		}
		if r == ' ' {
			return "space"
		}
		return string(r)
	}
	// Tab, Enter and Backspace share codes with Ctrl-I, Ctrl-M and Ctrl-H.
	switch ev.Key() {
	case tcell.KeyTab:
		if ev.Modifiers()&tcell.ModShift != 0 {
			return "shift+tab"
		}
		return "tab"
	case tcell.KeyBacktab:
		return "shift+tab"
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return "backspace"
	case tcell.KeyEscape:
		return "esc"
	}
	if name := ctrlKeyName(ev.Key()); name != "" {
		return name
	}
	if ev.Modifiers()&tcell.ModCtrl != 0 {
		switch ev.Key() {
		case tcell.KeyHome:
			return "ctrl+home"
		case tcell.KeyEnd:
			return "ctrl+end"
		}
	}
	switch ev.Key() {
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyLeft:
		return "left"
	case tcell.KeyRight:
		return "right"
	case tcell.KeyPgUp:
		return "pgup"
	case tcell.KeyPgDn:
		return "pgdn"
	case tcell.KeyHome:
		return "home"
	case tcell.KeyEnd:
		return "end"
	case tcell.KeyDelete:
		return "del"
	}
	return ""
}

func ctrlKeyName(key tcell.Key) string {
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		return "ctrl+" + string(rune('a'+int(key-tcell.KeyCtrlA)))
	}
	return ""
}
