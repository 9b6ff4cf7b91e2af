package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/kobzarvs/hecto/internal/command"
	"github.com/kobzarvs/hecto/internal/config"
	"github.com/kobzarvs/hecto/internal/document"
	"github.com/kobzarvs/hecto/internal/gitinfo"
	"github.com/kobzarvs/hecto/internal/logger"
	"github.com/kobzarvs/hecto/internal/session"
	"github.com/kobzarvs/hecto/internal/terminal"
	"github.com/kobzarvs/hecto/internal/ui"
	"github.com/kobzarvs/hecto/internal/view"
)

// Editor runs the event loop: one event is decoded, applied and rendered
// before the next one is read.
type Editor struct {
	cfg        config.Config
	term       *terminal.Terminal
	view       *view.View
	statusBar  *ui.StatusBar
	messageBar *ui.MessageBar
	decoder    *command.Decoder
	sessions   *session.Manager
	branch     string
	size       view.Size
	quitTimes  int
	shouldQuit bool
}

// NewEditor wires the components to term. sessions may be nil.
func NewEditor(cfg config.Config, term *terminal.Terminal, sessions *session.Manager) *Editor {
	e := &Editor{
		cfg:        cfg,
		term:       term,
		view:       view.New(cfg.Editor.BannerFraction),
		statusBar:  ui.NewStatusBar(cfg.Editor.GitBranchSymbol),
		messageBar: ui.NewMessageBar(time.Duration(cfg.Editor.MessageTimeout) * time.Second),
		decoder:    command.NewDecoder(cfg.Keymap),
		sessions:   sessions,
	}
	e.resize(term.Size())
	e.messageBar.Update(cfg.Editor.HelpMessage)
	if cwd, err := os.Getwd(); err == nil {
		e.branch = gitinfo.Branch(cwd)
	}
	return e
}

// Open loads path into the view. A file that cannot be read leaves an empty
// document that will be saved to path.
func (e *Editor) Open(path string) {
	doc, err := document.Load(path)
	if err != nil {
		logger.Warn("could not open file", "path", path, "error", err)
		doc = document.New()
		doc.SetFileInfo(document.FileInfo{Path: path})
		e.messageBar.Update("ERR: Could not open file: " + path)
	}
	e.view.SetDocument(doc)
	e.branch = gitinfo.Branch(path)
	e.restoreSession(path)
}

func (e *Editor) restoreSession(path string) {
	if e.sessions == nil || !e.cfg.Editor.RestoreCursor {
		return
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return
	}
	state, ok := e.sessions.GetFileState(abs)
	if !ok {
		return
	}
	e.view.Restore(
		document.Location{LineIndex: state.Line, GraphemeIndex: state.Grapheme},
		view.Position{Row: state.ScrollY, Col: state.ScrollX},
	)
	logger.Debug("session restored", "path", abs, "line", state.Line, "grapheme", state.Grapheme)
}

// Run processes events until a quit command or until the screen goes away.
func (e *Editor) Run() {
	for {
		e.Refresh()
		if e.shouldQuit {
			break
		}
		ev := e.term.PollEvent()
		if ev == nil {
			break
		}
		e.HandleEvent(ev)
	}
	e.saveSession()
}

func (e *Editor) ShouldQuit() bool {
	return e.shouldQuit
}

// HandleEvent applies one terminal event.
func (e *Editor) HandleEvent(ev tcell.Event) {
	cmd, ok := e.decoder.FromEvent(ev)
	if !ok {
		return
	}
	switch c := cmd.(type) {
	case command.Quit:
		e.handleQuit()
		return
	case command.Resize:
		e.term.Sync()
		e.resize(view.Size{Height: c.Height, Width: c.Width})
		return
	}
	e.resetQuitTimes()
	switch cmd.(type) {
	case command.Save:
		e.handleSave()
	default:
		e.view.Handle(cmd)
	}
}

func (e *Editor) handleQuit() {
	modified := e.view.Document().IsDirty()
	if !modified || e.quitTimes+1 >= e.cfg.Editor.QuitTimes {
		e.shouldQuit = true
		return
	}
	e.quitTimes++
	e.messageBar.Update(fmt.Sprintf(
		"WARNING! File has unsaved changes. Press Ctrl-D %d more times to quit.",
		e.cfg.Editor.QuitTimes-e.quitTimes,
	))
}

func (e *Editor) resetQuitTimes() {
	if e.quitTimes > 0 {
		e.quitTimes = 0
		e.messageBar.Update("")
	}
}

func (e *Editor) handleSave() {
	if err := e.view.Save(); err != nil {
		e.messageBar.Update("Error writing file!")
		return
	}
	e.messageBar.Update("File saved successfully.")
}

// resize gives the view everything but the two bottom rows.
func (e *Editor) resize(size view.Size) {
	e.size = size
	logger.Debug("terminal resized", "rows", size.Height, "cols", size.Width)
	e.view.Resize(view.Size{Height: max(size.Height-2, 0), Width: size.Width})
	bar := view.Size{Height: 1, Width: size.Width}
	e.messageBar.SetSize(bar)
	e.statusBar.SetSize(bar)
}

// Refresh redraws whatever changed and places the caret.
func (e *Editor) Refresh() {
	if e.size.Height == 0 || e.size.Width == 0 {
		return
	}
	status := e.view.Status()
	e.statusBar.Update(status, e.branch)
	e.term.SetTitle(fmt.Sprintf("%s - %s", status.FileName, config.AppName))

	bottom := e.size.Height - 1
	ui.Render(e.messageBar, e.term, bottom)
	if e.size.Height > 1 {
		ui.Render(e.statusBar, e.term, bottom-1)
	}
	if e.size.Height > 2 {
		for _, row := range e.view.Draw(0) {
			if err := e.term.PrintRow(row.Y, row.Text); err != nil {
				logger.Error("print row failed", "row", row.Y, "error", err)
			}
		}
		e.term.MoveCaretTo(e.view.CaretPosition())
	} else {
		e.term.HideCaret()
	}
	e.term.Execute()
}

func (e *Editor) saveSession() {
	doc := e.view.Document()
	if e.sessions == nil || !doc.FileInfo().HasPath() {
		return
	}
	abs, err := filepath.Abs(doc.FileInfo().Path)
	if err != nil {
		return
	}
	loc := e.view.Location()
	offset := e.view.ScrollOffset()
	e.sessions.SetFileState(abs, session.FileState{
		Line:     loc.LineIndex,
		Grapheme: loc.GraphemeIndex,
		ScrollY:  offset.Row,
		ScrollX:  offset.Col,
	})
	if err := e.sessions.Save(); err != nil {
		logger.Warn("session save failed", "error", err)
	}
}
