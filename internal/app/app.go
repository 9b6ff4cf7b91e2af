package app

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/kobzarvs/hecto/internal/config"
	"github.com/kobzarvs/hecto/internal/logger"
	"github.com/kobzarvs/hecto/internal/session"
	"github.com/kobzarvs/hecto/internal/terminal"
)

// App is the top-level runtime for hecto.
type App struct {
	args []string
}

func New(args []string) *App {
	return &App{args: args}
}

func (a *App) Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := logger.Init(cfg.Editor.Debug); err != nil {
		fmt.Fprintln(os.Stderr, "hecto: logging disabled:", err)
	}
	defer logger.Close()
	logger.Info("starting", "version", config.Version, "args", a.args)

	sessions, err := session.NewManager()
	if err != nil {
		logger.Warn("session disabled", "error", err)
		sessions = nil
	}

	term, err := terminal.New(cfg.Theme)
	if err != nil {
		return err
	}
	defer term.Terminate()
	defer func() {
		if r := recover(); r != nil {
			term.Terminate()
			logger.Error("panic", "panic", r, "stack", string(debug.Stack()))
			panic(r)
		}
	}()

	ed := NewEditor(cfg, term, sessions)
	if len(a.args) > 0 {
		ed.Open(a.args[0])
	}
	ed.Run()

	term.Terminate()
	logger.Info("exiting")
	if ed.ShouldQuit() {
		fmt.Println("Goodbye.")
	}
	return nil
}
