package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/kobzarvs/hecto/internal/logger"
)

const (
	AppName = "hecto"
	Version = "0.1.0"
)

// Action names understood by the keymap.
const (
	ActionQuit       = "quit"
	ActionSave       = "save"
	ActionMoveLeft   = "move_left"
	ActionMoveRight  = "move_right"
	ActionMoveUp     = "move_up"
	ActionMoveDown   = "move_down"
	ActionPageUp     = "page_up"
	ActionPageDown   = "page_down"
	ActionLineStart  = "line_start"
	ActionLineEnd    = "line_end"
	ActionBackspace  = "backspace"
	ActionDeleteChar = "delete_char"
	ActionNewline    = "newline"
	ActionInsertTab  = "insert_tab"
)

var knownActions = map[string]bool{
	ActionQuit: true, ActionSave: true,
	ActionMoveLeft: true, ActionMoveRight: true, ActionMoveUp: true, ActionMoveDown: true,
	ActionPageUp: true, ActionPageDown: true, ActionLineStart: true, ActionLineEnd: true,
	ActionBackspace: true, ActionDeleteChar: true, ActionNewline: true, ActionInsertTab: true,
}

// IsAction reports whether name is a keymap action.
func IsAction(name string) bool {
	return knownActions[name]
}

type EditorOptions struct {
	QuitTimes       int    `toml:"quit-times"`
	MessageTimeout  int    `toml:"message-timeout"`
	HelpMessage     string `toml:"help-message"`
	BannerFraction  int    `toml:"banner-fraction"`
	RestoreCursor   bool   `toml:"restore-cursor"`
	GitBranchSymbol string `toml:"git-branch-symbol"`
	Debug           bool   `toml:"debug"`
}

type Theme struct {
	Foreground           string `toml:"foreground"`
	Background           string `toml:"background"`
	StatuslineForeground string `toml:"statusline-foreground"`
	StatuslineBackground string `toml:"statusline-background"`
	FillerForeground     string `toml:"filler-foreground"`
}

type Config struct {
	Editor EditorOptions     `toml:"editor"`
	Theme  Theme             `toml:"theme"`
	Keymap map[string]string `toml:"keymap"`
}

func Default() Config {
	return Config{
		Editor: EditorOptions{
			QuitTimes:       3,
			MessageTimeout:  5,
			HelpMessage:     "HELP: Ctrl-S = save | Ctrl-D = quit",
			BannerFraction:  3,
			RestoreCursor:   true,
			GitBranchSymbol: "git:",
			Debug:           false,
		},
		Theme: Theme{
			Foreground:           "default",
			Background:           "default",
			StatuslineForeground: "",
			StatuslineBackground: "",
			FillerForeground:     "",
		},
		Keymap: map[string]string{
			"ctrl+d":    ActionQuit,
			"ctrl+s":    ActionSave,
			"left":      ActionMoveLeft,
			"right":     ActionMoveRight,
			"up":        ActionMoveUp,
			"down":      ActionMoveDown,
			"pgup":      ActionPageUp,
			"pgdn":      ActionPageDown,
			"home":      ActionLineStart,
			"end":       ActionLineEnd,
			"backspace": ActionBackspace,
			"del":       ActionDeleteChar,
			"enter":     ActionNewline,
			"tab":       ActionInsertTab,
		},
	}
}

func Load() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Default(), err
	}
	return LoadFile(path)
}

// LoadFile reads the config at path on top of the defaults. A missing file
// yields the defaults.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	var userCfg Config
	meta, err := toml.Decode(string(data), &userCfg)
	if err != nil {
		return cfg, err
	}

	if userCfg.Editor.QuitTimes > 0 {
		cfg.Editor.QuitTimes = userCfg.Editor.QuitTimes
	}
	if userCfg.Editor.MessageTimeout > 0 {
		cfg.Editor.MessageTimeout = userCfg.Editor.MessageTimeout
	}
	if userCfg.Editor.HelpMessage != "" {
		cfg.Editor.HelpMessage = userCfg.Editor.HelpMessage
	}
	if userCfg.Editor.BannerFraction > 0 {
		cfg.Editor.BannerFraction = userCfg.Editor.BannerFraction
	}
	if meta.IsDefined("editor", "restore-cursor") {
		cfg.Editor.RestoreCursor = userCfg.Editor.RestoreCursor
	}
	if userCfg.Editor.GitBranchSymbol != "" {
		cfg.Editor.GitBranchSymbol = userCfg.Editor.GitBranchSymbol
	}
	if userCfg.Editor.Debug {
		cfg.Editor.Debug = userCfg.Editor.Debug
	}
	mergeTheme(&cfg.Theme, userCfg.Theme)
	for k, v := range userCfg.Keymap {
		if !IsAction(v) {
			logger.Warn("unknown keymap action", "key", k, "action", v)
			continue
		}
		cfg.Keymap[k] = v
	}

	return cfg, nil
}

func mergeTheme(dst *Theme, src Theme) {
	if src.Foreground != "" {
		dst.Foreground = src.Foreground
	}
	if src.Background != "" {
		dst.Background = src.Background
	}
	if src.StatuslineForeground != "" {
		dst.StatuslineForeground = src.StatuslineForeground
	}
	if src.StatuslineBackground != "" {
		dst.StatuslineBackground = src.StatuslineBackground
	}
	if src.FillerForeground != "" {
		dst.FillerForeground = src.FillerForeground
	}
}

func ConfigDir() (string, error) {
	if v := os.Getenv("HECTO_CONFIG_HOME"); v != "" {
		return filepath.Join(v), nil
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, AppName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", AppName), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}
