package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/kobzarvs/hecto/internal/logger"
)

// FileState stores where the cursor was when a file was last closed.
type FileState struct {
	Line     int `json:"line"`
	Grapheme int `json:"grapheme"`
	ScrollY  int `json:"scroll_y"`
	ScrollX  int `json:"scroll_x"`
}

// Session stores the complete editor session state
type Session struct {
	Files      map[string]FileState `json:"files"`
	ActiveFile string               `json:"active_file,omitempty"`
	LastSaved  time.Time            `json:"last_saved"`
}

// Manager handles session persistence. It is only used from the editor's
// event loop and is not safe for concurrent use.
type Manager struct {
	session Session
	path    string
	dirty   bool
}

// NewManager loads the session stored under the XDG state directory.
func NewManager() (*Manager, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return Open(path), nil
}

// Open loads the session file at path. A missing or corrupt file starts a
// fresh session.
func Open(path string) *Manager {
	m := &Manager{
		session: Session{
			Files: make(map[string]FileState),
		},
		path: path,
	}
	m.load()
	return m
}

// Path returns $XDG_STATE_HOME/hecto/session.json.
func Path() (string, error) {
	stateDir := os.Getenv("XDG_STATE_HOME")
	if stateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		stateDir = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateDir, "hecto", "session.json"), nil
}

func (m *Manager) load() {
	data, err := os.ReadFile(m.path)
	if err != nil {
		return
	}
	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		logger.Warn("ignoring corrupt session file", "path", m.path, "error", err)
		return
	}
	if session.Files == nil {
		session.Files = make(map[string]FileState)
	}
	m.session = session
}

// Save persists the session to disk if anything changed.
func (m *Manager) Save() error {
	if !m.dirty {
		return nil
	}

	m.session.LastSaved = time.Now()
	data, err := json.MarshalIndent(m.session, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(m.path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(m.path, data, 0o644); err != nil {
		return err
	}

	m.dirty = false
	return nil
}

// GetFileState returns the saved state for a file
func (m *Manager) GetFileState(absPath string) (FileState, bool) {
	state, ok := m.session.Files[absPath]
	return state, ok
}

// SetFileState updates the state for a file
func (m *Manager) SetFileState(absPath string, state FileState) {
	m.session.Files[absPath] = state
	m.session.ActiveFile = absPath
	m.dirty = true
}

// ActiveFile returns the file that was open last.
func (m *Manager) ActiveFile() string {
	return m.session.ActiveFile
}
