package ui

import (
	"time"

	"github.com/kobzarvs/hecto/internal/view"
)

// MessageBar shows one transient message. Expiry is noticed on the next
// render, which then clears the row once.
type MessageBar struct {
	message            string
	setAt              time.Time
	timeout            time.Duration
	clearedAfterExpiry bool
	needsRedraw        bool
	size               view.Size
	now                func() time.Time
}

func NewMessageBar(timeout time.Duration) *MessageBar {
	return &MessageBar{timeout: timeout, now: time.Now, clearedAfterExpiry: true}
}

func (m *MessageBar) Update(message string) {
	m.message = message
	m.setAt = m.now()
	m.clearedAfterExpiry = false
	m.needsRedraw = true
}

// Message returns the text currently on display, or "" once it expired.
func (m *MessageBar) Message() string {
	if m.expired() {
		return ""
	}
	return m.message
}

func (m *MessageBar) expired() bool {
	return m.now().Sub(m.setAt) > m.timeout
}

func (m *MessageBar) NeedsRedraw() bool {
	if m.expired() {
		return !m.clearedAfterExpiry
	}
	return m.needsRedraw
}

func (m *MessageBar) SetNeedsRedraw(v bool) { m.needsRedraw = v }

func (m *MessageBar) SetSize(size view.Size) {
	m.size = size
	m.needsRedraw = true
	if m.expired() {
		m.clearedAfterExpiry = false
	}
}

func (m *MessageBar) Draw(p Printer, originRow int) error {
	if m.expired() {
		m.clearedAfterExpiry = true
	}
	return p.PrintRow(originRow, m.Message())
}
