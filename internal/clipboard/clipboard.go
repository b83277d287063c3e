// Package clipboard provides the editor's clipboard: the system
// clipboard when available, with an in-process register as fallback.
package clipboard

import (
	"github.com/atotto/clipboard"
	"github.com/dlxed/dlxed/internal/logger"
)

// Manager implements the editor's Clipboard contract.
type Manager struct {
	register  string
	useSystem bool
}

// New creates a clipboard manager. With useSystem false only the
// internal register is used.
func New(useSystem bool) *Manager {
	if useSystem && clipboard.Unsupported {
		logger.Warnf("clipboard: system clipboard unsupported, falling back to internal register")
		useSystem = false
	}
	return &Manager{useSystem: useSystem}
}

// Set stores text in the register and, when enabled, the system clipboard.
func (m *Manager) Set(text string) {
	m.register = text
	if m.useSystem {
		if err := clipboard.WriteAll(text); err != nil {
			logger.Warnf("clipboard: write failed: %v", err)
		}
	}
}

// Get returns the clipboard contents, false when empty.
func (m *Manager) Get() (string, bool) {
	if m.useSystem {
		text, err := clipboard.ReadAll()
		if err == nil {
			return text, text != ""
		}
		logger.Debugf("clipboard: read failed, using register: %v", err)
	}
	return m.register, m.register != ""
}
