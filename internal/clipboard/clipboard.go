// Package clipboard provides the copy/paste register. When the system
// clipboard is enabled it goes through the OS clipboard; otherwise (or
// when the OS clipboard is unavailable) an internal register is used.
package clipboard

import (
	"sync"

	"github.com/atotto/clipboard"

	"github.com/vishal2376/rio-editor/internal/logger"
)

// Register stores copied text.
type Register struct {
	mu       sync.Mutex
	useOS    bool
	internal string
}

// NewRegister creates a register. useSystem selects the OS clipboard.
func NewRegister(useSystem bool) *Register {
	if useSystem && clipboard.Unsupported {
		logger.Infof("clipboard: system clipboard unsupported, using internal register")
		useSystem = false
	}
	return &Register{useOS: useSystem}
}

// Write stores text in the register.
func (r *Register) Write(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.useOS {
		if err := clipboard.WriteAll(text); err == nil {
			return
		} else {
			logger.Warnf("clipboard: system write failed, falling back to internal: %v", err)
		}
	}
	r.internal = text
}

// Read returns the register's current contents.
func (r *Register) Read() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.useOS {
		if text, err := clipboard.ReadAll(); err == nil {
			return text
		} else {
			logger.Warnf("clipboard: system read failed, falling back to internal: %v", err)
		}
	}
	return r.internal
}
