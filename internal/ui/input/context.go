package input

import (
	"bufcycle/internal/buffers"
	"bufcycle/internal/config"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	Store *buffers.Store
	Cfg   *config.Config
}

// CurrentBufferName returns the display name of the current buffer
func (c *ModelContext) CurrentBufferName() string {
	if buf := c.Store.Current(); buf != nil {
		return buf.Name
	}
	return ""
}

// CurrentBufferModified reports whether the current buffer has unsaved changes
func (c *ModelContext) CurrentBufferModified() bool {
	if buf := c.Store.Current(); buf != nil {
		return buf.Modified
	}
	return false
}

// BufferCount returns the number of live buffers
func (c *ModelContext) BufferCount() int {
	return c.Store.Len()
}

// ConfirmCloseModified reports whether closing a modified buffer asks first
func (c *ModelContext) ConfirmCloseModified() bool {
	return c.Cfg.UISettings.ConfirmCloseModified
}
