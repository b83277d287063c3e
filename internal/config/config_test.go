package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultsValidate(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.validate()

	assert.Equal(t, DefaultTabSize, cfg.Editor.TabSize)
	assert.Equal(t, "dark", cfg.Editor.Palette)
	assert.Equal(t, DefaultMaxUndoSize, cfg.Editor.MaxUndoSize)
	assert.Equal(t, "info", cfg.Logger.LogLevel)
}

func TestValidateClampsTabSize(t *testing.T) {
	cfg := NewDefaultConfig()

	cfg.Editor.TabSize = 0
	cfg.validate()
	assert.Equal(t, MinTabSize, cfg.Editor.TabSize)

	cfg.Editor.TabSize = 1000
	cfg.validate()
	assert.Equal(t, MaxTabSize, cfg.Editor.TabSize)
}

func TestValidateResetsBadValues(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Editor.MaxUndoSize = -1
	cfg.Editor.Palette = ""
	cfg.Logger.LogLevel = ""
	cfg.validate()

	assert.Equal(t, DefaultMaxUndoSize, cfg.Editor.MaxUndoSize)
	assert.Equal(t, "dark", cfg.Editor.Palette)
	assert.Equal(t, "info", cfg.Logger.LogLevel)
}
