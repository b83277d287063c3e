package clipboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterFallback(t *testing.T) {
	m := New(false)

	_, ok := m.Get()
	assert.False(t, ok)

	m.Set("yanked text")
	got, ok := m.Get()
	assert.True(t, ok)
	assert.Equal(t, "yanked text", got)

	m.Set("")
	_, ok = m.Get()
	assert.False(t, ok)
}

func TestOverwrite(t *testing.T) {
	m := New(false)
	m.Set("first")
	m.Set("second")
	got, _ := m.Get()
	assert.Equal(t, "second", got)
}
