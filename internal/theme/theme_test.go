package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dlxed/dlxed/internal/editor"
)

func TestColorChannels(t *testing.T) {
	c := NewColor(0x11, 0x22, 0x33, 0x44)
	assert.Equal(t, uint8(0x11), c.R())
	assert.Equal(t, uint8(0x22), c.G())
	assert.Equal(t, uint8(0x33), c.B())
	assert.Equal(t, uint8(0x44), c.A())
}

func TestFromHex(t *testing.T) {
	c, err := FromHex("#ff8000")
	require.NoError(t, err)
	assert.Equal(t, uint8(0xff), c.R())
	assert.Equal(t, uint8(0x80), c.G())
	assert.Equal(t, uint8(0x00), c.B())
	assert.Equal(t, uint8(0xff), c.A())

	c, err = FromHex("#10203080")
	require.NoError(t, err)
	assert.Equal(t, uint8(0x80), c.A())
	assert.Equal(t, uint8(0x10), c.R())

	_, err = FromHex("nonsense")
	assert.Error(t, err)
}

func TestWithAlpha(t *testing.T) {
	c := NewColor(1, 2, 3, 0xff)
	assert.Equal(t, uint8(0x40), c.WithAlpha(0x40).A())
	assert.Equal(t, c.R(), c.WithAlpha(0x40).R())
}

func TestBlendEndpoints(t *testing.T) {
	a := NewColor(0, 0, 0, 0xff)
	b := NewColor(0xff, 0xff, 0xff, 0)

	assert.Equal(t, a, a.Blend(b, 0))
	blended := a.Blend(b, 1)
	assert.Equal(t, uint8(0xff), blended.R())
	assert.Equal(t, uint8(0), blended.A())
}

func TestBuiltinPalettesComplete(t *testing.T) {
	for name, palette := range map[string]Palette{
		"dark":       DarkPalette(),
		"light":      LightPalette(),
		"retro-blue": RetroBluePalette(),
	} {
		for tag := 0; tag < editor.ColorTagCount; tag++ {
			assert.NotZero(t, palette.Get(editor.ColorTag(tag)), "%s tag %d", name, tag)
		}
	}
}

func TestByName(t *testing.T) {
	_, ok := ByName("dark")
	assert.True(t, ok)
	_, ok = ByName("")
	assert.True(t, ok)
	_, ok = ByName("missing")
	assert.False(t, ok)
}

func TestLoadPaletteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palette.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
base = "dark"

[colors]
opcode = "#112233"
selection = "#44556680"
`), 0o644))

	palette, err := Load(path)
	require.NoError(t, err)

	op := palette.Get(editor.TagOpCode)
	assert.Equal(t, uint8(0x11), op.R())
	assert.Equal(t, uint8(0x22), op.G())
	assert.Equal(t, uint8(0x33), op.B())

	sel := palette.Get(editor.TagSelection)
	assert.Equal(t, uint8(0x80), sel.A())

	// Untouched entries keep the base palette value.
	dark := DarkPalette()
	assert.Equal(t, dark.Get(editor.TagComment), palette.Get(editor.TagComment))
}

func TestLoadPaletteRejectsBadColor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palette.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
base = "dark"

[colors]
opcode = "not-a-color"
`), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestResolve(t *testing.T) {
	_, err := Resolve("light")
	assert.NoError(t, err)
	_, err = Resolve("/does/not/exist.toml")
	assert.Error(t, err)
}
