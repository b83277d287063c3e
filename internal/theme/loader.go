package theme

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/dlxed/dlxed/internal/editor"
	"github.com/dlxed/dlxed/internal/logger"
)

// paletteFile is the TOML shape of a user palette. Missing entries keep
// the base palette's color.
type paletteFile struct {
	Base   string            `toml:"base"` // "dark", "light" or "retro-blue"
	Colors map[string]string `toml:"colors"`
}

// tagNames maps TOML keys onto color tags.
var tagNames = map[string]editor.ColorTag{
	"default":                    editor.TagDefault,
	"opcode":                     editor.TagOpCode,
	"register":                   editor.TagRegister,
	"integer_literal":            editor.TagIntegerLiteral,
	"comment":                    editor.TagComment,
	"background":                 editor.TagBackground,
	"cursor":                     editor.TagCursor,
	"selection":                  editor.TagSelection,
	"error_marker":               editor.TagErrorMarker,
	"breakpoint":                 editor.TagBreakpoint,
	"line_number":                editor.TagLineNumber,
	"current_line_fill":          editor.TagCurrentLineFill,
	"current_line_fill_inactive": editor.TagCurrentLineFillInactive,
	"current_line_edge":          editor.TagCurrentLineEdge,
}

// ByName resolves a built-in palette name.
func ByName(name string) (Palette, bool) {
	switch name {
	case "dark", "":
		return DarkPalette(), true
	case "light":
		return LightPalette(), true
	case "retro-blue":
		return RetroBluePalette(), true
	default:
		return Palette{}, false
	}
}

// Load reads a palette TOML file, overlaying its colors on the base
// palette it names.
func Load(path string) (Palette, error) {
	var file paletteFile
	data, err := os.ReadFile(path)
	if err != nil {
		return Palette{}, fmt.Errorf("reading palette file %q: %w", path, err)
	}
	if err := toml.Unmarshal(data, &file); err != nil {
		return Palette{}, fmt.Errorf("parsing palette file %q: %w", path, err)
	}

	palette, ok := ByName(file.Base)
	if !ok {
		return Palette{}, fmt.Errorf("palette file %q: unknown base %q", path, file.Base)
	}

	for key, value := range file.Colors {
		tag, ok := tagNames[key]
		if !ok {
			logger.Warnf("palette %q: unknown color key %q", path, key)
			continue
		}
		color, err := FromHex(value)
		if err != nil {
			return Palette{}, fmt.Errorf("palette file %q: %w", path, err)
		}
		palette[tag] = color
	}

	return palette, nil
}

// Resolve returns a palette for a config value: a built-in name or a
// TOML file path.
func Resolve(nameOrPath string) (Palette, error) {
	if palette, ok := ByName(nameOrPath); ok {
		return palette, nil
	}
	return Load(nameOrPath)
}
