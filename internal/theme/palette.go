// Package theme defines color palettes for the editor's render pass.
package theme

import (
	"github.com/dlxed/dlxed/internal/editor"
)

// Palette maps every color tag to a 32-bit color.
type Palette [editor.ColorTagCount]Color

// Get returns the color for a tag, defaulting out-of-range tags.
func (p *Palette) Get(tag editor.ColorTag) Color {
	if int(tag) >= len(p) {
		return p[editor.TagDefault]
	}
	return p[tag]
}

// DarkPalette is the default dark color scheme.
func DarkPalette() Palette {
	return Palette{
		editor.TagDefault:                 0xff7f7f7f,
		editor.TagOpCode:                  0xffd69c56,
		editor.TagRegister:                0xff00ff00,
		editor.TagIntegerLiteral:          0xff7070e0,
		editor.TagComment:                 0xff206020,
		editor.TagBackground:              0xff101010,
		editor.TagCursor:                  0xffe0e0e0,
		editor.TagSelection:               0x80a06020,
		editor.TagErrorMarker:             0x800020ff,
		editor.TagBreakpoint:              0x40f08000,
		editor.TagLineNumber:              0xff707000,
		editor.TagCurrentLineFill:         0x40000000,
		editor.TagCurrentLineFillInactive: 0x40808080,
		editor.TagCurrentLineEdge:         0x40a0a0a0,
	}
}

// LightPalette is a light color scheme.
func LightPalette() Palette {
	return Palette{
		editor.TagDefault:                 0xff7f7f7f,
		editor.TagOpCode:                  0xffff0c06,
		editor.TagRegister:                0xff008000,
		editor.TagIntegerLiteral:          0xff2020a0,
		editor.TagComment:                 0xff205020,
		editor.TagBackground:              0xffffffff,
		editor.TagCursor:                  0xff000000,
		editor.TagSelection:               0x80600000,
		editor.TagErrorMarker:             0xa00010ff,
		editor.TagBreakpoint:              0x80f08000,
		editor.TagLineNumber:              0xff505000,
		editor.TagCurrentLineFill:         0x40000000,
		editor.TagCurrentLineFillInactive: 0x40808080,
		editor.TagCurrentLineEdge:         0x40000000,
	}
}

// RetroBluePalette is a blue-background scheme in the old DOS spirit.
func RetroBluePalette() Palette {
	return Palette{
		editor.TagDefault:                 0xff00ffff,
		editor.TagOpCode:                  0xffffff00,
		editor.TagRegister:                0xff00ff00,
		editor.TagIntegerLiteral:          0xff808000,
		editor.TagComment:                 0xff808080,
		editor.TagBackground:              0xff800000,
		editor.TagCursor:                  0xff0080ff,
		editor.TagSelection:               0x80ffff00,
		editor.TagErrorMarker:             0xa00000ff,
		editor.TagBreakpoint:              0x80ff8000,
		editor.TagLineNumber:              0xff808000,
		editor.TagCurrentLineFill:         0x40000000,
		editor.TagCurrentLineFillInactive: 0x40808080,
		editor.TagCurrentLineEdge:         0x40000000,
	}
}
