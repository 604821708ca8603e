package core

import (
	"fmt"
	"image/color"
)

// Color is a 24-bit RGB colour for a screen cell.
// The zero value means "terminal default" and is never emitted as an escape code.
type Color uint32

const colorSet Color = 1 << 24

// Predefined colors for text overlays.
const (
	ColorDefault Color = 0
	ColorBlack         = colorSet | 0x000000
	ColorWhite         = colorSet | 0xffffff
	ColorYellow        = colorSet | 0xffd23f
	ColorOrange        = colorSet | 0xf28c28
	ColorRed           = colorSet | 0xd83a3a
	ColorGray          = colorSet | 0x8a8a8a
)

// RGB builds a Color from its channels.
func RGB(r, g, b uint8) Color {
	return colorSet | Color(r)<<16 | Color(g)<<8 | Color(b)
}

// FromColor converts any image color, ignoring alpha.
func FromColor(c color.Color) Color {
	r, g, b, _ := c.RGBA()
	return RGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// IsDefault reports whether the colour is the terminal default.
func (c Color) IsDefault() bool {
	return c&colorSet == 0
}

// Channels returns the red, green and blue components.
func (c Color) Channels() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Hex returns the colour as "#rrggbb", or "" for the default colour.
func (c Color) Hex() string {
	if c.IsDefault() {
		return ""
	}
	r, g, b := c.Channels()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
