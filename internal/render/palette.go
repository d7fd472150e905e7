package render

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette holds the fixed scene colours
type Palette struct {
	Background color.Color
	Paddle     color.Color
	Ball       color.Color
	Line       color.Color
}

var DefaultPalette = Palette{
	Background: mustHex("#000000"),
	Paddle:     mustHex("#ffffff"),
	Ball:       mustHex("#00FFFF"),
	Line:       mustHex("#ffffff"),
}

func mustHex(s string) color.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// RGB255 converts any colour to 8-bit channels.
func RGB255(c color.Color) (r, g, b uint8) {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		// Fully transparent
		return 0, 0, 0
	}
	return cf.Clamped().RGB255()
}
