// pkg/render/color.go
package render

import (
	"hash/fnv"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// Palette maps image name prefixes to the flat colours used when a sprite
// file is missing (ebiten placeholders) or cannot be drawn at all (terminal).
type Palette struct {
	ByPrefix map[string]color.RGBA
	Fallback color.RGBA
}

// DefaultPalette covers every image family of the game.
func DefaultPalette() *Palette {
	return &Palette{
		ByPrefix: map[string]color.RGBA{
			"general/Background": colornames.Darkolivegreen,
			"general/Sun":        colornames.Gold,
			"general/lawnmower":  colornames.Firebrick,
			"general/Shovel":     colornames.Silver,
			"general/READY":      colornames.Orange,
			"general/SET":        colornames.Orange,
			"general/PLANT":      colornames.Orangered,
			"zombie/":            colornames.Slategray,
			"seeds/":             colornames.Yellowgreen,
		},
		Fallback: colornames.Magenta,
	}
}

// Color returns the colour of the longest prefix matching name. Unknown names
// get a stable colour derived from the name.
func (p *Palette) Color(name string) color.RGBA {
	best, bestLen := p.Fallback, -1
	for prefix, c := range p.ByPrefix {
		if strings.HasPrefix(name, prefix) && len(prefix) > bestLen {
			best, bestLen = c, len(prefix)
		}
	}
	if bestLen >= 0 {
		return best
	}
	h := fnv.New32a()
	h.Write([]byte(name))
	sum := h.Sum32()
	return color.RGBA{R: uint8(sum >> 16), G: uint8(sum >> 8), B: uint8(sum), A: 255}
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
