// Package assets names every image the simulation asks for and knows its
// natural size. Pixels are loaded by the shells; the core only needs sizes to
// keep all position, size and scale math on its side.
package assets

import (
	"fmt"
	"sort"

	"go-lane-defense/internal/component"
)

const (
	Background        = "general/Background"
	Sun               = "general/Sun"
	LawnmowerIdle     = "general/lawnmowerIdle"
	LawnmowerActive   = "general/lawnmowerActivated"
	Shovel            = "general/Shovel"
	CountdownReady    = "general/READY"
	CountdownSet      = "general/SET"
	CountdownPlant    = "general/PLANT"
	hazardFramePrefix = "zombie/frame_"
)

// HazardFrame returns the logical name of frame n of the zombie walk cycle.
func HazardFrame(n int) string {
	return fmt.Sprintf("%s%02d", hazardFramePrefix, n)
}

// Catalog maps logical image names to natural sizes.
type Catalog struct {
	sizes    map[string]component.Size
	fallback component.Size
}

// NewCatalog returns the catalog of the stock sprites. hazardFrames is the
// length of the zombie walk cycle; seedImages are the card images of the bank.
func NewCatalog(hazardFrames int, seedImages []string) *Catalog {
	c := &Catalog{
		sizes: map[string]component.Size{
			Background:      {Width: 770, Height: 600},
			Sun:             {Width: 130, Height: 130},
			LawnmowerIdle:   {Width: 100, Height: 70},
			LawnmowerActive: {Width: 100, Height: 70},
			Shovel:          {Width: 100, Height: 100},
			CountdownReady:  {Width: 350, Height: 120},
			CountdownSet:    {Width: 350, Height: 120},
			CountdownPlant:  {Width: 700, Height: 160},
		},
		fallback: component.Size{Width: 64, Height: 64},
	}
	for i := 0; i < hazardFrames; i++ {
		c.sizes[HazardFrame(i)] = component.Size{Width: 120, Height: 130}
	}
	for _, img := range seedImages {
		c.sizes[img] = component.Size{Width: 50, Height: 70}
	}
	return c
}

// Set overrides the natural size of name, e.g. after loading the real file.
func (c *Catalog) Set(name string, size component.Size) {
	c.sizes[name] = size
}

// Size returns the natural size of name. Unknown names get a fallback size
// and ok=false.
func (c *Catalog) Size(name string) (size component.Size, ok bool) {
	size, ok = c.sizes[name]
	if !ok {
		return c.fallback, false
	}
	return size, true
}

// Names lists every known image, sorted.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.sizes))
	for name := range c.sizes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
