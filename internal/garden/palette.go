package garden

import (
	"errors"
	"fmt"
)

// ErrUnknownPlant is returned when a plant name is not in the palette or the companion table.
var ErrUnknownPlant = errors.New("unknown plant")

// Plant represents a palette entry
type Plant struct {
	Name  string `json:"name"`
	Color string `json:"color"` // CSS color value
}

// DefaultPlants is the fixed palette shown next to the garden grid
var DefaultPlants = []Plant{
	{Name: "Tomato", Color: "#ff6347"},
	{Name: "Lettuce", Color: "#90ee90"},
	{Name: "Carrot", Color: "#ffa500"},
	{Name: "Pepper", Color: "#ff4500"},
	{Name: "Cucumber", Color: "#32cd32"},
}

// Palette holds the plant entries and the single selected entry.
// selected is -1 until the first selection.
type Palette struct {
	plants   []Plant
	selected int
}

// NewPalette creates a palette from a fixed list of plants
func NewPalette(plants []Plant) *Palette {
	p := make([]Plant, len(plants))
	copy(p, plants)
	return &Palette{plants: p, selected: -1}
}

// Plants returns a copy of the palette entries in display order
func (p *Palette) Plants() []Plant {
	out := make([]Plant, len(p.plants))
	copy(out, p.plants)
	return out
}

// Select makes the named entry the selected one, deselecting any previous selection.
// It returns the previously selected plant, if any.
func (p *Palette) Select(name string) (prev Plant, hadPrev bool, err error) {
	idx := p.indexOf(name)
	if idx < 0 {
		return Plant{}, false, fmt.Errorf("select %q: %w", name, ErrUnknownPlant)
	}
	if p.selected >= 0 {
		prev, hadPrev = p.plants[p.selected], true
	}
	p.selected = idx
	return prev, hadPrev, nil
}

// Selected returns the currently selected plant
func (p *Palette) Selected() (Plant, bool) {
	if p.selected < 0 {
		return Plant{}, false
	}
	return p.plants[p.selected], true
}

// IsSelected reports whether the named entry is the selected one
func (p *Palette) IsSelected(name string) bool {
	return p.selected >= 0 && p.plants[p.selected].Name == name
}

func (p *Palette) indexOf(name string) int {
	for i, plant := range p.plants {
		if plant.Name == name {
			return i
		}
	}
	return -1
}
