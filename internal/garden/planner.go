package garden

import (
	"fmt"
	"log"
)

// Planner is the garden page controller: it owns the grid, the palette and
// the companion display for the lifetime of one page.
type Planner struct {
	grid    *Grid
	palette *Palette
	logger  *log.Logger

	companionPlant string
	good           []string
	bad            []string
}

// NewPlanner builds the grid and palette and shows companions for the first
// selectable plant so the display is never empty.
func NewPlanner(gridSize int, plants []Plant, logger *log.Logger) (*Planner, error) {
	if logger == nil {
		logger = log.Default()
	}
	p := &Planner{
		grid:    NewGrid(gridSize),
		palette: NewPalette(plants),
		logger:  logger,
	}

	choices := CompanionPlants()
	if len(choices) > 0 {
		if err := p.ChooseCompanionPlant(choices[0]); err != nil {
			return nil, fmt.Errorf("initial companion lookup: %w", err)
		}
	}
	return p, nil
}

// Grid returns the garden grid
func (p *Planner) Grid() *Grid {
	return p.grid
}

// Palette returns the plant palette
func (p *Planner) Palette() *Palette {
	return p.palette
}

// SelectPlant handles a click on a palette entry
func (p *Planner) SelectPlant(name string) error {
	prev, hadPrev, err := p.palette.Select(name)
	if err != nil {
		return err
	}
	if hadPrev {
		p.logger.Printf("Palette selection changed: %s -> %s", prev.Name, name)
	} else {
		p.logger.Printf("Palette selection: %s", name)
	}
	return nil
}

// ClickCell handles a click on grid cell i; it reports whether the cell was painted
func (p *Planner) ClickCell(i int) (bool, error) {
	return p.grid.Paint(i, p.palette)
}

// ChooseCompanionPlant replaces the displayed companion lists with those of name.
// On error the previous lists stay displayed.
func (p *Planner) ChooseCompanionPlant(name string) error {
	c, err := LookupCompanions(name)
	if err != nil {
		return err
	}
	p.companionPlant = name
	p.good = c.Good
	p.bad = c.Bad
	return nil
}

// CompanionPlant returns the plant whose companions are displayed
func (p *Planner) CompanionPlant() string {
	return p.companionPlant
}

// GoodCompanions returns the displayed good companions
func (p *Planner) GoodCompanions() []string {
	return append([]string(nil), p.good...)
}

// BadCompanions returns the displayed bad companions
func (p *Planner) BadCompanions() []string {
	return append([]string(nil), p.bad...)
}
