package garden

import "fmt"

// Companions lists plants that grow well or poorly next to a crop
type Companions struct {
	Good []string `json:"good"`
	Bad  []string `json:"bad"`
}

// companionTable is the static companion-planting reference.
// companionOrder fixes the enumeration order used by the plant selector.
var (
	companionOrder = []string{"Tomato", "Lettuce", "Carrot", "Pepper", "Cucumber"}

	companionTable = map[string]Companions{
		"Tomato": {
			Good: []string{"Basil", "Carrots", "Onions"},
			Bad:  []string{"Potatoes", "Cabbage", "Fennel"},
		},
		"Lettuce": {
			Good: []string{"Carrots", "Radishes", "Cucumbers"},
			Bad:  []string{"Broccoli", "Celery"},
		},
		"Carrot": {
			Good: []string{"Tomatoes", "Onions", "Peas"},
			Bad:  []string{"Dill", "Parsnips"},
		},
		"Pepper": {
			Good: []string{"Onions", "Carrots", "Spinach"},
			Bad:  []string{"Beans", "Kale"},
		},
		"Cucumber": {
			Good: []string{"Beans", "Peas", "Radishes"},
			Bad:  []string{"Potatoes", "Aromatic Herbs"},
		},
	}
)

// CompanionPlants returns the plant names that can be looked up, in selector order
func CompanionPlants() []string {
	out := make([]string, len(companionOrder))
	copy(out, companionOrder)
	return out
}

// LookupCompanions returns copies of the good and bad companion lists for a plant
func LookupCompanions(name string) (Companions, error) {
	c, ok := companionTable[name]
	if !ok {
		return Companions{}, fmt.Errorf("companions for %q: %w", name, ErrUnknownPlant)
	}
	return Companions{
		Good: append([]string(nil), c.Good...),
		Bad:  append([]string(nil), c.Bad...),
	}, nil
}
