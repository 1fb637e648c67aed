package gameapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/bnema/hksl/internal/domain"
)

type manifestResponse struct {
	Items        map[domain.ItemID]itemResponse        `json:"items"`
	PlantTitles  map[domain.PlantKind]string           `json:"plant_titles"`
	PlantRecipes map[domain.PlantKind][]recipeResponse `json:"plant_recipes"`
}

type itemResponse struct {
	Name   string `json:"name"`
	Usable bool   `json:"usable"`
}

type recipeResponse struct {
	Needs         orderedCounts    `json:"needs"`
	MakeItem      domain.ItemID    `json:"make_item"`
	ChangePlantTo domain.PlantKind `json:"change_plant_to"`
}

type steadResponse struct {
	Plants    []plantResponse `json:"plants"`
	Inventory orderedCounts   `json:"inv"`
}

type plantResponse struct {
	Kind     domain.PlantKind `json:"kind"`
	TTYield  float64          `json:"tt_yield"`
	Statuses []statusResponse `json:"statuses"`
}

type statusResponse struct {
	Kind domain.ItemID `json:"kind"`
}

type countEntry struct {
	Item  domain.ItemID
	Count int
}

// orderedCounts decodes a JSON object of item id to count while keeping the
// key order of the source document.
type orderedCounts []countEntry

func (o *orderedCounts) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*o = nil
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("item counts: expected object, got %v", tok)
	}

	entries := orderedCounts{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("item counts: expected string key, got %v", keyTok)
		}

		var value json.Number
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("item counts: %s: %w", key, err)
		}
		count, err := value.Float64()
		if err != nil || count < 0 || count != math.Trunc(count) {
			return fmt.Errorf("item counts: %s: invalid count %q", key, value)
		}

		entries = append(entries, countEntry{Item: domain.ItemID(key), Count: int(count)})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*o = entries
	return nil
}

func (m manifestResponse) toDomain() (domain.Manifest, error) {
	manifest := domain.Manifest{
		Items:        make(map[domain.ItemID]domain.ItemInfo, len(m.Items)),
		PlantTitles:  make(map[domain.PlantKind]string, len(m.PlantTitles)),
		PlantRecipes: make(map[domain.PlantKind][]domain.Recipe, len(m.PlantRecipes)),
	}

	for id, item := range m.Items {
		manifest.Items[id] = domain.ItemInfo{Name: item.Name, Usable: item.Usable}
	}
	for kind, title := range m.PlantTitles {
		manifest.PlantTitles[kind] = title
	}

	for kind, recipes := range m.PlantRecipes {
		decoded := make([]domain.Recipe, 0, len(recipes))
		for index, raw := range recipes {
			needs := make([]domain.Need, 0, len(raw.Needs))
			for _, entry := range raw.Needs {
				needs = append(needs, domain.Need{Item: entry.Item, Count: entry.Count})
			}

			recipe, err := domain.NewRecipe(needs, raw.MakeItem, raw.ChangePlantTo)
			if err != nil {
				return domain.Manifest{}, fmt.Errorf("plant %s recipe %d: %w", kind, index, err)
			}
			decoded = append(decoded, recipe)
		}
		manifest.PlantRecipes[kind] = decoded
	}

	return manifest, nil
}

func (s steadResponse) toDomain() domain.Stead {
	stead := domain.Stead{
		Plots:     make([]domain.Plot, 0, len(s.Plants)),
		Inventory: make(domain.Inventory, 0, len(s.Inventory)),
	}

	for _, plant := range s.Plants {
		plot := domain.Plot{
			Kind:        plant.Kind,
			TimeToYield: time.Duration(plant.TTYield * float64(time.Millisecond)),
		}
		for _, status := range plant.Statuses {
			plot.Statuses = append(plot.Statuses, status.Kind)
		}
		stead.Plots = append(stead.Plots, plot)
	}

	for _, entry := range s.Inventory {
		stead.Inventory = append(stead.Inventory, domain.Stack{Item: entry.Item, Count: entry.Count})
	}

	return stead
}
