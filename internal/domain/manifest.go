package domain

import "strings"

type ItemID string

type PlantKind string

const PlantDirt PlantKind = "dirt"

// IsEgg reports whether the item hatches instead of being used.
func (id ItemID) IsEgg() bool {
	return strings.Contains(string(id), "egg")
}

type ItemInfo struct {
	Name   string
	Usable bool
}

type Manifest struct {
	Items        map[ItemID]ItemInfo
	PlantTitles  map[PlantKind]string
	PlantRecipes map[PlantKind][]Recipe
}

// RecipesFor returns the recipes offered on a plot holding kind, in manifest
// order. The position in the returned slice is the recipe index the remote
// craft operation expects.
func (m Manifest) RecipesFor(kind PlantKind) []Recipe {
	return m.PlantRecipes[kind]
}

func (m Manifest) Item(id ItemID) (ItemInfo, bool) {
	info, ok := m.Items[id]
	return info, ok
}

func (m Manifest) PlantTitle(kind PlantKind) (string, bool) {
	title, ok := m.PlantTitles[kind]
	return title, ok
}
