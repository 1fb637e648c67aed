package domain

import "fmt"

type Need struct {
	Item  ItemID
	Count int
}

// RecipeOutput is either MakeItem or ChangePlant.
type RecipeOutput interface {
	recipeOutput()
}

type MakeItem struct {
	Item ItemID
}

type ChangePlant struct {
	Plant PlantKind
}

func (MakeItem) recipeOutput()    {}
func (ChangePlant) recipeOutput() {}

type Recipe struct {
	Needs  []Need
	Output RecipeOutput
}

// NewRecipe builds a recipe from the two optional manifest fields, exactly one
// of which must be set.
func NewRecipe(needs []Need, makeItem ItemID, changePlantTo PlantKind) (Recipe, error) {
	switch {
	case makeItem != "" && changePlantTo != "":
		return Recipe{}, fmt.Errorf("%w: both make_item %q and change_plant_to %q set", ErrInvalidRecipe, makeItem, changePlantTo)
	case makeItem != "":
		return Recipe{Needs: needs, Output: MakeItem{Item: makeItem}}, nil
	case changePlantTo != "":
		return Recipe{Needs: needs, Output: ChangePlant{Plant: changePlantTo}}, nil
	default:
		return Recipe{}, fmt.Errorf("%w: neither make_item nor change_plant_to set", ErrInvalidRecipe)
	}
}

// IsPlanting reports whether the recipe replaces the plot's plant with
// something other than dirt.
func (r Recipe) IsPlanting() bool {
	change, ok := r.Output.(ChangePlant)
	return ok && change.Plant != PlantDirt
}
