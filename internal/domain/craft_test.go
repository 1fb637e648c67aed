package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanCraft(t *testing.T) {
	seedRecipe := Recipe{
		Needs:  []Need{{Item: "bbc_seed", Count: 1}},
		Output: MakeItem{Item: "bbc_essence"},
	}
	twoNeeds := Recipe{
		Needs:  []Need{{Item: "bbc_essence", Count: 3}, {Item: "powder_t1", Count: 1}},
		Output: MakeItem{Item: "bbc_compressence"},
	}

	tests := []struct {
		name   string
		inv    Inventory
		recipe Recipe
		want   bool
	}{
		{name: "enough", inv: Inventory{{Item: "bbc_seed", Count: 2}}, recipe: seedRecipe, want: true},
		{name: "exact", inv: Inventory{{Item: "bbc_seed", Count: 1}}, recipe: seedRecipe, want: true},
		{name: "zero count", inv: Inventory{{Item: "bbc_seed", Count: 0}}, recipe: seedRecipe, want: false},
		{name: "missing item", inv: Inventory{}, recipe: seedRecipe, want: false},
		{name: "nil inventory", inv: nil, recipe: seedRecipe, want: false},
		{name: "one of two short", inv: Inventory{{Item: "bbc_essence", Count: 3}}, recipe: twoNeeds, want: false},
		{name: "both satisfied", inv: Inventory{{Item: "powder_t1", Count: 1}, {Item: "bbc_essence", Count: 4}}, recipe: twoNeeds, want: true},
		{name: "empty needs", inv: nil, recipe: Recipe{Output: ChangePlant{Plant: PlantDirt}}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanCraft(tt.inv, tt.recipe))
		})
	}
}

func TestNewRecipeRequiresExactlyOneOutput(t *testing.T) {
	needs := []Need{{Item: "bbc_seed", Count: 1}}

	recipe, err := NewRecipe(needs, "bbc_essence", "")
	require.NoError(t, err)
	assert.Equal(t, MakeItem{Item: "bbc_essence"}, recipe.Output)
	assert.False(t, recipe.IsPlanting())

	recipe, err = NewRecipe(needs, "", "bbc")
	require.NoError(t, err)
	assert.Equal(t, ChangePlant{Plant: "bbc"}, recipe.Output)
	assert.True(t, recipe.IsPlanting())

	recipe, err = NewRecipe(nil, "", PlantDirt)
	require.NoError(t, err)
	assert.False(t, recipe.IsPlanting())

	_, err = NewRecipe(needs, "bbc_essence", "bbc")
	require.ErrorIs(t, err, ErrInvalidRecipe)

	_, err = NewRecipe(needs, "", "")
	require.ErrorIs(t, err, ErrInvalidRecipe)
}

func TestPlotYieldSecondsRoundsUp(t *testing.T) {
	assert.Equal(t, int64(0), Plot{}.YieldSeconds())
	assert.Equal(t, int64(1), Plot{TimeToYield: time.Millisecond}.YieldSeconds())
	assert.Equal(t, int64(2), Plot{TimeToYield: 1001 * time.Millisecond}.YieldSeconds())
	assert.Equal(t, int64(5), Plot{TimeToYield: 5 * time.Second}.YieldSeconds())
}

func TestInventoryNonEmptyKeepsOrder(t *testing.T) {
	inv := Inventory{
		{Item: "hvv_seed", Count: 3},
		{Item: "bbc_seed", Count: 0},
		{Item: "nest_egg", Count: 1},
	}

	assert.Equal(t, Inventory{{Item: "hvv_seed", Count: 3}, {Item: "nest_egg", Count: 1}}, inv.NonEmpty())
	assert.Equal(t, 0, inv.Count("bbc_seed"))
	assert.Equal(t, 0, inv.Count("land_deed"))
}

func TestSteadHasDirt(t *testing.T) {
	assert.True(t, Stead{Plots: []Plot{{Kind: "bbc"}, {Kind: PlantDirt}}}.HasDirt())
	assert.False(t, Stead{Plots: []Plot{{Kind: "bbc"}}}.HasDirt())
}

func TestItemIsEgg(t *testing.T) {
	assert.True(t, ItemID("nest_egg").IsEgg())
	assert.True(t, ItemID("bbc_egg").IsEgg())
	assert.False(t, ItemID("bbc_seed").IsEgg())
}

func TestCredentialsValidate(t *testing.T) {
	require.NoError(t, Identity{Username: "cjdenio", Password: "hunter2"}.Credentials().Validate())
	require.ErrorIs(t, Credentials{Username: " ", Password: "x"}.Validate(), ErrEmptyUsername)
	require.ErrorIs(t, Credentials{Username: "cjdenio"}.Validate(), ErrEmptyPassword)
}
