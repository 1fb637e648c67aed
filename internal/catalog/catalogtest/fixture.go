// Package catalogtest provides a small manifest shaped like the live hkgi one.
package catalogtest

import "github.com/bnema/hksl/internal/domain"

func Manifest() domain.Manifest {
	return domain.Manifest{
		Items: map[domain.ItemID]domain.ItemInfo{
			"bbc_seed":    {Name: "Bractus Seed"},
			"bbc_essence": {Name: "Bread Essence"},
			"hvv_seed":    {Name: "Hacker Vibes Vine Seed"},
			"nest_egg":    {Name: "Nest Egg", Usable: true},
			"powder_t1":   {Name: "Warp Powder", Usable: true},
			"land_deed":   {Name: "Land Deed", Usable: true},
		},
		PlantTitles: map[domain.PlantKind]string{
			domain.PlantDirt: "Dirt",
			"bbc":            "Bractus Loaf",
			"hvv":            "Hacker Vibes Vine",
		},
		PlantRecipes: map[domain.PlantKind][]domain.Recipe{
			domain.PlantDirt: {
				{Needs: []domain.Need{{Item: "bbc_seed", Count: 1}}, Output: domain.ChangePlant{Plant: "bbc"}},
				{Needs: []domain.Need{{Item: "hvv_seed", Count: 1}}, Output: domain.ChangePlant{Plant: "hvv"}},
			},
			"bbc": {
				{Needs: []domain.Need{{Item: "bbc_seed", Count: 1}}, Output: domain.MakeItem{Item: "bbc_essence"}},
				{Output: domain.ChangePlant{Plant: domain.PlantDirt}},
			},
		},
	}
}
