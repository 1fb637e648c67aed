package domain

// CanCraft reports whether inv holds every item the recipe needs. Items missing
// from the inventory count as zero.
func CanCraft(inv Inventory, recipe Recipe) bool {
	for _, need := range recipe.Needs {
		if inv.Count(need.Item) < need.Count {
			return false
		}
	}

	return true
}
