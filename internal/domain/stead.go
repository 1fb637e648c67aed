package domain

import "time"

type Plot struct {
	Kind PlantKind
	// TimeToYield is zero when the plant reports no pending yield.
	TimeToYield time.Duration
	Statuses    []ItemID
}

// YieldSeconds rounds the remaining time up to whole seconds.
func (p Plot) YieldSeconds() int64 {
	if p.TimeToYield <= 0 {
		return 0
	}

	return int64((p.TimeToYield + time.Second - 1) / time.Second)
}

type Stack struct {
	Item  ItemID
	Count int
}

// Inventory keeps the order reported by the remote API.
type Inventory []Stack

func (inv Inventory) Count(item ItemID) int {
	for _, stack := range inv {
		if stack.Item == item {
			return stack.Count
		}
	}

	return 0
}

func (inv Inventory) NonEmpty() Inventory {
	result := make(Inventory, 0, len(inv))
	for _, stack := range inv {
		if stack.Count > 0 {
			result = append(result, stack)
		}
	}

	return result
}

type Stead struct {
	Plots     []Plot
	Inventory Inventory
}

func (s Stead) HasDirt() bool {
	for _, plot := range s.Plots {
		if plot.Kind == PlantDirt {
			return true
		}
	}

	return false
}
