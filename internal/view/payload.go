package view

import (
	"encoding/json"
	"fmt"

	"github.com/bnema/hksl/internal/domain"
)

// CraftPayload locates a recipe as the remote craft operation addresses it.
type CraftPayload struct {
	PlotIndex   int `json:"plotIndex"`
	RecipeIndex int `json:"recipeIndex"`
}

func (p CraftPayload) Encode() string {
	return mustEncode(p)
}

func DecodeCraftPayload(raw string) (CraftPayload, error) {
	var payload CraftPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return CraftPayload{}, fmt.Errorf("decode craft payload: %w", err)
	}
	if payload.PlotIndex < 0 || payload.RecipeIndex < 0 {
		return CraftPayload{}, fmt.Errorf("decode craft payload: negative index in %q", raw)
	}

	return payload, nil
}

type ItemOption string

const (
	ItemOptionUse  ItemOption = "use"
	ItemOptionSend ItemOption = "send"
)

type ItemOptionPayload struct {
	Option ItemOption    `json:"option"`
	Item   domain.ItemID `json:"item"`
}

func (p ItemOptionPayload) Encode() string {
	return mustEncode(p)
}

func DecodeItemOptionPayload(raw string) (ItemOptionPayload, error) {
	var payload ItemOptionPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return ItemOptionPayload{}, fmt.Errorf("decode item option payload: %w", err)
	}
	if payload.Item == "" {
		return ItemOptionPayload{}, fmt.Errorf("decode item option payload: missing item in %q", raw)
	}

	return payload, nil
}

func mustEncode(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("encode %T: %v", v, err))
	}

	return string(data)
}
