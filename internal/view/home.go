package view

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/hksl/internal/catalog"
	"github.com/bnema/hksl/internal/domain"
	"github.com/bnema/hksl/internal/version"
	"github.com/slack-go/slack"
)

const (
	welcomeText     = "Welcome to hksl, the Slack client for hkgi."
	dirtLine        = "\n\n_So much opportunity!_"
	plantButtonText = ":seedling: Plant"
	craftButtonText = ":hammer_and_pick: Craft"
	cantCraftText   = "Can't craft this"
)

var errMissingStead = errors.New("stead snapshot is required for a signed-in view")

// BuildHome renders the App Home for identity. A nil identity yields the
// sign-in view and ignores stead. It does no I/O: equal inputs give equal
// views.
func BuildHome(identity *domain.Identity, resolver *catalog.Resolver, stead *domain.Stead) (slack.HomeTabViewRequest, error) {
	if identity == nil {
		return homeView(welcomeBlocks()), nil
	}
	if stead == nil {
		return slack.HomeTabViewRequest{}, errMissingStead
	}

	blocks := []slack.Block{header("Your stead")}

	hasDirt := stead.HasDirt()
	for plotIndex, plot := range stead.Plots {
		plotBlocks, err := plotSection(resolver, plot)
		if err != nil {
			return slack.HomeTabViewRequest{}, fmt.Errorf("plot %d: %w", plotIndex, err)
		}
		blocks = append(blocks, plotBlocks)

		for recipeIndex, recipe := range resolver.Manifest().RecipesFor(plot.Kind) {
			row, visible, err := recipeRow(resolver, stead.Inventory, recipe, CraftPayload{PlotIndex: plotIndex, RecipeIndex: recipeIndex}, hasDirt)
			if err != nil {
				return slack.HomeTabViewRequest{}, fmt.Errorf("plot %d recipe %d: %w", plotIndex, recipeIndex, err)
			}
			if visible {
				blocks = append(blocks, row)
			}
		}

		blocks = append(blocks, slack.NewDividerBlock())
	}

	blocks = append(blocks, header("Inventory"))
	for _, stack := range stead.Inventory.NonEmpty() {
		row, err := inventoryRow(resolver, stack)
		if err != nil {
			return slack.HomeTabViewRequest{}, fmt.Errorf("inventory: %w", err)
		}
		blocks = append(blocks, row)
	}

	blocks = append(blocks, footer(identity.Username))

	return homeView(blocks), nil
}

// RecipeVisible reports whether a recipe gets a row. Plantings the player
// cannot afford are hidden; unaffordable crafts stay visible but disabled.
func RecipeVisible(inv domain.Inventory, recipe domain.Recipe) bool {
	return domain.CanCraft(inv, recipe) || !recipe.IsPlanting()
}

func homeView(blocks []slack.Block) slack.HomeTabViewRequest {
	return slack.HomeTabViewRequest{
		Type:   slack.VTHomeTab,
		Blocks: slack.Blocks{BlockSet: blocks},
	}
}

func welcomeBlocks() []slack.Block {
	signIn := slack.NewButtonBlockElement(ActionAuth, "", plain("Sign in or sign up"))

	return []slack.Block{
		slack.NewSectionBlock(markdown(welcomeText), nil, nil),
		slack.NewActionBlock("", signIn),
	}
}

func plotSection(resolver *catalog.Resolver, plot domain.Plot) (*slack.SectionBlock, error) {
	plant, err := resolver.Plant(plot.Kind)
	if err != nil {
		return nil, err
	}

	var text strings.Builder
	fmt.Fprintf(&text, "*%s* `%s`", plant.Title, plot.Kind)
	if plot.Kind == domain.PlantDirt {
		text.WriteString(dirtLine)
	}
	for _, status := range plot.Statuses {
		glyph, err := resolver.Glyph(status)
		if err != nil {
			return nil, fmt.Errorf("status: %w", err)
		}
		fmt.Fprintf(&text, " :%s:", glyph)
	}

	var fields []*slack.TextBlockObject
	if seconds := plot.YieldSeconds(); seconds > 0 {
		fields = append(fields, markdown(fmt.Sprintf("*:clock2: Next yield*\n%d seconds", seconds)))
	}

	var accessory *slack.Accessory
	if plant.ImageURL != "" {
		accessory = slack.NewAccessory(slack.NewImageBlockElement(plant.ImageURL, plant.Title))
	}

	return slack.NewSectionBlock(markdown(text.String()), fields, accessory), nil
}

func recipeRow(resolver *catalog.Resolver, inv domain.Inventory, recipe domain.Recipe, payload CraftPayload, hasDirt bool) (*slack.SectionBlock, bool, error) {
	if !RecipeVisible(inv, recipe) {
		return nil, false, nil
	}

	label, err := recipeLabel(resolver, recipe)
	if err != nil {
		return nil, false, err
	}

	affordable := domain.CanCraft(inv, recipe)
	planting := recipe.IsPlanting()

	text := cantCraftText
	switch {
	case planting:
		text = plantButtonText
	case affordable:
		text = craftButtonText
	}

	button := slack.NewButtonBlockElement(ActionCraft, payload.Encode(), plainEmoji(text))
	if planting || (!hasDirt && affordable) {
		button = button.WithStyle(slack.StylePrimary)
	}

	return slack.NewSectionBlock(markdown(label), nil, slack.NewAccessory(button)), true, nil
}

func recipeLabel(resolver *catalog.Resolver, recipe domain.Recipe) (string, error) {
	needs := make([]string, 0, len(recipe.Needs))
	for _, need := range recipe.Needs {
		item, err := resolver.Item(need.Item)
		if err != nil {
			return "", err
		}
		needs = append(needs, fmt.Sprintf("%d :%s: %s", need.Count, item.Glyph, item.Name))
	}

	var output string
	switch out := recipe.Output.(type) {
	case domain.MakeItem:
		item, err := resolver.Item(out.Item)
		if err != nil {
			return "", err
		}
		output = fmt.Sprintf(":%s: %s", item.Glyph, item.Name)
	case domain.ChangePlant:
		plant, err := resolver.Plant(out.Plant)
		if err != nil {
			return "", err
		}
		output = ":seedling: " + plant.Title
	default:
		return "", fmt.Errorf("%w: no output", domain.ErrInvalidRecipe)
	}

	return strings.Join(needs, ", ") + " :arrow_right: *" + output + "*", nil
}

func inventoryRow(resolver *catalog.Resolver, stack domain.Stack) (*slack.SectionBlock, error) {
	item, err := resolver.Item(stack.Item)
	if err != nil {
		return nil, err
	}

	text := fmt.Sprintf(":%s: %s `%s`", item.Glyph, item.Name, item.ID)
	if stack.Count > 1 {
		text += fmt.Sprintf(" *x%d*", stack.Count)
	}

	return slack.NewSectionBlock(markdown(text), nil, slack.NewAccessory(itemControl(item))), nil
}

func itemControl(item catalog.ItemEntry) slack.BlockElement {
	if !item.Usable {
		return slack.NewButtonBlockElement(ActionSend, string(item.ID), plainEmoji(":package: Send"))
	}

	useText := fmt.Sprintf(":%s: Use item", item.Glyph)
	if item.ID.IsEgg() {
		useText = ":nest_egg: Hatch"
	}

	return slack.NewOverflowBlockElement(ActionItemOptions,
		slack.NewOptionBlockObject(ItemOptionPayload{Option: ItemOptionUse, Item: item.ID}.Encode(), plainEmoji(useText), nil),
		slack.NewOptionBlockObject(ItemOptionPayload{Option: ItemOptionSend, Item: item.ID}.Encode(), plainEmoji(":package: Send"), nil),
	)
}

func footer(username string) *slack.ContextBlock {
	return slack.NewContextBlock("", markdown(fmt.Sprintf("hksl v%s · Signed in as `%s`", version.Version, username)))
}

func header(text string) *slack.HeaderBlock {
	return slack.NewHeaderBlock(plain(text))
}

func markdown(text string) *slack.TextBlockObject {
	return slack.NewTextBlockObject(slack.MarkdownType, text, false, false)
}

func plain(text string) *slack.TextBlockObject {
	return slack.NewTextBlockObject(slack.PlainTextType, text, false, false)
}

func plainEmoji(text string) *slack.TextBlockObject {
	return slack.NewTextBlockObject(slack.PlainTextType, text, true, false)
}
