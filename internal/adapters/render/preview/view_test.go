package preview

import (
	"testing"

	"github.com/bnema/hksl/internal/catalog"
	"github.com/bnema/hksl/internal/catalog/catalogtest"
	"github.com/bnema/hksl/internal/domain"
	"github.com/bnema/hksl/internal/view"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderSignInView(t *testing.T) {
	resolver, err := catalog.New(catalogtest.Manifest())
	require.NoError(t, err)
	home, err := view.BuildHome(nil, resolver, nil)
	require.NoError(t, err)

	output, err := Render(home, RenderOptions{})
	require.NoError(t, err)
	assert.Contains(t, output, "Welcome to hksl")
	assert.Contains(t, output, "Sign in or sign up")
}

func TestRenderSignedInView(t *testing.T) {
	resolver, err := catalog.New(catalogtest.Manifest())
	require.NoError(t, err)

	stead := domain.Stead{
		Plots:     []domain.Plot{{Kind: domain.PlantDirt}},
		Inventory: domain.Inventory{{Item: "bbc_seed", Count: 4}, {Item: "nest_egg", Count: 1}},
	}
	home, err := view.BuildHome(&domain.Identity{UserID: "U1", Username: "alice"}, resolver, &stead)
	require.NoError(t, err)

	output, err := Render(home, RenderOptions{Width: 100})
	require.NoError(t, err)
	assert.Contains(t, output, "Your stead")
	assert.Contains(t, output, "Dirt")
	assert.Contains(t, output, "So much opportunity!")
	assert.Contains(t, output, ":seedling: Plant")
	assert.Contains(t, output, "Inventory")
	assert.Contains(t, output, "x4")
	assert.Contains(t, output, "Hatch | :package: Send")
	assert.Contains(t, output, "Signed in as alice")
	assert.Contains(t, output, "───")
	assert.NotContains(t, output, "*Dirt*")
}

func TestRenderUnknownBlockFallsBackToType(t *testing.T) {
	output, err := Render(slack.HomeTabViewRequest{Blocks: slack.Blocks{BlockSet: []slack.Block{
		slack.NewFileBlock("", "ext-1", "remote"),
	}}}, RenderOptions{})
	require.NoError(t, err)
	assert.Contains(t, output, "[file]")
}

func TestTextOfStripsMarkup(t *testing.T) {
	s := newStyles()

	assert.Equal(t, "plain *kept*", textOf(slack.NewTextBlockObject(slack.PlainTextType, "plain *kept*", false, false), s))
	assert.NotContains(t, textOf(slack.NewTextBlockObject(slack.MarkdownType, "*Bold* `code` _soft_", false, false), s), "*")
	assert.Empty(t, textOf(nil, s))
}
