package view

import (
	"testing"

	"github.com/bnema/hksl/internal/catalog"
	"github.com/bnema/hksl/internal/domain"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthModal(t *testing.T) {
	modal := AuthModal(domain.UnknownUserSignup)

	assert.Equal(t, slack.VTModal, modal.Type)
	assert.Equal(t, CallbackAuth, modal.CallbackID)
	require.Len(t, modal.Blocks.BlockSet, 2)

	username, ok := modal.Blocks.BlockSet[0].(*slack.InputBlock)
	require.True(t, ok)
	assert.Equal(t, BlockUsername, username.BlockID)

	password, ok := modal.Blocks.BlockSet[1].(*slack.InputBlock)
	require.True(t, ok)
	assert.Equal(t, BlockPassword, password.BlockID)
	require.NotNil(t, password.Hint)
	assert.Equal(t, signupHint, password.Hint.Text)
}

func TestAuthModalOmitsSignupHintWhenRejecting(t *testing.T) {
	modal := AuthModal(domain.UnknownUserReject)

	password, ok := modal.Blocks.BlockSet[1].(*slack.InputBlock)
	require.True(t, ok)
	assert.Nil(t, password.Hint)
}

func TestSendModal(t *testing.T) {
	item := catalog.ItemEntry{ID: "bbc_seed", Glyph: "bractus_seed", Name: "Bractus Seed"}

	modal := SendModal(item, "rishi")

	assert.Equal(t, CallbackSend, modal.CallbackID)
	assert.Equal(t, "bbc_seed", modal.PrivateMetadata)
	require.Len(t, modal.Blocks.BlockSet, 3)

	intro, ok := modal.Blocks.BlockSet[0].(*slack.SectionBlock)
	require.True(t, ok)
	assert.Equal(t, ":bractus_seed: Sending: *Bractus Seed* `bbc_seed`", intro.Text.Text)

	amountBlock, ok := modal.Blocks.BlockSet[1].(*slack.InputBlock)
	require.True(t, ok)
	assert.Equal(t, BlockAmount, amountBlock.BlockID)
	amount, ok := amountBlock.Element.(*slack.NumberInputBlockElement)
	require.True(t, ok)
	assert.Equal(t, "1", amount.InitialValue)
	assert.Equal(t, "1", amount.MinValue)
	assert.False(t, amount.IsDecimalAllowed)

	recipientBlock, ok := modal.Blocks.BlockSet[2].(*slack.InputBlock)
	require.True(t, ok)
	recipient, ok := recipientBlock.Element.(*slack.PlainTextInputBlockElement)
	require.True(t, ok)
	assert.Equal(t, "rishi", recipient.InitialValue)
}
