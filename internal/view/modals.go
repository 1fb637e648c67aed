package view

import (
	"fmt"

	"github.com/bnema/hksl/internal/catalog"
	"github.com/bnema/hksl/internal/domain"
	"github.com/slack-go/slack"
)

const signupHint = "If you don't have an account, it'll be created with this password."

func AuthModal(policy domain.UnknownUserPolicy) slack.ModalViewRequest {
	username := slack.NewPlainTextInputBlockElement(plain("cjdenio"), BlockUsername)
	password := slack.NewPlainTextInputBlockElement(plain("hunter2"), BlockPassword)

	var hint *slack.TextBlockObject
	if policy == domain.UnknownUserSignup {
		hint = plain(signupHint)
	}

	return slack.ModalViewRequest{
		Type:       slack.VTModal,
		CallbackID: CallbackAuth,
		Title:      plain("Sign in or sign up"),
		Submit:     plain("Go!"),
		Blocks: slack.Blocks{BlockSet: []slack.Block{
			slack.NewInputBlock(BlockUsername, plain("Username"), nil, username),
			slack.NewInputBlock(BlockPassword, plain("Password"), hint, password),
		}},
	}
}

// SendModal prompts for an amount and a recipient. The item travels in the
// private metadata so the submission does not depend on any server state.
func SendModal(item catalog.ItemEntry, lastSentTo string) slack.ModalViewRequest {
	amount := slack.NewNumberInputBlockElement(nil, BlockAmount, false)
	amount.InitialValue = "1"
	amount.MinValue = "1"

	recipient := slack.NewPlainTextInputBlockElement(plain("e.g. cjdenio"), BlockUsername)
	recipient.InitialValue = lastSentTo

	return slack.ModalViewRequest{
		Type:            slack.VTModal,
		CallbackID:      CallbackSend,
		PrivateMetadata: string(item.ID),
		Title:           plain("Send item"),
		Submit:          plain("Send"),
		Blocks: slack.Blocks{BlockSet: []slack.Block{
			slack.NewSectionBlock(markdown(fmt.Sprintf(":%s: Sending: *%s* `%s`", item.Glyph, item.Name, item.ID)), nil, nil),
			slack.NewInputBlock(BlockAmount, plain("Amount to send"), nil, amount),
			slack.NewInputBlock(BlockUsername, plain("Username to send to"), nil, recipient),
		}},
	}
}
