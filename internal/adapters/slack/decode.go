package slack

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bnema/hksl/internal/application"
	"github.com/bnema/hksl/internal/domain"
	"github.com/bnema/hksl/internal/view"
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
)

var ErrUnhandled = errors.New("unhandled interaction")

// DecodeEvent maps an Events API callback to an action. Only App Home opens
// on the home tab are handled.
func DecodeEvent(event slackevents.EventsAPIEvent) (application.Action, error) {
	if event.Type != slackevents.CallbackEvent {
		return nil, fmt.Errorf("%w: event type %s", ErrUnhandled, event.Type)
	}

	switch inner := event.InnerEvent.Data.(type) {
	case *slackevents.AppHomeOpenedEvent:
		if inner.Tab != "" && inner.Tab != "home" {
			return nil, fmt.Errorf("%w: app home tab %s", ErrUnhandled, inner.Tab)
		}
		return application.HomeOpened{UserID: domain.UserID(inner.User)}, nil
	default:
		return nil, fmt.Errorf("%w: inner event %s", ErrUnhandled, event.InnerEvent.Type)
	}
}

// DecodeInteraction maps an interactive callback to an action.
func DecodeInteraction(callback slack.InteractionCallback) (application.Action, error) {
	userID := domain.UserID(callback.User.ID)

	switch callback.Type {
	case slack.InteractionTypeBlockActions:
		for _, action := range callback.ActionCallback.BlockActions {
			if action == nil {
				continue
			}
			decoded, err := decodeBlockAction(userID, callback.TriggerID, *action)
			if errors.Is(err, ErrUnhandled) {
				continue
			}
			return decoded, err
		}
		return nil, fmt.Errorf("%w: no known block action", ErrUnhandled)
	case slack.InteractionTypeViewSubmission:
		return decodeSubmission(userID, callback.View)
	default:
		return nil, fmt.Errorf("%w: interaction type %s", ErrUnhandled, callback.Type)
	}
}

func decodeBlockAction(userID domain.UserID, triggerID string, action slack.BlockAction) (application.Action, error) {
	switch action.ActionID {
	case view.ActionAuth:
		return application.OpenAuth{UserID: userID, TriggerID: triggerID}, nil
	case view.ActionSend:
		if action.Value == "" {
			return nil, errors.New("send action without item")
		}
		return application.OpenSend{UserID: userID, TriggerID: triggerID, Item: domain.ItemID(action.Value)}, nil
	case view.ActionItemOptions:
		payload, err := view.DecodeItemOptionPayload(action.SelectedOption.Value)
		if err != nil {
			return nil, err
		}
		return application.SelectItemOption{UserID: userID, TriggerID: triggerID, Item: payload.Item, Option: payload.Option}, nil
	case view.ActionCraft:
		payload, err := view.DecodeCraftPayload(action.Value)
		if err != nil {
			return nil, err
		}
		return application.Craft{UserID: userID, Payload: payload}, nil
	default:
		return nil, fmt.Errorf("%w: action id %s", ErrUnhandled, action.ActionID)
	}
}

func decodeSubmission(userID domain.UserID, v slack.View) (application.Action, error) {
	switch v.CallbackID {
	case view.CallbackAuth:
		return application.SubmitAuth{
			UserID:   userID,
			Username: inputValue(v, view.BlockUsername),
			Password: inputValue(v, view.BlockPassword),
		}, nil
	case view.CallbackSend:
		if v.PrivateMetadata == "" {
			return nil, errors.New("send submission without item")
		}
		// A non-integer amount decodes to zero and is rejected downstream
		// with the amount field error.
		amount, _ := strconv.Atoi(strings.TrimSpace(inputValue(v, view.BlockAmount)))
		return application.SubmitSend{
			UserID:    userID,
			Item:      domain.ItemID(v.PrivateMetadata),
			Recipient: inputValue(v, view.BlockUsername),
			Amount:    amount,
		}, nil
	default:
		return nil, fmt.Errorf("%w: callback id %s", ErrUnhandled, v.CallbackID)
	}
}

// inputValue reads an input block whose element shares the block's id.
func inputValue(v slack.View, blockID string) string {
	if v.State == nil {
		return ""
	}
	return v.State.Values[blockID][blockID].Value
}
