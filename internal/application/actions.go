package application

import (
	"github.com/bnema/hksl/internal/domain"
	"github.com/bnema/hksl/internal/view"
)

type ActionKind string

const (
	KindHomeOpened ActionKind = "home_opened"
	KindOpenAuth   ActionKind = "open_auth"
	KindSubmitAuth ActionKind = "submit_auth"
	KindOpenSend   ActionKind = "open_send"
	KindSubmitSend ActionKind = "submit_send"
	KindItemOption ActionKind = "item_option"
	KindCraft      ActionKind = "craft"
)

// Action is one decoded interaction. The set is closed: the router handles
// exactly the types below.
type Action interface {
	Kind() ActionKind
	Actor() domain.UserID
}

type HomeOpened struct {
	UserID domain.UserID
}

type OpenAuth struct {
	UserID    domain.UserID
	TriggerID string
}

type SubmitAuth struct {
	UserID   domain.UserID
	Username string
	Password string
}

type OpenSend struct {
	UserID    domain.UserID
	TriggerID string
	Item      domain.ItemID
}

type SubmitSend struct {
	UserID    domain.UserID
	Item      domain.ItemID
	Recipient string
	// Amount is zero when the submitted value was not an integer.
	Amount int
}

type SelectItemOption struct {
	UserID    domain.UserID
	TriggerID string
	Item      domain.ItemID
	Option    view.ItemOption
}

type Craft struct {
	UserID  domain.UserID
	Payload view.CraftPayload
}

func (HomeOpened) Kind() ActionKind       { return KindHomeOpened }
func (OpenAuth) Kind() ActionKind         { return KindOpenAuth }
func (SubmitAuth) Kind() ActionKind       { return KindSubmitAuth }
func (OpenSend) Kind() ActionKind         { return KindOpenSend }
func (SubmitSend) Kind() ActionKind       { return KindSubmitSend }
func (SelectItemOption) Kind() ActionKind { return KindItemOption }
func (Craft) Kind() ActionKind            { return KindCraft }

func (a HomeOpened) Actor() domain.UserID       { return a.UserID }
func (a OpenAuth) Actor() domain.UserID         { return a.UserID }
func (a SubmitAuth) Actor() domain.UserID       { return a.UserID }
func (a OpenSend) Actor() domain.UserID         { return a.UserID }
func (a SubmitSend) Actor() domain.UserID       { return a.UserID }
func (a SelectItemOption) Actor() domain.UserID { return a.UserID }
func (a Craft) Actor() domain.UserID            { return a.UserID }

// IsSubmission reports whether the action is a modal submission, which is
// acknowledged with its field errors only after the remote call returns.
func IsSubmission(action Action) bool {
	switch action.(type) {
	case SubmitAuth, SubmitSend:
		return true
	default:
		return false
	}
}

// FieldErrors maps input block ids to messages shown under the field.
type FieldErrors map[string]string
