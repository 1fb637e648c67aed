package view

// Action and callback ids shared by the view builder and the Slack decoder.
const (
	ActionAuth        = "auth"
	ActionSend        = "send"
	ActionItemOptions = "item_options"
	ActionCraft       = "craft"

	CallbackAuth = "auth"
	CallbackSend = "send"
)

// Input block ids. Field errors are keyed by these.
const (
	BlockUsername = "username"
	BlockPassword = "password"
	BlockAmount   = "amount"
)
