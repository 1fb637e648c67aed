package domain

// Messages the game API sends back in rejected verdicts.
const (
	MsgUserDoesNotExist  = "user doesn't exist"
	MsgWrongPassword     = "wrong password"
	MsgRecipientNotFound = "who dat?"
	MsgCannotAfford      = "you can't afford that!"
)

// Verdict is the structured {ok, msg} body of a mutating game API call.
type Verdict struct {
	OK  bool
	Msg string
}

// Result is the opaque body of a use-item or craft call. Verdict is set only
// when the body is an {ok, msg} object.
type Result struct {
	Body    string
	Verdict *Verdict
}

// Rejected reports whether the body carried a verdict with ok false.
func (r Result) Rejected() bool {
	return r.Verdict != nil && !r.Verdict.OK
}

type Transfer struct {
	Recipient string
	Item      ItemID
	Amount    int
}
