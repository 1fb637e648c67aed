package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/hksl/internal/domain"
	"github.com/bnema/hksl/internal/ports"
	"github.com/bnema/hksl/internal/view"
	"go.uber.org/zap"
)

// Field error texts shown in modals.
const (
	ErrTextWrongPassword  = "incorrect password"
	ErrTextGeneric        = "something went wrong"
	ErrTextUnknownUser    = "that user doesn't exist"
	ErrTextCannotAfford   = "you don't have that much!"
	ErrTextAmountTooSmall = "amount must be at least 1"
)

var ErrUnsupportedAction = errors.New("unsupported action")

// AckFunc acknowledges an interaction. Non-submissions are acknowledged with
// nil before any remote call. Submissions are acknowledged once, after the
// remote call, with the field errors to display or nil to close the modal.
type AckFunc func(FieldErrors)

type Router struct {
	home       *HomeService
	identities ports.IdentityRepository
	game       ports.GameAPI
	surface    ports.Surface
	activity   *ActivityTracker
	policy     domain.UnknownUserPolicy
	logger     *zap.Logger
}

type RouterDeps struct {
	Home       *HomeService
	Identities ports.IdentityRepository
	Game       ports.GameAPI
	Surface    ports.Surface
	Activity   *ActivityTracker
	Policy     domain.UnknownUserPolicy
	Logger     *zap.Logger
}

func NewRouter(deps RouterDeps) *Router {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if !deps.Policy.Valid() {
		deps.Policy = domain.UnknownUserSignup
	}
	if deps.Activity == nil {
		deps.Activity = NewActivityTracker(nil)
	}

	return &Router{
		home:       deps.Home,
		identities: deps.Identities,
		game:       deps.Game,
		surface:    deps.Surface,
		activity:   deps.Activity,
		policy:     deps.Policy,
		logger:     deps.Logger,
	}
}

// Handle dispatches action. ack is always called exactly once.
func (r *Router) Handle(ctx context.Context, action Action, ack AckFunc) error {
	if ack == nil {
		ack = func(FieldErrors) {}
	}

	r.activity.Touch(action.Actor())
	if !IsSubmission(action) {
		ack(nil)
	}

	switch a := action.(type) {
	case HomeOpened:
		return r.home.Render(ctx, a.UserID)
	case OpenAuth:
		return r.openAuth(ctx, a)
	case SubmitAuth:
		return r.submitAuth(ctx, a, ack)
	case OpenSend:
		return r.openSend(ctx, a.UserID, a.TriggerID, a.Item)
	case SubmitSend:
		return r.submitSend(ctx, a, ack)
	case SelectItemOption:
		return r.selectItemOption(ctx, a)
	case Craft:
		return r.craft(ctx, a)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedAction, action)
	}
}

func (r *Router) openAuth(ctx context.Context, action OpenAuth) error {
	identity, err := r.home.Identity(ctx, action.UserID)
	if err != nil {
		return err
	}
	if identity != nil {
		return r.home.RenderIdentity(ctx, *identity)
	}

	if err := r.surface.OpenModal(ctx, action.TriggerID, view.AuthModal(r.policy)); err != nil {
		return fmt.Errorf("open auth modal: %w", err)
	}

	return nil
}

func (r *Router) submitAuth(ctx context.Context, action SubmitAuth, ack AckFunc) error {
	creds := domain.Credentials{Username: strings.TrimSpace(action.Username), Password: action.Password}
	if err := creds.Validate(); err != nil {
		if errors.Is(err, domain.ErrEmptyPassword) {
			ack(FieldErrors{view.BlockPassword: ErrTextWrongPassword})
		} else {
			ack(FieldErrors{view.BlockUsername: ErrTextUnknownUser})
		}
		return nil
	}

	verdict, err := r.game.TestAuth(ctx, creds)
	if err != nil {
		ack(FieldErrors{view.BlockUsername: ErrTextGeneric})
		return fmt.Errorf("test auth for %s: %w", creds.Username, err)
	}

	if !verdict.OK {
		switch verdict.Msg {
		case domain.MsgUserDoesNotExist:
			if r.policy == domain.UnknownUserReject {
				ack(FieldErrors{view.BlockUsername: ErrTextUnknownUser})
				return nil
			}
			if err := r.signup(ctx, creds); err != nil {
				ack(FieldErrors{view.BlockUsername: ErrTextGeneric})
				return err
			}
		case domain.MsgWrongPassword:
			ack(FieldErrors{view.BlockPassword: ErrTextWrongPassword})
			return nil
		default:
			r.logger.Warn("auth rejected", zap.String("user_id", string(action.UserID)), zap.String("msg", verdict.Msg))
			ack(FieldErrors{view.BlockUsername: ErrTextGeneric})
			return nil
		}
	}

	identity := domain.Identity{UserID: action.UserID, Username: creds.Username, Password: creds.Password}
	previous, err := r.identities.GetByUserID(ctx, action.UserID)
	switch {
	case err == nil:
		if previous.Username == identity.Username {
			identity.LastSentTo = previous.LastSentTo
		}
	case !errors.Is(err, domain.ErrIdentityNotFound):
		ack(FieldErrors{view.BlockUsername: ErrTextGeneric})
		return fmt.Errorf("get identity %s: %w", action.UserID, err)
	}

	if err := r.identities.Create(ctx, identity); err != nil {
		ack(FieldErrors{view.BlockUsername: ErrTextGeneric})
		return fmt.Errorf("save identity %s: %w", action.UserID, err)
	}

	ack(nil)
	r.logger.Info("identity linked", zap.String("user_id", string(action.UserID)), zap.String("username", creds.Username))

	return r.home.RenderIdentity(ctx, identity)
}

func (r *Router) signup(ctx context.Context, creds domain.Credentials) error {
	verdict, err := r.game.Signup(ctx, creds)
	if err != nil {
		return fmt.Errorf("signup %s: %w", creds.Username, err)
	}
	if !verdict.OK {
		return fmt.Errorf("signup %s rejected: %s", creds.Username, verdict.Msg)
	}

	r.logger.Info("game account created", zap.String("username", creds.Username))
	return nil
}

func (r *Router) openSend(ctx context.Context, userID domain.UserID, triggerID string, itemID domain.ItemID) error {
	identity, err := r.requireIdentity(ctx, userID)
	if err != nil {
		return err
	}

	item, err := r.home.Resolver().Item(itemID)
	if err != nil {
		return fmt.Errorf("open send modal: %w", err)
	}

	if err := r.surface.OpenModal(ctx, triggerID, view.SendModal(item, identity.LastSentTo)); err != nil {
		return fmt.Errorf("open send modal: %w", err)
	}

	return nil
}

func (r *Router) submitSend(ctx context.Context, action SubmitSend, ack AckFunc) error {
	identity, err := r.requireIdentity(ctx, action.UserID)
	if err != nil {
		ack(FieldErrors{view.BlockUsername: ErrTextGeneric})
		return err
	}

	if action.Amount < 1 {
		ack(FieldErrors{view.BlockAmount: ErrTextAmountTooSmall})
		return nil
	}

	transfer := domain.Transfer{
		Recipient: strings.TrimSpace(action.Recipient),
		Item:      action.Item,
		Amount:    action.Amount,
	}

	verdict, err := r.game.Gib(ctx, identity.Credentials(), transfer)
	if err != nil {
		ack(FieldErrors{view.BlockUsername: ErrTextGeneric})
		return fmt.Errorf("send %s to %s: %w", transfer.Item, transfer.Recipient, err)
	}

	if !verdict.OK {
		switch verdict.Msg {
		case domain.MsgRecipientNotFound:
			ack(FieldErrors{view.BlockUsername: ErrTextUnknownUser})
		case domain.MsgCannotAfford:
			ack(FieldErrors{view.BlockAmount: ErrTextCannotAfford})
		default:
			r.logger.Warn("send rejected", zap.String("user_id", string(action.UserID)), zap.String("msg", verdict.Msg))
			ack(FieldErrors{view.BlockUsername: ErrTextGeneric})
		}
		return nil
	}

	ack(nil)

	if err := r.identities.UpdateLastSentTo(ctx, identity.UserID, transfer.Recipient); err != nil {
		r.logger.Warn("remember recipient", zap.String("user_id", string(identity.UserID)), zap.Error(err))
	} else {
		identity.LastSentTo = transfer.Recipient
	}

	var renderErr error
	if err := r.home.RenderIdentity(ctx, *identity); err != nil {
		r.logger.Warn("render sender", zap.String("user_id", string(identity.UserID)), zap.Error(err))
		renderErr = err
	}

	recipient, err := r.identities.FindByUsername(ctx, transfer.Recipient)
	if err != nil {
		if !errors.Is(err, domain.ErrIdentityNotFound) {
			r.logger.Warn("lookup recipient", zap.String("username", transfer.Recipient), zap.Error(err))
		}
		return renderErr
	}

	if err := r.home.RenderIdentity(ctx, recipient); err != nil {
		r.logger.Warn("render recipient", zap.String("user_id", string(recipient.UserID)), zap.Error(err))
	}

	return renderErr
}

func (r *Router) selectItemOption(ctx context.Context, action SelectItemOption) error {
	if action.Option == view.ItemOptionSend {
		return r.openSend(ctx, action.UserID, action.TriggerID, action.Item)
	}

	identity, err := r.requireIdentity(ctx, action.UserID)
	if err != nil {
		return err
	}

	switch action.Option {
	case view.ItemOptionUse:
		result, err := r.game.UseItem(ctx, identity.Credentials(), action.Item)
		if err != nil {
			r.logger.Error("use item", zap.String("item", string(action.Item)), zap.Error(err))
		} else {
			r.logResult("item used", result,
				zap.String("user_id", string(identity.UserID)),
				zap.String("item", string(action.Item)),
			)
		}
	default:
		r.logger.Warn("unknown item option", zap.String("option", string(action.Option)), zap.String("item", string(action.Item)))
	}

	return r.home.RenderIdentity(ctx, *identity)
}

func (r *Router) craft(ctx context.Context, action Craft) error {
	identity, err := r.requireIdentity(ctx, action.UserID)
	if err != nil {
		return err
	}

	result, err := r.game.Craft(ctx, identity.Credentials(), action.Payload.PlotIndex, action.Payload.RecipeIndex)
	if err != nil {
		r.logger.Error("craft",
			zap.Int("plot_index", action.Payload.PlotIndex),
			zap.Int("recipe_index", action.Payload.RecipeIndex),
			zap.Error(err),
		)
	} else {
		r.logResult("crafted", result,
			zap.String("user_id", string(identity.UserID)),
			zap.Int("plot_index", action.Payload.PlotIndex),
			zap.Int("recipe_index", action.Payload.RecipeIndex),
		)
	}

	return r.home.RenderIdentity(ctx, *identity)
}

// logResult logs the raw body of a use-item or craft call, with the verdict
// fields when the body has them.
func (r *Router) logResult(msg string, result domain.Result, fields ...zap.Field) {
	fields = append(fields, zap.String("result", result.Body))
	if result.Verdict != nil {
		fields = append(fields, zap.Bool("ok", result.Verdict.OK), zap.String("msg", result.Verdict.Msg))
	}
	if result.Rejected() {
		r.logger.Info(msg+": rejected", fields...)
		return
	}
	r.logger.Info(msg, fields...)
}

func (r *Router) requireIdentity(ctx context.Context, userID domain.UserID) (*domain.Identity, error) {
	identity, err := r.home.Identity(ctx, userID)
	if err != nil {
		return nil, err
	}
	if identity == nil {
		return nil, fmt.Errorf("user %s: %w", userID, domain.ErrIdentityNotFound)
	}

	return identity, nil
}
