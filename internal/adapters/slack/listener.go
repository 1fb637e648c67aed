package slack

import (
	"context"
	"errors"
	"sync"

	"github.com/bnema/hksl/internal/application"
	"github.com/google/uuid"
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
	"github.com/slack-go/slack/socketmode"
	"go.uber.org/zap"
)

// Handler is implemented by application.Router.
type Handler interface {
	Handle(ctx context.Context, action application.Action, ack application.AckFunc) error
}

type socketClient interface {
	RunContext(ctx context.Context) error
	Ack(req socketmode.Request, payload ...interface{})
}

// Listener consumes Socket Mode events and hands each interaction to its own
// goroutine.
type Listener struct {
	client  socketClient
	events  <-chan socketmode.Event
	handler Handler
	logger  *zap.Logger
	wg      sync.WaitGroup
}

func NewListener(client *socketmode.Client, handler Handler, logger *zap.Logger) *Listener {
	return newListener(client, client.Events, handler, logger)
}

func newListener(client socketClient, events <-chan socketmode.Event, handler Handler, logger *zap.Logger) *Listener {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Listener{client: client, events: events, handler: handler, logger: logger}
}

// NewSocketClient builds the Web API client and its Socket Mode wrapper.
func NewSocketClient(botToken, appToken string, debug bool) (*slack.Client, *socketmode.Client) {
	api := slack.New(botToken, slack.OptionAppLevelToken(appToken), slack.OptionDebug(debug))
	return api, socketmode.New(api, socketmode.OptionDebug(debug))
}

// Run blocks until ctx is cancelled or the connection fails, then waits for
// in-flight handlers.
func (l *Listener) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	runErr := make(chan error, 1)
	go func() { runErr <- l.client.RunContext(ctx) }()

	defer l.wg.Wait()

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-runErr:
			if err == nil || errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		case evt, ok := <-l.events:
			if !ok {
				return nil
			}
			l.dispatch(ctx, evt)
		}
	}
}

func (l *Listener) dispatch(ctx context.Context, evt socketmode.Event) {
	switch evt.Type {
	case socketmode.EventTypeConnecting:
		l.logger.Info("connecting to slack")
	case socketmode.EventTypeConnected:
		l.logger.Info("connected to slack")
	case socketmode.EventTypeConnectionError:
		l.logger.Warn("slack connection error", zap.Any("data", evt.Data))
	case socketmode.EventTypeEventsAPI, socketmode.EventTypeInteractive:
		if evt.Request == nil {
			return
		}
		l.wg.Add(1)
		go func() {
			defer l.wg.Done()
			l.handle(ctx, evt)
		}()
	}
}

func (l *Listener) handle(ctx context.Context, evt socketmode.Event) {
	logger := l.logger.With(zap.String("interaction_id", uuid.NewString()))
	req := *evt.Request

	var once sync.Once
	ack := func(errs application.FieldErrors) {
		once.Do(func() {
			if len(errs) > 0 {
				l.client.Ack(req, slack.NewErrorsViewSubmissionResponse(errs))
				return
			}
			l.client.Ack(req)
		})
	}
	defer ack(nil)

	action, err := l.decode(evt)
	if err != nil {
		if errors.Is(err, ErrUnhandled) {
			logger.Debug("ignoring slack event", zap.Error(err))
		} else {
			logger.Warn("decode slack event", zap.Error(err))
		}
		return
	}

	logger = logger.With(zap.String("action", string(action.Kind())), zap.String("user_id", string(action.Actor())))
	if err := l.handler.Handle(ctx, action, ack); err != nil {
		logger.Error("handle action", zap.Error(err))
		return
	}
	logger.Debug("action handled")
}

func (l *Listener) decode(evt socketmode.Event) (application.Action, error) {
	switch data := evt.Data.(type) {
	case slackevents.EventsAPIEvent:
		return DecodeEvent(data)
	case slack.InteractionCallback:
		return DecodeInteraction(data)
	default:
		return nil, ErrUnhandled
	}
}
