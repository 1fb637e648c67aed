package slack

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/bnema/hksl/internal/application"
	"github.com/bnema/hksl/internal/view"
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/socketmode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSocket struct {
	mu       sync.Mutex
	acks     []string
	payloads []interface{}
}

func (f *fakeSocket) RunContext(ctx context.Context) error {
	<-ctx.Done()
	return ctx.Err()
}

func (f *fakeSocket) Ack(req socketmode.Request, payload ...interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.acks = append(f.acks, req.EnvelopeID)
	f.payloads = append(f.payloads, payload...)
}

func (f *fakeSocket) snapshot() ([]string, []interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.acks...), append([]interface{}(nil), f.payloads...)
}

type handlerFunc func(ctx context.Context, action application.Action, ack application.AckFunc) error

func (f handlerFunc) Handle(ctx context.Context, action application.Action, ack application.AckFunc) error {
	return f(ctx, action, ack)
}

func runListener(t *testing.T, handler Handler, events ...socketmode.Event) *fakeSocket {
	t.Helper()

	socket := &fakeSocket{}
	ch := make(chan socketmode.Event, len(events))
	for _, evt := range events {
		ch <- evt
	}
	close(ch)

	listener := newListener(socket, ch, handler, nil)
	done := make(chan error, 1)
	go func() { done <- listener.Run(context.Background()) }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("listener did not drain events")
	}

	return socket
}

func TestListenerAcksSubmissionWithFieldErrors(t *testing.T) {
	t.Parallel()

	handler := handlerFunc(func(_ context.Context, action application.Action, ack application.AckFunc) error {
		assert.IsType(t, application.SubmitAuth{}, action)
		ack(application.FieldErrors{view.BlockPassword: "incorrect password"})
		return nil
	})

	socket := runListener(t, handler, socketmode.Event{
		Type:    socketmode.EventTypeInteractive,
		Data:    submission(view.CallbackAuth, "", map[string]string{view.BlockUsername: "alice", view.BlockPassword: "x"}),
		Request: &socketmode.Request{EnvelopeID: "env-1"},
	})

	acks, payloads := socket.snapshot()
	assert.Equal(t, []string{"env-1"}, acks)
	require.Len(t, payloads, 1)
	response, ok := payloads[0].(*slack.ViewSubmissionResponse)
	require.True(t, ok)
	assert.Equal(t, "incorrect password", response.Errors[view.BlockPassword])
}

func TestListenerAcksExactlyOnce(t *testing.T) {
	t.Parallel()

	handler := handlerFunc(func(_ context.Context, _ application.Action, ack application.AckFunc) error {
		ack(nil)
		ack(nil)
		return nil
	})

	socket := runListener(t, handler, socketmode.Event{
		Type:    socketmode.EventTypeInteractive,
		Data:    blockActions(&slack.BlockAction{ActionID: view.ActionAuth}),
		Request: &socketmode.Request{EnvelopeID: "env-2"},
	})

	acks, payloads := socket.snapshot()
	assert.Equal(t, []string{"env-2"}, acks)
	assert.Empty(t, payloads)
}

func TestListenerAcksUndecodableEvents(t *testing.T) {
	t.Parallel()

	handler := handlerFunc(func(context.Context, application.Action, application.AckFunc) error {
		t.Error("handler must not run for unknown actions")
		return nil
	})

	socket := runListener(t, handler,
		socketmode.Event{
			Type:    socketmode.EventTypeInteractive,
			Data:    blockActions(&slack.BlockAction{ActionID: "mystery"}),
			Request: &socketmode.Request{EnvelopeID: "env-3"},
		},
		socketmode.Event{Type: socketmode.EventTypeConnected},
	)

	acks, _ := socket.snapshot()
	assert.Equal(t, []string{"env-3"}, acks)
}
