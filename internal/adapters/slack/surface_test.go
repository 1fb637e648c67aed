package slack

import (
	"context"
	"errors"
	"testing"

	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWebAPI struct {
	publishedUser string
	openedTrigger string
	err           error
}

func (f *fakeWebAPI) PublishViewContext(_ context.Context, userID string, _ slack.HomeTabViewRequest, _ string) (*slack.ViewResponse, error) {
	f.publishedUser = userID
	return &slack.ViewResponse{}, f.err
}

func (f *fakeWebAPI) OpenViewContext(_ context.Context, triggerID string, _ slack.ModalViewRequest) (*slack.ViewResponse, error) {
	f.openedTrigger = triggerID
	return &slack.ViewResponse{}, f.err
}

func TestSurfacePublishHome(t *testing.T) {
	t.Parallel()

	api := &fakeWebAPI{}
	require.NoError(t, NewSurface(api).PublishHome(context.Background(), "U1", slack.HomeTabViewRequest{Type: slack.VTHomeTab}))
	assert.Equal(t, "U1", api.publishedUser)

	require.Error(t, NewSurface(api).PublishHome(context.Background(), "", slack.HomeTabViewRequest{}))
}

func TestSurfaceOpenModal(t *testing.T) {
	t.Parallel()

	api := &fakeWebAPI{}
	require.NoError(t, NewSurface(api).OpenModal(context.Background(), "trig", slack.ModalViewRequest{Type: slack.VTModal}))
	assert.Equal(t, "trig", api.openedTrigger)

	require.Error(t, NewSurface(api).OpenModal(context.Background(), "", slack.ModalViewRequest{}))
}

func TestSurfaceIncludesValidationMessages(t *testing.T) {
	t.Parallel()

	api := &fakeWebAPI{err: slack.SlackErrorResponse{
		Err:              "invalid_blocks",
		ResponseMetadata: slack.ResponseMetadata{Messages: []string{"[ERROR] must be less than 76 characters"}},
	}}

	err := NewSurface(api).PublishHome(context.Background(), "U1", slack.HomeTabViewRequest{})
	require.Error(t, err)
	assert.ErrorContains(t, err, "invalid_blocks")
	assert.ErrorContains(t, err, "76 characters")

	var slackErr slack.SlackErrorResponse
	assert.True(t, errors.As(err, &slackErr))
}
