package slack

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/hksl/internal/domain"
	"github.com/bnema/hksl/internal/ports"
	"github.com/slack-go/slack"
)

// webAPI is the part of *slack.Client the surface needs.
type webAPI interface {
	PublishViewContext(ctx context.Context, userID string, view slack.HomeTabViewRequest, hash string) (*slack.ViewResponse, error)
	OpenViewContext(ctx context.Context, triggerID string, view slack.ModalViewRequest) (*slack.ViewResponse, error)
}

type Surface struct {
	api webAPI
}

var _ ports.Surface = (*Surface)(nil)

func NewSurface(api webAPI) *Surface {
	return &Surface{api: api}
}

func (s *Surface) PublishHome(ctx context.Context, userID domain.UserID, view slack.HomeTabViewRequest) error {
	if userID == "" {
		return errors.New("publish home: user id is required")
	}

	if _, err := s.api.PublishViewContext(ctx, string(userID), view, ""); err != nil {
		return fmt.Errorf("views.publish: %w", describe(err))
	}

	return nil
}

func (s *Surface) OpenModal(ctx context.Context, triggerID string, view slack.ModalViewRequest) error {
	if triggerID == "" {
		return errors.New("open modal: trigger id is required")
	}

	if _, err := s.api.OpenViewContext(ctx, triggerID, view); err != nil {
		return fmt.Errorf("views.open: %w", describe(err))
	}

	return nil
}

// describe appends Slack's per-field validation messages, which the plain
// error string leaves out.
func describe(err error) error {
	var slackErr slack.SlackErrorResponse
	if errors.As(err, &slackErr) && len(slackErr.ResponseMetadata.Messages) > 0 {
		return fmt.Errorf("%w: %v", err, slackErr.ResponseMetadata.Messages)
	}
	return err
}
