package ports

import (
	"context"

	"github.com/bnema/hksl/internal/domain"
	"github.com/slack-go/slack"
)

// Surface publishes views to the chat platform.
type Surface interface {
	PublishHome(ctx context.Context, userID domain.UserID, view slack.HomeTabViewRequest) error
	OpenModal(ctx context.Context, triggerID string, view slack.ModalViewRequest) error
}
