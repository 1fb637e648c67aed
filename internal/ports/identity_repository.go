package ports

import (
	"context"

	"github.com/bnema/hksl/internal/domain"
)

type IdentityRepository interface {
	GetByUserID(ctx context.Context, id domain.UserID) (domain.Identity, error)
	FindByUsername(ctx context.Context, username string) (domain.Identity, error)
	// Create stores identity, replacing any identity already linked to the
	// same user id.
	Create(ctx context.Context, identity domain.Identity) error
	UpdateLastSentTo(ctx context.Context, id domain.UserID, recipient string) error
}
