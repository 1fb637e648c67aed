package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/hksl/internal/catalog"
	"github.com/bnema/hksl/internal/domain"
	"github.com/bnema/hksl/internal/ports"
	"github.com/bnema/hksl/internal/view"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

// HomeService renders the App Home. It is also the session gate: users
// without a linked game account resolve to a nil identity and only ever see
// the sign-in view.
type HomeService struct {
	identities ports.IdentityRepository
	game       ports.GameAPI
	surface    ports.Surface
	resolver   *catalog.Resolver
	logger     *zap.Logger
}

func NewHomeService(identities ports.IdentityRepository, game ports.GameAPI, surface ports.Surface, resolver *catalog.Resolver, logger *zap.Logger) *HomeService {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &HomeService{
		identities: identities,
		game:       game,
		surface:    surface,
		resolver:   resolver,
		logger:     logger,
	}
}

func (s *HomeService) Resolver() *catalog.Resolver {
	return s.resolver
}

// Identity returns nil without error when userID has no linked account.
func (s *HomeService) Identity(ctx context.Context, userID domain.UserID) (*domain.Identity, error) {
	identity, err := s.identities.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrIdentityNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get identity %s: %w", userID, err)
	}

	return &identity, nil
}

// Build fetches a fresh stead for identity and builds its view. A nil
// identity builds the sign-in view without touching the game API.
func (s *HomeService) Build(ctx context.Context, identity *domain.Identity) (slack.HomeTabViewRequest, error) {
	if identity == nil {
		return view.BuildHome(nil, s.resolver, nil)
	}

	stead, err := s.game.Stead(ctx, identity.Credentials())
	if err != nil {
		return slack.HomeTabViewRequest{}, fmt.Errorf("fetch stead for %s: %w", identity.UserID, err)
	}

	home, err := view.BuildHome(identity, s.resolver, &stead)
	if err != nil {
		return slack.HomeTabViewRequest{}, fmt.Errorf("build home for %s: %w", identity.UserID, err)
	}

	return home, nil
}

func (s *HomeService) Render(ctx context.Context, userID domain.UserID) error {
	identity, err := s.Identity(ctx, userID)
	if err != nil {
		return err
	}

	return s.render(ctx, userID, identity)
}

func (s *HomeService) RenderIdentity(ctx context.Context, identity domain.Identity) error {
	return s.render(ctx, identity.UserID, &identity)
}

func (s *HomeService) render(ctx context.Context, userID domain.UserID, identity *domain.Identity) error {
	home, err := s.Build(ctx, identity)
	if err != nil {
		return err
	}

	if err := s.surface.PublishHome(ctx, userID, home); err != nil {
		return fmt.Errorf("publish home for %s: %w", userID, err)
	}

	s.logger.Debug("home published", zap.String("user_id", string(userID)), zap.Bool("signed_in", identity != nil))
	return nil
}
