package ports

import (
	"context"

	"github.com/bnema/hksl/internal/domain"
)

type GameAPI interface {
	Manifest(ctx context.Context) (domain.Manifest, error)
	Stead(ctx context.Context, creds domain.Credentials) (domain.Stead, error)
	TestAuth(ctx context.Context, creds domain.Credentials) (domain.Verdict, error)
	Signup(ctx context.Context, creds domain.Credentials) (domain.Verdict, error)
	Gib(ctx context.Context, creds domain.Credentials, transfer domain.Transfer) (domain.Verdict, error)
	UseItem(ctx context.Context, creds domain.Credentials, item domain.ItemID) (domain.Result, error)
	Craft(ctx context.Context, creds domain.Credentials, plotIndex, recipeIndex int) (domain.Result, error)
}
