package ports

import "context"

// SecretStore holds game passwords out of the identity file. Get returns an
// error wrapping domain.ErrSecretNotFound when key was never stored.
type SecretStore interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
