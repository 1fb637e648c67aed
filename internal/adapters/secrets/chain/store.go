package chain

import (
	"context"
	"errors"
	"fmt"

	filestore "github.com/bnema/hksl/internal/adapters/secrets/file"
	passstore "github.com/bnema/hksl/internal/adapters/secrets/pass"
	"github.com/bnema/hksl/internal/domain"
	"github.com/bnema/hksl/internal/ports"
)

// Store tries primary first and falls back to fallback on any failure other
// than cancellation.
type Store struct {
	primary  ports.SecretStore
	fallback ports.SecretStore
}

var _ ports.SecretStore = (*Store)(nil)

var (
	errNilPrimary  = errors.New("primary secret store is nil")
	errNilFallback = errors.New("fallback secret store is nil")
)

func NewStore(primary ports.SecretStore, fallback ports.SecretStore) (*Store, error) {
	if primary == nil {
		return nil, errNilPrimary
	}
	if fallback == nil {
		return nil, errNilFallback
	}

	return &Store{primary: primary, fallback: fallback}, nil
}

// NewPassWithFileFallback prefers pass when it is installed and otherwise
// uses the file store directly.
func NewPassWithFileFallback(fileRoot string) (ports.SecretStore, error) {
	if !passstore.Available() {
		return filestore.NewStore(fileRoot), nil
	}

	return NewStore(passstore.NewStore(), filestore.NewStore(fileRoot))
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	err := s.primary.Put(ctx, key, value)
	if err == nil || isCancellation(err) {
		return err
	}

	if fallbackErr := s.fallback.Put(ctx, key, value); fallbackErr != nil {
		return fmt.Errorf("put %q: primary: %w; fallback: %w", key, err, fallbackErr)
	}

	return nil
}

// Get reports domain.ErrSecretNotFound only when neither backend has key.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	value, err := s.primary.Get(ctx, key)
	if err == nil {
		return value, nil
	}
	if isCancellation(err) {
		return "", err
	}

	value, fallbackErr := s.fallback.Get(ctx, key)
	if fallbackErr == nil {
		return value, nil
	}
	if errors.Is(err, domain.ErrSecretNotFound) && errors.Is(fallbackErr, domain.ErrSecretNotFound) {
		return "", fmt.Errorf("secret %q: %w", key, domain.ErrSecretNotFound)
	}

	return "", fmt.Errorf("get %q: primary: %w; fallback: %w", key, err, fallbackErr)
}

// Delete removes key from both backends so a stale fallback copy never
// resurfaces. A primary failure alone is tolerated.
func (s *Store) Delete(ctx context.Context, key string) error {
	err := s.primary.Delete(ctx, key)
	if isCancellation(err) {
		return err
	}

	fallbackErr := s.fallback.Delete(ctx, key)
	switch {
	case fallbackErr == nil:
		return nil
	case err != nil:
		return fmt.Errorf("delete %q: primary: %w; fallback: %w", key, err, fallbackErr)
	default:
		return fmt.Errorf("delete %q: fallback: %w", key, fallbackErr)
	}
}

func isCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
