package chain

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/hksl/internal/domain"
	portmocks "github.com/bnema/hksl/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const passwordKey = "hksl/identities/U024BE7LH/password"

func newChain(t *testing.T) (*Store, *portmocks.MockSecretStore, *portmocks.MockSecretStore) {
	t.Helper()

	primary := portmocks.NewMockSecretStore(t)
	fallback := portmocks.NewMockSecretStore(t)
	store, err := NewStore(primary, fallback)
	require.NoError(t, err)

	return store, primary, fallback
}

func TestNewStoreRejectsNilBackends(t *testing.T) {
	t.Parallel()

	_, err := NewStore(nil, portmocks.NewMockSecretStore(t))
	require.ErrorIs(t, err, errNilPrimary)
	_, err = NewStore(portmocks.NewMockSecretStore(t), nil)
	require.ErrorIs(t, err, errNilFallback)
}

func TestStoreGetPrefersPrimary(t *testing.T) {
	t.Parallel()

	store, primary, _ := newChain(t)
	primary.EXPECT().Get(mock.Anything, passwordKey).Return("from-pass", nil).Once()

	value, err := store.Get(context.Background(), passwordKey)
	require.NoError(t, err)
	assert.Equal(t, "from-pass", value)
}

func TestStoreGetFallsBack(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newChain(t)
	primary.EXPECT().Get(mock.Anything, passwordKey).Return("", domain.ErrSecretNotFound).Once()
	fallback.EXPECT().Get(mock.Anything, passwordKey).Return("from-file", nil).Once()

	value, err := store.Get(context.Background(), passwordKey)
	require.NoError(t, err)
	assert.Equal(t, "from-file", value)
}

func TestStoreGetNotFoundInEither(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newChain(t)
	primary.EXPECT().Get(mock.Anything, passwordKey).Return("", domain.ErrSecretNotFound).Once()
	fallback.EXPECT().Get(mock.Anything, passwordKey).Return("", domain.ErrSecretNotFound).Once()

	_, err := store.Get(context.Background(), passwordKey)
	require.ErrorIs(t, err, domain.ErrSecretNotFound)
}

func TestStoreGetCombinesFailures(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newChain(t)
	primary.EXPECT().Get(mock.Anything, passwordKey).Return("", errors.New("gpg failed")).Once()
	fallback.EXPECT().Get(mock.Anything, passwordKey).Return("", domain.ErrSecretNotFound).Once()

	_, err := store.Get(context.Background(), passwordKey)
	require.Error(t, err)
	assert.ErrorContains(t, err, "gpg failed")
	assert.ErrorContains(t, err, "fallback")
}

func TestStoreGetStopsOnCancellation(t *testing.T) {
	t.Parallel()

	store, primary, _ := newChain(t)
	primary.EXPECT().Get(mock.Anything, passwordKey).Return("", context.Canceled).Once()

	_, err := store.Get(context.Background(), passwordKey)
	require.ErrorIs(t, err, context.Canceled)
}

func TestStorePut(t *testing.T) {
	t.Parallel()

	t.Run("primary succeeds", func(t *testing.T) {
		store, primary, _ := newChain(t)
		primary.EXPECT().Put(mock.Anything, passwordKey, "hunter2").Return(nil).Once()

		require.NoError(t, store.Put(context.Background(), passwordKey, "hunter2"))
	})

	t.Run("falls back", func(t *testing.T) {
		store, primary, fallback := newChain(t)
		primary.EXPECT().Put(mock.Anything, passwordKey, "hunter2").Return(errors.New("pass failed")).Once()
		fallback.EXPECT().Put(mock.Anything, passwordKey, "hunter2").Return(nil).Once()

		require.NoError(t, store.Put(context.Background(), passwordKey, "hunter2"))
	})

	t.Run("both fail", func(t *testing.T) {
		store, primary, fallback := newChain(t)
		primary.EXPECT().Put(mock.Anything, passwordKey, "hunter2").Return(errors.New("pass failed")).Once()
		fallback.EXPECT().Put(mock.Anything, passwordKey, "hunter2").Return(errors.New("disk full")).Once()

		err := store.Put(context.Background(), passwordKey, "hunter2")
		require.Error(t, err)
		assert.ErrorContains(t, err, "pass failed")
		assert.ErrorContains(t, err, "disk full")
	})
}

func TestStoreDeleteClearsBothBackends(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newChain(t)
	primary.EXPECT().Delete(mock.Anything, passwordKey).Return(nil).Once()
	fallback.EXPECT().Delete(mock.Anything, passwordKey).Return(nil).Once()

	require.NoError(t, store.Delete(context.Background(), passwordKey))
}

func TestStoreDeleteToleratesPrimaryFailure(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newChain(t)
	primary.EXPECT().Delete(mock.Anything, passwordKey).Return(errors.New("pass failed")).Once()
	fallback.EXPECT().Delete(mock.Anything, passwordKey).Return(nil).Once()

	require.NoError(t, store.Delete(context.Background(), passwordKey))
}

func TestStoreDeleteReportsFallbackFailure(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newChain(t)
	primary.EXPECT().Delete(mock.Anything, passwordKey).Return(nil).Once()
	fallback.EXPECT().Delete(mock.Anything, passwordKey).Return(errors.New("read-only fs")).Once()

	err := store.Delete(context.Background(), passwordKey)
	require.ErrorContains(t, err, "read-only fs")
}
