package application

import (
	"sync"
	"testing"
	"time"

	"github.com/bnema/hksl/internal/catalog"
	"github.com/bnema/hksl/internal/catalog/catalogtest"
	"github.com/bnema/hksl/internal/domain"
	"github.com/bnema/hksl/internal/ports/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func mockAnyContext() interface{} {
	return mock.Anything
}

type manualClock struct {
	mu  sync.Mutex
	now time.Time
}

func newManualClock() *manualClock {
	return &manualClock{now: time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type harness struct {
	identities *mocks.MockIdentityRepository
	game       *mocks.MockGameAPI
	surface    *mocks.MockSurface
	activity   *ActivityTracker
	clock      *manualClock
	home       *HomeService
	logger     *zap.Logger
	logs       *observer.ObservedLogs
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	resolver, err := catalog.New(catalogtest.Manifest())
	require.NoError(t, err)

	h := &harness{
		identities: mocks.NewMockIdentityRepository(t),
		game:       mocks.NewMockGameAPI(t),
		surface:    mocks.NewMockSurface(t),
		clock:      newManualClock(),
	}
	core, logs := observer.New(zapcore.DebugLevel)
	h.logger = zap.New(core)
	h.logs = logs
	h.activity = NewActivityTracker(h.clock)
	h.home = NewHomeService(h.identities, h.game, h.surface, resolver, nil)

	return h
}

func (h *harness) router(policy domain.UnknownUserPolicy) *Router {
	return NewRouter(RouterDeps{
		Home:       h.home,
		Identities: h.identities,
		Game:       h.game,
		Surface:    h.surface,
		Activity:   h.activity,
		Policy:     policy,
		Logger:     h.logger,
	})
}

// expectRender wires a successful stead fetch and home publish for identity.
func (h *harness) expectRender(identity domain.Identity) {
	h.game.EXPECT().Stead(mockAnyContext(), identity.Credentials()).Return(sampleStead(), nil).Once()
	h.surface.EXPECT().PublishHome(mockAnyContext(), identity.UserID, mock.Anything).Return(nil).Once()
}

func sampleStead() domain.Stead {
	return domain.Stead{
		Plots:     []domain.Plot{{Kind: domain.PlantDirt}},
		Inventory: domain.Inventory{{Item: "bbc_seed", Count: 2}},
	}
}

func alice() domain.Identity {
	return domain.Identity{UserID: "U1", Username: "alice", Password: "hunter2", LastSentTo: "bob"}
}

type ackRecorder struct {
	calls  int
	errors FieldErrors
}

func (a *ackRecorder) ack(errs FieldErrors) {
	a.calls++
	a.errors = errs
}
