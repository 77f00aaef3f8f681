package factory

import (
	"time"

	"github.com/garrastaldea/bolilla/internal/dependencies/mocks"
	"github.com/garrastaldea/bolilla/internal/services/auth"
	"github.com/garrastaldea/bolilla/internal/services/leaderboard"
	"github.com/garrastaldea/bolilla/internal/storage/memory"
	"github.com/garrastaldea/bolilla/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	return NewTestAppWithConfig(auth.DefaultConfig(), leaderboard.Config{})
}

// NewTestAppWithConfig creates a test App with explicit service configuration
func NewTestAppWithConfig(authCfg auth.Config, boardCfg leaderboard.Config) *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockClock, mockRandom, authCfg, boardCfg, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}
