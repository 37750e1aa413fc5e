package factory

import (
	"time"

	"github.com/ao3101/eurostat/internal/dependencies/mocks"
	"github.com/ao3101/eurostat/internal/services/auth"
	"github.com/ao3101/eurostat/internal/storage/memory"
	"github.com/ao3101/eurostat/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock *mocks.MockClock
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	stats := memory.NewStatsStore()
	users := memory.NewUserStore()
	mockClock := mocks.NewMockClock(time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC))

	app := newWithDependencies(stats, users, mockClock, auth.DefaultConfig(), testutil.NopLogger())

	return &TestApp{
		App:       app,
		MockClock: mockClock,
	}
}
