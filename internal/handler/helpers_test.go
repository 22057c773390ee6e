package handler_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/sakif/election-manager/internal/auth"
	"github.com/sakif/election-manager/internal/generator"
	"github.com/sakif/election-manager/internal/repository/sqlite"
	"github.com/sakif/election-manager/internal/service"
)

// testEnv bundles the services the handlers depend on, all backed by one
// in-memory database. Handlers are exercised against the real service and
// repository layers — only the AI provider is mocked.
type testEnv struct {
	auth       *service.AuthService
	candidates *service.CandidateService
	campaigns  *service.CampaignService
	programs   *service.ProgramService
	stats      *service.StatsService
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestEnv builds the full service stack over a fresh :memory: database.
// gen may be nil to model the missing-API-key deployment.
func newTestEnv(t *testing.T, gen generator.TextGenerator) *testEnv {
	t.Helper()

	db, err := sqlite.New(":memory:")
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	logger := testLogger()
	passwords := auth.NewPasswordServiceForTest(4)

	return &testEnv{
		auth:       service.NewAuthService(db, passwords, auth.NewUUIDTokens(), logger),
		candidates: service.NewCandidateService(db, logger),
		campaigns:  service.NewCampaignService(db, logger),
		programs:   service.NewProgramService(db, gen, logger),
		stats:      service.NewStatsService(db, logger),
	}
}
