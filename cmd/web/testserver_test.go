package main

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/jkivisto/maturemark/internal/assessments"
	"github.com/jkivisto/maturemark/internal/kvstore"
	"github.com/jkivisto/maturemark/internal/repositories"
	"github.com/jkivisto/maturemark/internal/testhelpers"
	"github.com/stretchr/testify/require"
)

// newTestServer starts the API against a fresh in-memory database.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	store, err := kvstore.Open(context.Background(), ":memory:", testhelpers.NewLogger(io.Discard))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	logger := testhelpers.NewLogger(io.Discard)
	projects := repositories.NewProjectRepository(store, logger)
	app := application{
		logger:      logger,
		projects:    projects,
		assessments: assessments.NewManager(projects, logger),
	}

	server := httptest.NewServer(app.routes())
	t.Cleanup(server.Close)
	return server
}
