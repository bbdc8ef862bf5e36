package repositories_test

import (
	"context"
	"io"
	"testing"

	"github.com/jkivisto/maturemark/internal/kvstore"
	"github.com/jkivisto/maturemark/internal/testhelpers"
	"github.com/stretchr/testify/require"
)

// newTestStore creates a new in-memory key-value store for testing purposes.
func newTestStore(t *testing.T) *kvstore.Store {
	t.Helper()

	store, err := kvstore.Open(context.Background(), ":memory:", testhelpers.NewLogger(io.Discard))
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return store
}
