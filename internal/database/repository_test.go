package database

import (
	"context"
	"os"
	"testing"
	"time"

	"go-linkedin-job-source/internal/models"
	"go-linkedin-job-source/internal/protocol"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs against a real Postgres; set TEST_DATABASE_URL to enable.
func connect(t *testing.T) *Repository {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	repo, err := ConnectDB(ctx, url)
	require.NoError(t, err)
	t.Cleanup(repo.Close)

	require.NoError(t, repo.EnsureSchema(ctx))
	_, err = repo.db.Exec(ctx, "TRUNCATE source_records, stream_states")
	require.NoError(t, err)
	return repo
}

func TestRepositoryMirrorsMessages(t *testing.T) {
	repo := connect(t)
	ctx := context.Background()
	at := time.Unix(1700000000, 0)
	repo.now = func() time.Time { return at }

	var w protocol.Writer = repo
	require.NoError(t, w.Write(ctx, protocol.NewRecord(protocol.StreamCompanies, models.Company{Name: "Acme"}, at)))
	require.NoError(t, w.Write(ctx, protocol.NewRecord(protocol.StreamCompanies, models.Company{Name: "Globex"}, at)))
	require.NoError(t, w.Write(ctx, protocol.NewConnectionStatus(true, "")))
	for _, stream := range protocol.Streams {
		require.NoError(t, w.Write(ctx, protocol.NewState(stream)))
	}

	n, err := repo.CountRecords(ctx, protocol.StreamCompanies)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	last, err := repo.LastState(ctx, protocol.StreamJobOpenings)
	require.NoError(t, err)
	assert.True(t, last.Equal(at))
}

func TestConnectDBRejectsBadURL(t *testing.T) {
	_, err := ConnectDB(context.Background(), "://not a url")
	assert.ErrorContains(t, err, "unable to parse database url")
}
