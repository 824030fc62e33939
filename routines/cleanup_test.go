package routines

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CorrelAid/compress_uploader/inits"
	"github.com/CorrelAid/compress_uploader/models"
	"github.com/CorrelAid/compress_uploader/operations"
)

func TestPurgeExpired(t *testing.T) {
	db, err := inits.NewHistoryDB()
	require.NoError(t, err)

	now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	_, err = operations.InsertSubmission(db, models.Submission{Message: "old"}, now.Add(-2*time.Hour), time.Hour)
	require.NoError(t, err)
	_, err = operations.InsertSubmission(db, models.Submission{Message: "older"}, now.Add(-3*time.Hour), time.Hour)
	require.NoError(t, err)
	_, err = operations.InsertSubmission(db, models.Submission{Message: "fresh"}, now, time.Hour)
	require.NoError(t, err)

	n, err := PurgeExpired(db, now)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	left, err := operations.ListSubmissions(db, "", 0)
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, "fresh", left[0].Message)
}

func TestStartCleanupRoutine_StopsOnCancel(t *testing.T) {
	db, err := inits.NewHistoryDB()
	require.NoError(t, err)

	_, err = operations.InsertSubmission(db, models.Submission{Message: "gone"}, time.Now().Add(-time.Hour), time.Minute)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		StartCleanupRoutine(ctx, db, time.Hour, zerolog.Nop())
		close(done)
	}()

	require.Eventually(t, func() bool {
		left, _ := operations.ListSubmissions(db, "", 0)
		return len(left) == 0
	}, time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("cleanup routine did not stop")
	}
}
