package operations

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CorrelAid/compress_uploader/inits"
	"github.com/CorrelAid/compress_uploader/models"
)

func TestInsertAndListSubmissions(t *testing.T) {
	db, err := inits.NewHistoryDB()
	require.NoError(t, err)

	base := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	first, err := InsertSubmission(db, models.Submission{Outcome: "success", Message: "one"}, base, time.Hour)
	require.NoError(t, err)
	_, err = InsertSubmission(db, models.Submission{Outcome: "application_error", Error: "two"}, base.Add(time.Second), time.Hour)
	require.NoError(t, err)
	_, err = InsertSubmission(db, models.Submission{Outcome: "success", Message: "three"}, base.Add(2*time.Second), time.Hour)
	require.NoError(t, err)

	assert.NotEmpty(t, first.ID)
	assert.Equal(t, "2026-10-15T12:00:00.000000000Z", first.Time)
	assert.Equal(t, "2026-10-15T13:00:00.000000000Z", first.Expiry)

	all, err := ListSubmissions(db, "", 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "three", all[0].Message)
	assert.Equal(t, "one", all[2].Message)

	ok, err := ListSubmissions(db, "success", 1)
	require.NoError(t, err)
	require.Len(t, ok, 1)
	assert.Equal(t, "three", ok[0].Message)

	got, found, err := GetSubmission(db, first.ID)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, first, got)

	_, found, err = GetSubmission(db, "nope")
	require.NoError(t, err)
	assert.False(t, found)
}
