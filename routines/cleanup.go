package routines

import (
	"context"
	"time"

	"github.com/hashicorp/go-memdb"
	"github.com/rs/zerolog"

	"github.com/CorrelAid/compress_uploader/inits"
	"github.com/CorrelAid/compress_uploader/models"
)

// StartCleanupRoutine purges expired submissions once immediately and then
// on every tick of interval until ctx is done.
func StartCleanupRoutine(ctx context.Context, db *memdb.MemDB, interval time.Duration, logger zerolog.Logger) {
	purge := func() {
		n, err := PurgeExpired(db, time.Now())
		if err != nil {
			logger.Error().Err(err).Msg("history cleanup failed")
			return
		}
		if n > 0 {
			logger.Info().Int("deleted", n).Msg("deleted expired submissions")
		}
	}

	purge()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			purge()
		}
	}
}

// PurgeExpired deletes every submission whose expiry is before now and
// returns how many were removed.
func PurgeExpired(db *memdb.MemDB, now time.Time) (int, error) {
	cutoff := now.UTC().Format(models.TimeLayout)

	txn := db.Txn(true)
	defer txn.Abort()

	it, err := txn.Get(inits.SubmissionTable, "expiry")
	if err != nil {
		return 0, err
	}

	// collect first: deleting while iterating the same index is not allowed
	var expired []*models.Submission
	for obj := it.Next(); obj != nil; obj = it.Next() {
		s := obj.(*models.Submission)
		if s.Expiry >= cutoff {
			break
		}
		expired = append(expired, s)
	}

	for _, s := range expired {
		if err := txn.Delete(inits.SubmissionTable, s); err != nil {
			return 0, err
		}
	}

	txn.Commit()

	return len(expired), nil
}
