package operations

import (
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-memdb"

	"github.com/CorrelAid/compress_uploader/inits"
	"github.com/CorrelAid/compress_uploader/models"
)

// InsertSubmission stores s, filling in ID, Time and Expiry when empty.
func InsertSubmission(db *memdb.MemDB, s models.Submission, now time.Time, ttl time.Duration) (models.Submission, error) {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.Time == "" {
		s.Time = now.UTC().Format(models.TimeLayout)
	}
	if s.Expiry == "" {
		s.Expiry = now.Add(ttl).UTC().Format(models.TimeLayout)
	}

	txn := db.Txn(true)
	defer txn.Abort()

	record := s
	if err := txn.Insert(inits.SubmissionTable, &record); err != nil {
		return models.Submission{}, err
	}

	txn.Commit()

	return s, nil
}

// ListSubmissions returns up to limit records, newest first. A limit of zero
// or less returns all of them. An outcome filter of "" matches everything.
func ListSubmissions(db *memdb.MemDB, outcome string, limit int) ([]models.Submission, error) {
	txn := db.Txn(false)
	defer txn.Abort()

	it, err := txn.GetReverse(inits.SubmissionTable, "time")
	if err != nil {
		return nil, err
	}

	out := []models.Submission{}
	for obj := it.Next(); obj != nil; obj = it.Next() {
		s := obj.(*models.Submission)
		if outcome != "" && s.Outcome != outcome {
			continue
		}
		out = append(out, *s)
		if limit > 0 && len(out) == limit {
			break
		}
	}

	return out, nil
}

// GetSubmission looks a record up by ID. The bool is false when absent.
func GetSubmission(db *memdb.MemDB, id string) (models.Submission, bool, error) {
	txn := db.Txn(false)
	defer txn.Abort()

	obj, err := txn.First(inits.SubmissionTable, "id", id)
	if err != nil {
		return models.Submission{}, false, err
	}
	if obj == nil {
		return models.Submission{}, false, nil
	}

	return *obj.(*models.Submission), true, nil
}
