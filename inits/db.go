package inits

import (
	"fmt"

	"github.com/hashicorp/go-memdb"
)

const SubmissionTable = "submission"

// NewHistoryDB creates the in-memory store for submission records.
func NewHistoryDB() (*memdb.MemDB, error) {
	schema := &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			SubmissionTable: {
				Name: SubmissionTable,
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:         "id",
						Unique:       true,
						Indexer:      &memdb.StringFieldIndex{Field: "ID"},
						AllowMissing: false,
					},
					"time": {
						Name:         "time",
						Unique:       false,
						Indexer:      &memdb.StringFieldIndex{Field: "Time"},
						AllowMissing: false,
					},
					"expiry": {
						Name:         "expiry",
						Unique:       false,
						Indexer:      &memdb.StringFieldIndex{Field: "Expiry"},
						AllowMissing: false,
					},
					"outcome": {
						Name:         "outcome",
						Unique:       false,
						Indexer:      &memdb.StringFieldIndex{Field: "Outcome"},
						AllowMissing: false,
					},
				},
			},
		},
	}

	db, err := memdb.NewMemDB(schema)
	if err != nil {
		return nil, fmt.Errorf("failed to create history db: %w", err)
	}

	return db, nil
}
