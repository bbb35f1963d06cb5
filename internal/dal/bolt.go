package dal

import (
	"errors"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

type (
	Clock interface {
		Now() time.Time
	}

	BoltDB struct {
		db    *bbolt.DB
		clock Clock
	}
)

// NewBoltDB wraps an opened database. Buckets are expected to be created by migrations.
func NewBoltDB(db *bbolt.DB, clock Clock) (*BoltDB, error) {
	if db == nil {
		return nil, errors.New("bolt db is nil")
	}

	err := db.View(func(tx *bbolt.Tx) error {
		for _, name := range []string{messagesBucket, reportsBucket} {
			if tx.Bucket([]byte(name)) == nil {
				return fmt.Errorf("bucket %s not found", name)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("check buckets: %w", err)
	}

	return &BoltDB{db: db, clock: clock}, nil
}

func (s *BoltDB) Close() error {
	return s.db.Close()
}

func i64tob(id int64) []byte {
	return []byte(fmt.Sprintf("%d", id))
}
