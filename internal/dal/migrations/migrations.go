package migrations

import (
	"fmt"
	"log/slog"
	"slices"
	"time"

	"go.etcd.io/bbolt"

	"github.com/Roma7-7-7/dtek-notifier/internal/dal/migrations/v1"
	"github.com/Roma7-7-7/dtek-notifier/internal/dal/migrations/v2"
)

// Migration is a single versioned schema change
type Migration interface {
	Version() int
	Description() string
	Up(db *bbolt.DB) error
}

const migrationsBucket = "migrations"

var registeredMigrations = []Migration{
	v1.New(),
	v2.New(),
}

// RunMigrations applies pending migrations in version order and records each one
func RunMigrations(db *bbolt.DB, log *slog.Logger) error {
	log = log.With("component", "migrations")

	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(migrationsBucket))
		return err
	}); err != nil {
		return fmt.Errorf("ensure migrations bucket: %w", err)
	}

	applied, err := getAppliedMigrations(db)
	if err != nil {
		return fmt.Errorf("get applied migrations: %w", err)
	}

	pending := slices.Clone(registeredMigrations)
	slices.SortFunc(pending, func(a, b Migration) int {
		return a.Version() - b.Version()
	})

	appliedCount := 0
	for _, m := range pending {
		version := m.Version()
		if appliedAt, ok := applied[version]; ok {
			log.Debug("skipping applied migration", "version", version, "applied_at", appliedAt.Format(time.RFC3339))
			continue
		}

		log.Info("applying migration", "version", version, "description", m.Description())
		start := time.Now()
		if err := m.Up(db); err != nil {
			return fmt.Errorf("migration v%d: %w", version, err)
		}
		if err := recordMigration(db, version, time.Now()); err != nil {
			return fmt.Errorf("record migration v%d: %w", version, err)
		}
		appliedCount++
		log.Info("migration applied", "version", version, "duration", time.Since(start))
	}

	if appliedCount == 0 {
		log.Info("no pending migrations")
	}
	return nil
}

func getAppliedMigrations(db *bbolt.DB) (map[int]time.Time, error) {
	applied := make(map[int]time.Time)

	err := db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(migrationsBucket)).ForEach(func(k, v []byte) error {
			var version int
			if _, err := fmt.Sscanf(string(k), "v%d", &version); err != nil {
				return fmt.Errorf("parse version from key %s: %w", k, err)
			}

			appliedAt, err := time.Parse(time.RFC3339, string(v))
			if err != nil {
				return fmt.Errorf("parse timestamp for v%d: %w", version, err)
			}

			applied[version] = appliedAt
			return nil
		})
	})

	return applied, err
}

func recordMigration(db *bbolt.DB, version int, appliedAt time.Time) error {
	return db.Update(func(tx *bbolt.Tx) error {
		key := []byte(fmt.Sprintf("v%d", version))
		return tx.Bucket([]byte(migrationsBucket)).Put(key, []byte(appliedAt.Format(time.RFC3339)))
	})
}
