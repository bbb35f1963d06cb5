package dal

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	"go.etcd.io/bbolt"

	"github.com/Roma7-7-7/dtek-notifier/internal/schedule"
)

const (
	reportsBucket    = "reports"
	currentReportKey = "current"
)

// ReportSnapshot is the last published interval set.
// Only one snapshot is kept, the previous one is overwritten.
type ReportSnapshot struct {
	QueueID         string              `json:"queue_id"`
	Date            string              `json:"date"`
	Today           []schedule.Interval `json:"today"`
	Tomorrow        []schedule.Interval `json:"tomorrow"`
	HasTomorrowData bool                `json:"has_tomorrow_data"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

func NewReportSnapshot(r schedule.Report) ReportSnapshot {
	return ReportSnapshot{
		QueueID:         r.QueueID,
		Date:            DateByTime(r.TodayDate).ToKey(),
		Today:           r.Today,
		Tomorrow:        r.Tomorrow,
		HasTomorrowData: r.HasTomorrowData,
	}
}

// SameIntervals reports whether both snapshots describe the same schedule, ignoring when they were stored.
func (r ReportSnapshot) SameIntervals(other ReportSnapshot) bool {
	return r.QueueID == other.QueueID &&
		r.Date == other.Date &&
		r.HasTomorrowData == other.HasTomorrowData &&
		slices.Equal(r.Today, other.Today) &&
		slices.Equal(r.Tomorrow, other.Tomorrow)
}

func (s *BoltDB) GetReportSnapshot() (ReportSnapshot, bool, error) {
	var res ReportSnapshot
	found := false

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket([]byte(reportsBucket)).Get([]byte(currentReportKey))
		if data == nil {
			return nil
		}
		found = true
		return json.Unmarshal(data, &res)
	})

	return res, found, err
}

func (s *BoltDB) PutReportSnapshot(r ReportSnapshot) error {
	r.UpdatedAt = s.clock.Now()

	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(reportsBucket))
		if b == nil {
			return errors.New("reports bucket not found")
		}

		data, err := json.Marshal(&r)
		if err != nil {
			return fmt.Errorf("marshal report snapshot: %w", err)
		}
		return b.Put([]byte(currentReportKey), data)
	})
}
