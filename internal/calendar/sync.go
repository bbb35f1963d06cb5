package calendar

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Roma7-7-7/dtek-notifier/internal/schedule"
)

//go:generate mockgen -package mocks -destination mocks/api.go . API

// Calendar event color IDs (Google Calendar palette)
const (
	colorIDOff      = "11" // Tomato
	colorIDPossible = "5"  // Banana
)

const (
	summaryOff      = "Power off"
	summaryPossible = "Possible outage"
)

type API interface {
	ListOurEvents(ctx context.Context, calendarID string, timeMin, timeMax time.Time) ([]string, error)
	InsertEvent(ctx context.Context, calendarID, summary string, start, end time.Time, params EventParams) (string, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}

type SyncConfig struct {
	CalendarID   string
	SyncPossible bool
}

// SyncService mirrors the outage intervals of a report to a calendar.
type SyncService struct {
	api  API
	conf SyncConfig
	loc  *time.Location
	log  *slog.Logger
}

func NewSyncService(api API, conf SyncConfig, loc *time.Location, log *slog.Logger) *SyncService {
	return &SyncService{
		api:  api,
		conf: conf,
		loc:  loc,
		log:  log.With("component", "calendar_sync"),
	}
}

// Sync deletes our events from the start of today to the end of tomorrow and recreates them from the report.
func (s *SyncService) Sync(ctx context.Context, report schedule.Report) error {
	today := report.TodayDate.In(s.loc)
	timeMin := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, s.loc)
	timeMax := timeMin.AddDate(0, 0, 2).Add(-time.Second)

	s.log.InfoContext(ctx, "Starting calendar sync", "timeMin", timeMin.Format(time.RFC3339), "timeMax", timeMax.Format(time.RFC3339))

	ids, err := s.api.ListOurEvents(ctx, s.conf.CalendarID, timeMin, timeMax)
	if err != nil {
		return fmt.Errorf("calendar sync: list: %w", err)
	}
	for _, id := range ids {
		if err := s.api.DeleteEvent(ctx, s.conf.CalendarID, id); err != nil {
			return fmt.Errorf("calendar sync: delete %s: %w", id, err)
		}
	}

	toCreate := s.buildEvents(report.Today, timeMin, report.QueueID)
	if report.HasTomorrowData {
		toCreate = append(toCreate, s.buildEvents(report.Tomorrow, timeMin.AddDate(0, 0, 1), report.QueueID)...)
	}

	for _, ev := range toCreate {
		if _, err := s.api.InsertEvent(ctx, s.conf.CalendarID, ev.summary, ev.start, ev.end, ev.params); err != nil {
			return fmt.Errorf("calendar sync: insert: %w", err)
		}
	}

	s.log.InfoContext(ctx, "Calendar sync completed", "deleted", len(ids), "created", len(toCreate))
	return nil
}

// CleanupStale deletes our events of the past lookbackDays, today excluded.
func (s *SyncService) CleanupStale(ctx context.Context, now time.Time, lookbackDays int) error {
	local := now.In(s.loc)
	todayStart := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, s.loc)
	timeMin := todayStart.AddDate(0, 0, -lookbackDays)
	timeMax := todayStart.Add(-time.Second)

	ids, err := s.api.ListOurEvents(ctx, s.conf.CalendarID, timeMin, timeMax)
	if err != nil {
		return fmt.Errorf("calendar cleanup: list: %w", err)
	}
	for _, id := range ids {
		if err := s.api.DeleteEvent(ctx, s.conf.CalendarID, id); err != nil {
			return fmt.Errorf("calendar cleanup: delete %s: %w", id, err)
		}
	}

	s.log.InfoContext(ctx, "Calendar stale cleanup completed", "deleted", len(ids))
	return nil
}

type event struct {
	summary string
	start   time.Time
	end     time.Time
	params  EventParams
}

func (s *SyncService) buildEvents(intervals []schedule.Interval, day time.Time, queueID string) []event {
	var res []event
	for _, i := range intervals {
		var summary, colorID string
		switch i.Type {
		case schedule.IntervalOff:
			summary, colorID = summaryOff, colorIDOff
		case schedule.IntervalPossible:
			if !s.conf.SyncPossible {
				continue
			}
			summary, colorID = summaryPossible, colorIDPossible
		default:
			continue
		}

		start, errStart := parseTimeInDay(i.Start, day, s.loc)
		end, errEnd := parseTimeInDay(i.End, day, s.loc)
		if errStart != nil || errEnd != nil {
			s.log.Warn("Skipping interval with malformed bounds", "start", i.Start, "end", i.End)
			continue
		}

		res = append(res, event{
			summary: summary,
			start:   start,
			end:     end,
			params: EventParams{
				ColorID:     colorID,
				Description: fmt.Sprintf("DTEK outage schedule, queue %s, %s", queueID, day.Format("02.01.2006")),
			},
		})
	}
	return res
}

// parseTimeInDay returns the "15:04" time on day in loc.
// "24:00" is midnight at the start of the next day.
func parseTimeInDay(s string, day time.Time, loc *time.Location) (time.Time, error) {
	if s == "24:00" {
		return time.Date(day.Year(), day.Month(), day.Day()+1, 0, 0, 0, 0, loc), nil
	}
	t, err := time.ParseInLocation("15:04", s, loc)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, loc), nil
}
