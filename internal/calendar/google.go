package calendar

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

const (
	sourceProperty         = "source"
	extendedPropertySource = "dtek-notifier"
	reminderMinutes        = 15
)

// EventParams are optional attributes of a created event.
type EventParams struct {
	ColorID     string
	Description string
}

// Google wraps the Calendar API for listing, deleting, and inserting events.
type Google struct {
	svc *calendar.Service
}

// NewGoogle builds a Calendar API client using a service account JSON key file.
func NewGoogle(ctx context.Context, credentialsPath string) (*Google, error) {
	srv, err := calendar.NewService(ctx,
		option.WithAuthCredentialsFile(option.ServiceAccount, credentialsPath),
		option.WithScopes(calendar.CalendarEventsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("create calendar service: %w", err)
	}

	return &Google{
		svc: srv,
	}, nil
}

// ListOurEvents returns ids of events in [timeMin, timeMax] tagged with our private source property.
func (c *Google) ListOurEvents(ctx context.Context, calendarID string, timeMin, timeMax time.Time) ([]string, error) {
	call := c.svc.Events.List(calendarID).
		Context(ctx).
		TimeMin(timeMin.Format(time.RFC3339)).
		TimeMax(timeMax.Format(time.RFC3339)).
		PrivateExtendedProperty(sourceProperty + "=" + extendedPropertySource).
		SingleEvents(true).
		Fields("items(id)", "nextPageToken")

	ids := make([]string, 0)
	err := call.Pages(ctx, func(page *calendar.Events) error {
		for _, e := range page.Items {
			if e.Id != "" {
				ids = append(ids, e.Id)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return ids, nil
}

// InsertEvent creates a tagged event with a popup reminder and returns its id.
func (c *Google) InsertEvent(ctx context.Context, calendarID, summary string, start, end time.Time, params EventParams) (string, error) {
	ev := &calendar.Event{
		Summary: summary,
		Start: &calendar.EventDateTime{
			DateTime: start.Format(time.RFC3339),
			TimeZone: start.Location().String(),
		},
		End: &calendar.EventDateTime{
			DateTime: end.Format(time.RFC3339),
			TimeZone: end.Location().String(),
		},
		ColorId: params.ColorID,
		ExtendedProperties: &calendar.EventExtendedProperties{
			Private: map[string]string{sourceProperty: extendedPropertySource},
		},
		Description: params.Description,
		Reminders: &calendar.EventReminders{
			Overrides:       []*calendar.EventReminder{{Method: "popup", Minutes: reminderMinutes}},
			ForceSendFields: []string{"UseDefault", "Overrides"},
		},
	}

	created, err := c.svc.Events.Insert(calendarID, ev).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("insert event: %w", err)
	}
	return created.Id, nil
}

func (c *Google) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	err := c.svc.Events.Delete(calendarID, eventID).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("delete event %s: %w", eventID, err)
	}
	return nil
}
