package schedule

import (
	"strconv"
	"strings"
)

const (
	// DaySeconds is the distance between two consecutive day keys.
	DaySeconds = 86400

	UnknownQueue = "Невідомо"
)

type (
	// Payload is the "getHomeNum" response of the provider site.
	Payload struct {
		Result          bool             `json:"result"`
		Data            map[string]House `json:"data"`
		Fact            *Fact            `json:"fact"`
		UpdateTimestamp string           `json:"updateTimestamp"`
	}

	// House is the per-address part of the payload, keyed by house number.
	House struct {
		SubType       string   `json:"sub_type"`
		StartDate     string   `json:"start_date"`
		EndDate       string   `json:"end_date"`
		Type          string   `json:"type"`
		SubTypeReason []string `json:"sub_type_reason"`
	}

	// Fact holds the published hourly tables.
	// Data is keyed by day key (unix seconds as string), then by queue id.
	Fact struct {
		Today  int64                           `json:"today"`
		Update string                          `json:"update"`
		Data   map[string]map[string]HourTable `json:"data"`
	}
)

// TodayKey returns the day key of today's table and false when the payload has none.
func (p *Payload) TodayKey() (string, bool) {
	if p == nil || p.Fact == nil || p.Fact.Today == 0 {
		return "", false
	}
	return strconv.FormatInt(p.Fact.Today, 10), true
}

// TomorrowKey returns today's key shifted by one day.
func (p *Payload) TomorrowKey() (string, bool) {
	if _, ok := p.TodayKey(); !ok {
		return "", false
	}
	return strconv.FormatInt(p.Fact.Today+DaySeconds, 10), true
}

// Day returns the tables published for a day key.
func (p *Payload) Day(key string) (map[string]HourTable, bool) {
	if p == nil || p.Fact == nil || p.Fact.Data == nil {
		return nil, false
	}
	day, ok := p.Fact.Data[key]
	return day, ok
}

// QueueID returns the queue assigned to a house, joining several reasons with ", ".
func QueueID(p *Payload, house string) string {
	if p == nil {
		return UnknownQueue
	}
	h, ok := p.Data[house]
	if !ok || len(h.SubTypeReason) == 0 {
		return UnknownQueue
	}

	res := strings.Join(h.SubTypeReason, ", ")
	if res == "" {
		return UnknownQueue
	}
	return res
}

// DayIntervals runs the slot pipeline over one day's table of a queue.
// It reports whether the day key is present at all; a missing queue table yields no intervals.
func DayIntervals(p *Payload, dayKey, queue string) ([]Interval, bool) {
	day, ok := p.Day(dayKey)
	if !ok {
		return []Interval{}, false
	}
	hours, ok := day[queue]
	if !ok {
		return []Interval{}, true
	}
	return ExtractIntervals(EncodeSlots(hours)), true
}
