package schedule

import (
	"errors"
	"time"
)

var ErrMalformedPayload = errors.New("malformed schedule payload")

// Report is everything a renderer needs for one monitoring cycle.
type Report struct {
	QueueID         string      `json:"queue_id"`
	Today           []Interval  `json:"today"`
	Tomorrow        []Interval  `json:"tomorrow"`
	HasTomorrowData bool        `json:"has_tomorrow_data"`
	PowerStatus     PowerStatus `json:"power_status"`
	TodayDate       time.Time   `json:"today_date"`
	TomorrowDate    time.Time   `json:"tomorrow_date"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// BuildReport combines queue lookup, today's and tomorrow's intervals and the live status at now.
// Missing schedule parts are not errors; only a payload without the house data object is rejected.
func BuildReport(p *Payload, house string, now time.Time, loc *time.Location) (Report, error) {
	if p == nil || p.Data == nil {
		return Report{}, ErrMalformedPayload
	}

	local := now.In(loc)
	today := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	res := Report{
		QueueID:      QueueID(p, house),
		Today:        []Interval{},
		Tomorrow:     []Interval{},
		TodayDate:    today,
		TomorrowDate: today.AddDate(0, 0, 1),
		UpdatedAt:    local,
	}

	if key, ok := p.TodayKey(); ok {
		res.Today, _ = DayIntervals(p, key, res.QueueID)
	}
	if key, ok := p.TomorrowKey(); ok {
		res.Tomorrow, res.HasTomorrowData = DayIntervals(p, key, res.QueueID)
	}

	res.PowerStatus = EvaluatePowerStatus(res.Today, now, loc)
	return res, nil
}

// TodayText renders today's schedule.
func (r Report) TodayText() string {
	return FormatIntervals(r.Today, true, true)
}

// TomorrowText renders tomorrow's schedule or the not-yet-published notice.
func (r Report) TomorrowText() string {
	if !r.HasTomorrowData {
		return TextTomorrowNotReady
	}
	return FormatIntervals(r.Tomorrow, true, false)
}
