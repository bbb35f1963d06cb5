package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	TextPowerOn         = "🟢 <b>ЕЛЕКТРИКА Є</b>"
	TextPowerOff        = "🔴 <b>ЕЛЕКТРИКИ НЕМАЄ</b>"
	TextNoMoreOutages   = "✅ Більше відключень сьогодні не заплановано"
	textPowerOnIn       = "⏱ Буде увімкнено через: "
	textPowerOffIn      = "⏱ Буде вимкнено через: "
	minutesPerHour      = 60
	minutesPerDay       = HoursPerDay * minutesPerHour
	endOfDay            = "24:00"
	noNextEventDuration = -1
)

// PowerStatus is the live state derived from today's schedule at a given instant.
type PowerStatus struct {
	HasPower      bool   `json:"has_power"`
	StatusText    string `json:"status_text"`
	NextEventText string `json:"next_event_text"`
	// MinutesToNextEvent is the time until power returns or goes off, -1 when nothing is scheduled.
	MinutesToNextEvent int `json:"minutes_to_next_event"`
}

// EvaluatePowerStatus derives the power state at now, converted to loc.
// Only off intervals are considered; possible outages never change the status.
// An interval contains now when start <= now < end.
func EvaluatePowerStatus(intervals []Interval, now time.Time, loc *time.Location) PowerStatus {
	local := now.In(loc)
	current := local.Hour()*minutesPerHour + local.Minute()

	off := FilterIntervals(intervals, IntervalOff)
	if len(off) == 0 {
		return PowerStatus{
			HasPower:           true,
			StatusText:         TextPowerOn,
			NextEventText:      TextNoOutages,
			MinutesToNextEvent: noNextEventDuration,
		}
	}

	for _, i := range off {
		start, end := timeToMinutes(i.Start), timeToMinutes(i.End)
		if i.End == endOfDay {
			end = minutesPerDay
		}
		if current >= start && current < end {
			return PowerStatus{
				HasPower:           false,
				StatusText:         TextPowerOff,
				NextEventText:      textPowerOnIn + FormatDuration(end-current),
				MinutesToNextEvent: end - current,
			}
		}
	}

	next := noNextEventDuration
	for _, i := range off {
		start := timeToMinutes(i.Start)
		if start > current && (next == noNextEventDuration || start < next) {
			next = start
		}
	}
	if next != noNextEventDuration {
		return PowerStatus{
			HasPower:           true,
			StatusText:         TextPowerOn,
			NextEventText:      textPowerOffIn + FormatDuration(next-current),
			MinutesToNextEvent: next - current,
		}
	}

	return PowerStatus{
		HasPower:           true,
		StatusText:         TextPowerOn,
		NextEventText:      TextNoMoreOutages,
		MinutesToNextEvent: noNextEventDuration,
	}
}

// FormatDuration renders minutes as "H год. MM хв.".
func FormatDuration(minutes int) string {
	return fmt.Sprintf("%d год. %02d хв.", minutes/minutesPerHour, minutes%minutesPerHour)
}

// timeToMinutes converts "HH:MM" to minutes since midnight. Malformed parts count as zero.
func timeToMinutes(s string) int {
	hours, minutes, _ := strings.Cut(s, ":")
	h, _ := strconv.Atoi(hours)
	m, _ := strconv.Atoi(minutes)
	return h*minutesPerHour + m
}
