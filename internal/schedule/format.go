package schedule

import "strings"

const (
	TextNextDayPending   = "⏳ Дані на наступний день будуть доступні пізніше"
	TextNoOutages        = "✅ Відключень не заплановано"
	TextDataUnavailable  = "⏳ Дані поки що недоступні"
	TextTomorrowNotReady = "⏳ Графік на завтра ще не доступний (зазвичай з'являється ввечері)"
)

// FormatIntervals renders a day schedule, off intervals first and possible ones after.
//
// An empty list reads as good news for today, but as not yet published for any
// other day even when the provider sent an (empty) table for it. This asymmetry
// is inherited from the upstream bot.
func FormatIntervals(intervals []Interval, hasData, isToday bool) string {
	if !hasData {
		return TextNextDayPending
	}

	lines := make([]string, 0, len(intervals))
	for _, i := range FilterIntervals(intervals, IntervalOff) {
		lines = append(lines, "🪫 "+i.Start+" — "+i.End)
	}
	for _, i := range FilterIntervals(intervals, IntervalPossible) {
		lines = append(lines, "❓ "+i.Start+" — "+i.End+" (можливо)")
	}

	if len(lines) == 0 {
		if isToday {
			return TextNoOutages
		}
		return TextDataUnavailable
	}
	return strings.Join(lines, "\n")
}
