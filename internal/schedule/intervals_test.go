package schedule_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Roma7-7-7/dtek-notifier/internal/dal/testutil"
	"github.com/Roma7-7-7/dtek-notifier/internal/schedule"
)

func TestExtractIntervals(t *testing.T) {
	tests := []struct {
		name  string
		table schedule.HourTable
		want  []schedule.Interval
	}{
		{
			name:  "all_yes",
			table: testutil.NewHourTable(schedule.CodeYes).Build(),
			want:  []schedule.Interval{},
		},
		{
			name:  "all_unknown",
			table: testutil.NewHourTable("unknown").Build(),
			want:  []schedule.Interval{},
		},
		{
			name:  "night_outage",
			table: testutil.NewHourTable(schedule.CodeYes).WithHours(1, 6, schedule.CodeNo).Build(),
			want:  []schedule.Interval{testutil.Off("00:00", "06:00")},
		},
		{
			name:  "single_maybe",
			table: testutil.NewHourTable(schedule.CodeYes).WithHour(10, schedule.CodeMaybe).Build(),
			want:  []schedule.Interval{testutil.Possible("09:00", "10:00")},
		},
		{
			name:  "ends_at_midnight",
			table: testutil.NewHourTable(schedule.CodeYes).WithHour(24, schedule.CodeNo).Build(),
			want:  []schedule.Interval{testutil.Off("23:00", "24:00")},
		},
		{
			name:  "whole_day_off",
			table: testutil.NewHourTable(schedule.CodeNo).Build(),
			want:  []schedule.Interval{testutil.Off("00:00", "24:00")},
		},
		{
			name: "half_hours_merge_across_hours",
			table: testutil.NewHourTable(schedule.CodeYes).
				WithHour(8, schedule.CodeSecond).
				WithHour(9, schedule.CodeNo).
				WithHour(10, schedule.CodeFirst).
				Build(),
			want: []schedule.Interval{testutil.Off("07:30", "09:30")},
		},
		{
			name: "mixed_sorted_by_start",
			table: testutil.NewHourTable(schedule.CodeYes).
				WithHour(2, schedule.CodeMSecond).
				WithHours(3, 4, schedule.CodeNo).
				WithHour(5, schedule.CodeMaybe).
				WithHour(13, schedule.CodeMFirst).
				WithHours(18, 20, schedule.CodeNo).
				Build(),
			want: []schedule.Interval{
				testutil.Possible("01:30", "02:00"),
				testutil.Off("02:00", "04:00"),
				testutil.Possible("04:00", "05:00"),
				testutil.Possible("12:00", "12:30"),
				testutil.Off("17:00", "20:00"),
			},
		},
		{
			name: "unknown_breaks_runs",
			table: testutil.NewHourTable(schedule.CodeNo).
				WithHour(12, "broken").
				Build(),
			want: []schedule.Interval{
				testutil.Off("00:00", "11:00"),
				testutil.Off("12:00", "24:00"),
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := schedule.ExtractIntervals(schedule.EncodeSlots(tt.table))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractIntervals_Properties(t *testing.T) {
	rnd := rand.New(rand.NewSource(42)) //nolint:gosec // deterministic test data
	states := []schedule.SlotState{schedule.SlotOn, schedule.SlotOff, schedule.SlotPossible, schedule.SlotUnknown}

	for run := 0; run < 500; run++ {
		var slots schedule.Slots
		for i := range slots {
			slots[i] = states[rnd.Intn(len(states))]
		}

		got := schedule.ExtractIntervals(slots)

		covered := make(map[int]schedule.IntervalType)
		for i, interval := range got {
			if i > 0 {
				require.LessOrEqualf(t, got[i-1].Start, interval.Start, "run=%d not sorted: %v", run, got)
			}
			from, to := slotIndex(t, interval.Start), slotIndex(t, interval.End)
			require.Lessf(t, from, to, "run=%d empty interval %v", run, interval)

			for s := from; s < to; s++ {
				_, taken := covered[s]
				require.Falsef(t, taken, "run=%d slot %d reported twice", run, s)
				covered[s] = interval.Type
				require.Equalf(t, stateOf(interval.Type), slots[s], "run=%d slot %d", run, s)
			}
			if from > 0 {
				require.NotEqualf(t, stateOf(interval.Type), slots[from-1], "run=%d interval %v is not maximal", run, interval)
			}
			if to < schedule.SlotsPerDay {
				require.NotEqualf(t, stateOf(interval.Type), slots[to], "run=%d interval %v is not maximal", run, interval)
			}
		}

		for i, state := range slots {
			if state == schedule.SlotOff || state == schedule.SlotPossible {
				_, ok := covered[i]
				require.Truef(t, ok, "run=%d slot %d with state %s not reported", run, i, state)
			}
		}
	}
}

func TestFilterIntervals(t *testing.T) {
	in := []schedule.Interval{
		testutil.Possible("01:00", "02:00"),
		testutil.Off("02:00", "03:00"),
		testutil.Off("05:00", "06:00"),
	}
	assert.Equal(t, []schedule.Interval{testutil.Off("02:00", "03:00"), testutil.Off("05:00", "06:00")}, schedule.FilterIntervals(in, schedule.IntervalOff))
	assert.Equal(t, []schedule.Interval{testutil.Possible("01:00", "02:00")}, schedule.FilterIntervals(in, schedule.IntervalPossible))
	assert.Empty(t, schedule.FilterIntervals(nil, schedule.IntervalOff))
}

func slotIndex(t *testing.T, hhmm string) int {
	t.Helper()
	require.Len(t, hhmm, 5)
	hours := int(hhmm[0]-'0')*10 + int(hhmm[1]-'0')
	index := hours * 2
	if hhmm[3:] == "30" {
		index++
	}
	return index
}

func stateOf(typ schedule.IntervalType) schedule.SlotState {
	if typ == schedule.IntervalOff {
		return schedule.SlotOff
	}
	return schedule.SlotPossible
}
