package schedule

import (
	"fmt"
	"sort"
)

const (
	IntervalOff      IntervalType = "off"
	IntervalPossible IntervalType = "possible"
)

type (
	IntervalType string

	// Interval is a maximal run of slots sharing one state.
	// End is exclusive and reads "24:00" when the run reaches midnight.
	Interval struct {
		Start string       `json:"start"`
		End   string       `json:"end"`
		Type  IntervalType `json:"type"`
	}
)

func (t IntervalType) slotState() SlotState {
	if t == IntervalOff {
		return SlotOff
	}
	return SlotPossible
}

// ExtractIntervals collects off runs, then possible runs, and orders the result by start.
// On and unknown slots are never reported.
func ExtractIntervals(slots Slots) []Interval {
	res := make([]Interval, 0)
	res = appendRuns(res, slots, IntervalOff)
	res = appendRuns(res, slots, IntervalPossible)

	sort.SliceStable(res, func(i, j int) bool {
		return res[i].Start < res[j].Start
	})
	return res
}

func appendRuns(dst []Interval, slots Slots, typ IntervalType) []Interval {
	state := typ.slotState()
	for i := 0; i < SlotsPerDay; {
		if slots[i] != state {
			i++
			continue
		}
		j := i + 1
		for j < SlotsPerDay && slots[j] == state {
			j++
		}
		dst = append(dst, Interval{Start: slotTime(i), End: slotTime(j), Type: typ})
		i = j
	}
	return dst
}

// slotTime renders the start of a slot as "HH:MM"; index 48 is "24:00".
func slotTime(index int) string {
	index = max(0, min(index, SlotsPerDay))
	minute := "00"
	if index%2 == 1 {
		minute = "30"
	}
	return fmt.Sprintf("%02d:%s", index/2, minute)
}

// FilterIntervals returns the intervals of the given type keeping their order.
func FilterIntervals(intervals []Interval, typ IntervalType) []Interval {
	res := make([]Interval, 0, len(intervals))
	for _, i := range intervals {
		if i.Type == typ {
			res = append(res, i)
		}
	}
	return res
}
