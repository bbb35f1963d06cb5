package schedule

import "strconv"

const (
	HoursPerDay  = 24
	SlotsPerDay  = HoursPerDay * 2
)

const (
	CodeNo      HourCode = "no"
	CodeYes     HourCode = "yes"
	CodeFirst   HourCode = "first"
	CodeSecond  HourCode = "second"
	CodeMaybe   HourCode = "maybe"
	CodeMFirst  HourCode = "mfirst"
	CodeMSecond HourCode = "msecond"
)

const (
	SlotOn SlotState = iota
	SlotOff
	SlotPossible
	SlotUnknown
)

type (
	// HourCode is the provider status of a single clock hour.
	HourCode string

	// HourTable maps hour numbers "1".."24" to their codes.
	HourTable map[string]HourCode

	SlotState int

	// Slots holds one state per half hour, index 0 starts at 00:00.
	// The zero value is a day with power available in every slot.
	Slots [SlotsPerDay]SlotState
)

func (s SlotState) String() string {
	switch s {
	case SlotOn:
		return "on"
	case SlotOff:
		return "off"
	case SlotPossible:
		return "possible"
	case SlotUnknown:
		return "unknown"
	default:
		return "SlotState(" + strconv.Itoa(int(s)) + ")"
	}
}

// Halves returns the states of the first and second half of an hour with this code.
func (c HourCode) Halves() (SlotState, SlotState) {
	switch c {
	case CodeNo:
		return SlotOff, SlotOff
	case CodeYes:
		return SlotOn, SlotOn
	case CodeFirst:
		return SlotOff, SlotOn
	case CodeSecond:
		return SlotOn, SlotOff
	case CodeMaybe:
		return SlotPossible, SlotPossible
	case CodeMFirst:
		return SlotPossible, SlotOn
	case CodeMSecond:
		return SlotOn, SlotPossible
	default:
		return SlotUnknown, SlotUnknown
	}
}

// EncodeSlots expands hourly codes into half-hour slots.
// Hours missing from the table are treated as unrecognized codes.
func EncodeSlots(hours HourTable) Slots {
	var res Slots
	for h := 1; h <= HoursPerDay; h++ {
		first, second := hours[strconv.Itoa(h)].Halves()
		res[(h-1)*2] = first
		res[(h-1)*2+1] = second
	}
	return res
}
