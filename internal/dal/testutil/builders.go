package testutil

import (
	"strconv"
	"time"

	"github.com/Roma7-7-7/dtek-notifier/internal/dal"
	"github.com/Roma7-7-7/dtek-notifier/internal/schedule"
)

// HourTableBuilder provides fluent API for building hourly code tables
type HourTableBuilder struct {
	table schedule.HourTable
}

// NewHourTable creates a table with every hour set to code
func NewHourTable(code schedule.HourCode) *HourTableBuilder {
	table := make(schedule.HourTable, schedule.HoursPerDay)
	for h := 1; h <= schedule.HoursPerDay; h++ {
		table[strconv.Itoa(h)] = code
	}
	return &HourTableBuilder{table: table}
}

// WithHour sets a single hour (1..24)
func (b *HourTableBuilder) WithHour(hour int, code schedule.HourCode) *HourTableBuilder {
	b.table[strconv.Itoa(hour)] = code
	return b
}

// WithHours sets hours from..to inclusive
func (b *HourTableBuilder) WithHours(from, to int, code schedule.HourCode) *HourTableBuilder {
	for h := from; h <= to; h++ {
		b.table[strconv.Itoa(h)] = code
	}
	return b
}

// Without removes an hour from the table
func (b *HourTableBuilder) Without(hour int) *HourTableBuilder {
	delete(b.table, strconv.Itoa(hour))
	return b
}

func (b *HourTableBuilder) Build() schedule.HourTable {
	return b.table
}

// PayloadBuilder provides fluent API for building provider payloads
type PayloadBuilder struct {
	today   int64
	payload schedule.Payload
}

// NewPayload creates a payload whose today key is the given midnight
func NewPayload(today time.Time) *PayloadBuilder {
	return &PayloadBuilder{
		today: today.Unix(),
		payload: schedule.Payload{
			Result: true,
			Data:   make(map[string]schedule.House),
			Fact: &schedule.Fact{
				Today:  today.Unix(),
				Update: today.Format("02.01.2006 15:04"),
				Data:   make(map[string]map[string]schedule.HourTable),
			},
		},
	}
}

// WithHouse assigns queue reasons to a house
func (b *PayloadBuilder) WithHouse(house string, reasons ...string) *PayloadBuilder {
	b.payload.Data[house] = schedule.House{SubTypeReason: reasons}
	return b
}

// WithDay adds a queue table for today shifted by offset days
func (b *PayloadBuilder) WithDay(offset int, queue string, table schedule.HourTable) *PayloadBuilder {
	key := b.dayKey(offset)
	if b.payload.Fact.Data[key] == nil {
		b.payload.Fact.Data[key] = make(map[string]schedule.HourTable)
	}
	b.payload.Fact.Data[key][queue] = table
	return b
}

// WithEmptyDay publishes a day without any queue tables
func (b *PayloadBuilder) WithEmptyDay(offset int) *PayloadBuilder {
	key := b.dayKey(offset)
	if b.payload.Fact.Data[key] == nil {
		b.payload.Fact.Data[key] = make(map[string]schedule.HourTable)
	}
	return b
}

// WithoutFact drops the fact section entirely
func (b *PayloadBuilder) WithoutFact() *PayloadBuilder {
	b.payload.Fact = nil
	return b
}

func (b *PayloadBuilder) Build() *schedule.Payload {
	res := b.payload
	return &res
}

func (b *PayloadBuilder) dayKey(offset int) string {
	return strconv.FormatInt(b.today+int64(offset)*schedule.DaySeconds, 10)
}

// LastMessageBuilder provides fluent API for building last message records
type LastMessageBuilder struct {
	msg dal.LastMessage
}

func NewLastMessage(chatID int64, messageID int) *LastMessageBuilder {
	return &LastMessageBuilder{
		msg: dal.LastMessage{
			ChatID:    chatID,
			MessageID: messageID,
		},
	}
}

func (b *LastMessageBuilder) WithSentAt(t time.Time) *LastMessageBuilder {
	b.msg.SentAt = t
	return b
}

func (b *LastMessageBuilder) Build() dal.LastMessage {
	return b.msg
}

// ReportSnapshotBuilder provides fluent API for building stored interval sets
type ReportSnapshotBuilder struct {
	snapshot dal.ReportSnapshot
}

func NewReportSnapshot(queueID string, date dal.Date) *ReportSnapshotBuilder {
	return &ReportSnapshotBuilder{
		snapshot: dal.ReportSnapshot{
			QueueID:  queueID,
			Date:     date.ToKey(),
			Today:    []schedule.Interval{},
			Tomorrow: []schedule.Interval{},
		},
	}
}

func (b *ReportSnapshotBuilder) WithToday(intervals ...schedule.Interval) *ReportSnapshotBuilder {
	b.snapshot.Today = append(b.snapshot.Today, intervals...)
	return b
}

func (b *ReportSnapshotBuilder) WithTomorrow(intervals ...schedule.Interval) *ReportSnapshotBuilder {
	b.snapshot.HasTomorrowData = true
	b.snapshot.Tomorrow = append(b.snapshot.Tomorrow, intervals...)
	return b
}

func (b *ReportSnapshotBuilder) WithUpdatedAt(t time.Time) *ReportSnapshotBuilder {
	b.snapshot.UpdatedAt = t
	return b
}

func (b *ReportSnapshotBuilder) Build() dal.ReportSnapshot {
	return b.snapshot
}

// Off is a shortcut for an off interval
func Off(start, end string) schedule.Interval {
	return schedule.Interval{Start: start, End: end, Type: schedule.IntervalOff}
}

// Possible is a shortcut for a possible interval
func Possible(start, end string) schedule.Interval {
	return schedule.Interval{Start: start, End: end, Type: schedule.IntervalPossible}
}
