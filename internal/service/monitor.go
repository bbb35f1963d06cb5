package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Roma7-7-7/dtek-notifier/internal/dal"
	"github.com/Roma7-7-7/dtek-notifier/internal/metrics"
	"github.com/Roma7-7-7/dtek-notifier/internal/schedule"
	"github.com/Roma7-7-7/dtek-notifier/internal/telegram"
)

//go:generate mockgen -package mocks -destination mocks/monitor.go . ScheduleProvider,MessagesStore,ReportsStore,TelegramClient,CalendarSyncer,Metrics

const cycleTimeout = time.Minute

type (
	Clock interface {
		Now() time.Time
	}

	ScheduleProvider interface {
		Schedule(ctx context.Context) (*schedule.Payload, error)
	}

	MessagesStore interface {
		GetLastMessage(chatID int64) (dal.LastMessage, bool, error)
		PutLastMessage(msg dal.LastMessage) error
		DeleteLastMessage(chatID int64) error
	}

	ReportsStore interface {
		GetReportSnapshot() (dal.ReportSnapshot, bool, error)
		PutReportSnapshot(r dal.ReportSnapshot) error
	}

	TelegramClient interface {
		SendMessage(ctx context.Context, chatID int64, text string) (int, error)
		EditMessage(ctx context.Context, chatID int64, messageID int, text string) error
	}

	CalendarSyncer interface {
		Sync(ctx context.Context, report schedule.Report) error
	}

	Metrics interface {
		IncCycles(result string)
		IncDeliveries(action string)
		SetPowerStatus(hasPower bool, minutesToNextEvent int)
	}

	MonitorConfig struct {
		House    string
		Address  Address
		ChatIDs  []int64
		Location *time.Location
	}

	// Monitor runs one fetch, evaluate and deliver cycle at a time.
	Monitor struct {
		provider ScheduleProvider
		messages MessagesStore
		reports  ReportsStore
		telegram TelegramClient
		calendar CalendarSyncer
		metrics  Metrics
		clock    Clock
		conf     MonitorConfig

		log *slog.Logger
		mx  *sync.Mutex
	}
)

// NewMonitor creates a monitor. calendar may be nil when calendar sync is disabled.
func NewMonitor(
	provider ScheduleProvider,
	messages MessagesStore,
	reports ReportsStore,
	telegram TelegramClient,
	calendar CalendarSyncer,
	metrics Metrics,
	clock Clock,
	conf MonitorConfig,
	log *slog.Logger,
) *Monitor {
	return &Monitor{
		provider: provider,
		messages: messages,
		reports:  reports,
		telegram: telegram,
		calendar: calendar,
		metrics:  metrics,
		clock:    clock,
		conf:     conf,

		log: log.With("component", "service").With("service", "monitor"),
		mx:  &sync.Mutex{},
	}
}

func (m *Monitor) Run(ctx context.Context) error {
	m.mx.Lock()
	defer m.mx.Unlock()
	m.log.InfoContext(ctx, "running monitor cycle")

	ctx, cancelFunc := context.WithTimeout(ctx, cycleTimeout)
	defer cancelFunc()

	if err := m.run(ctx); err != nil {
		m.metrics.IncCycles(metrics.ResultError)
		return err
	}

	m.metrics.IncCycles(metrics.ResultSuccess)
	return nil
}

func (m *Monitor) run(ctx context.Context) error {
	payload, err := m.provider.Schedule(ctx)
	if err != nil {
		return fmt.Errorf("fetch schedule: %w", err)
	}

	report, err := schedule.BuildReport(payload, m.conf.House, m.clock.Now(), m.conf.Location)
	if err != nil {
		return fmt.Errorf("build report: %w", err)
	}
	m.metrics.SetPowerStatus(report.PowerStatus.HasPower, report.PowerStatus.MinutesToNextEvent)
	m.log.InfoContext(ctx, "report built",
		"queue", report.QueueID,
		"hasPower", report.PowerStatus.HasPower,
		"today", len(report.Today),
		"tomorrow", len(report.Tomorrow),
		"hasTomorrowData", report.HasTomorrowData)

	if err := m.syncSnapshot(ctx, report); err != nil {
		return err
	}

	message, err := RenderMessage(report, m.conf.Address)
	if err != nil {
		return fmt.Errorf("render message: %w", err)
	}
	m.log.DebugContext(ctx, "message rendered", "length", len(message), "text", PlainText(message))

	for _, chatID := range m.conf.ChatIDs {
		if err := m.deliver(ctx, chatID, message); err != nil {
			return fmt.Errorf("deliver to chatID=%d: %w", chatID, err)
		}
	}

	return nil
}

// syncSnapshot stores the interval set when it changed and mirrors it to the calendar.
// A failed calendar sync leaves the previous snapshot so the next cycle retries it.
func (m *Monitor) syncSnapshot(ctx context.Context, report schedule.Report) error {
	current := dal.NewReportSnapshot(report)

	previous, found, err := m.reports.GetReportSnapshot()
	if err != nil {
		return fmt.Errorf("get report snapshot: %w", err)
	}
	if found && previous.SameIntervals(current) {
		m.log.DebugContext(ctx, "intervals not changed")
		return nil
	}

	m.log.InfoContext(ctx, "intervals changed", "queue", current.QueueID, "date", current.Date)
	if m.calendar != nil {
		if err := m.calendar.Sync(ctx, report); err != nil {
			m.log.ErrorContext(ctx, "failed to sync calendar", "error", err)
			return nil
		}
	}

	if err := m.reports.PutReportSnapshot(current); err != nil {
		return fmt.Errorf("put report snapshot: %w", err)
	}
	return nil
}

// deliver edits the last message in a chat or sends a new one.
// Any unexpected failure drops the stored message so the next cycle starts with a fresh one.
func (m *Monitor) deliver(ctx context.Context, chatID int64, text string) error {
	log := m.log.With("chatID", chatID)

	last, found, err := m.messages.GetLastMessage(chatID)
	if err != nil {
		return fmt.Errorf("get last message: %w", err)
	}

	if found {
		err = m.telegram.EditMessage(ctx, chatID, last.MessageID, text)
		switch {
		case err == nil:
			m.metrics.IncDeliveries(metrics.ActionEdited)
			log.InfoContext(ctx, "message edited", "messageID", last.MessageID)
			return m.putLastMessage(chatID, last.MessageID)
		case errors.Is(err, telegram.ErrMessageNotModified):
			m.metrics.IncDeliveries(metrics.ActionNotModified)
			log.InfoContext(ctx, "message not modified, skipping")
			return nil
		case errors.Is(err, telegram.ErrMessageToEditNotFound):
			log.WarnContext(ctx, "message to edit not found, sending new one", "messageID", last.MessageID)
			if err := m.messages.DeleteLastMessage(chatID); err != nil {
				return fmt.Errorf("delete last message: %w", err)
			}
		default:
			return m.failDelivery(ctx, chatID, err)
		}
	}

	messageID, err := m.telegram.SendMessage(ctx, chatID, text)
	if err != nil {
		return m.failDelivery(ctx, chatID, err)
	}

	m.metrics.IncDeliveries(metrics.ActionSent)
	log.InfoContext(ctx, "message sent", "messageID", messageID)
	return m.putLastMessage(chatID, messageID)
}

func (m *Monitor) failDelivery(ctx context.Context, chatID int64, err error) error {
	m.metrics.IncDeliveries(metrics.ActionFailed)
	if dErr := m.messages.DeleteLastMessage(chatID); dErr != nil {
		m.log.ErrorContext(ctx, "failed to delete last message", "chatID", chatID, "error", dErr)
	}
	return err
}

func (m *Monitor) putLastMessage(chatID int64, messageID int) error {
	err := m.messages.PutLastMessage(dal.LastMessage{
		ChatID:    chatID,
		MessageID: messageID,
		SentAt:    m.clock.Now(),
	})
	if err != nil {
		return fmt.Errorf("put last message: %w", err)
	}
	return nil
}
