package service

import (
	"bytes"
	"fmt"
	"html"
	"regexp"
	"text/template"

	"github.com/Roma7-7-7/dtek-notifier/internal/schedule"
)

//nolint:gochecknoglobals // it's template
var statusTemplate = template.Must(template.New("status").Parse(`⚡️ <b>Статус електропостачання за інформацією ДТЕК</b>
{{.Status}}
{{.NextEvent}}
━
🏠 <b>Адреса:</b> {{.Address}}
🔢 <b>Черга:</b> {{.Queue}}
━
📅 <b>Графік на сьогодні ({{.TodayDate}}):</b>
{{.Today}}
━
📅 <b>Графік на завтра ({{.TomorrowDate}}):</b>
{{.Tomorrow}}
━
🕐 <i>Оновлено: {{.UpdatedAt}}</i>`))

//nolint:gochecknoglobals // it's regexp
var tagsRegexp = regexp.MustCompile(`</?[^>]+(>|$)`)

// Address is the single monitored address.
type Address struct {
	City   string
	Street string
	House  string
}

func (a Address) String() string {
	return a.City + ", " + a.Street + ", " + a.House
}

type statusMessage struct {
	Status       string
	NextEvent    string
	Address      string
	Queue        string
	TodayDate    string
	Today        string
	TomorrowDate string
	Tomorrow     string
	UpdatedAt    string
}

// RenderMessage renders the HTML status message for Telegram.
func RenderMessage(report schedule.Report, address Address) (string, error) {
	data := statusMessage{
		Status:       report.PowerStatus.StatusText,
		NextEvent:    report.PowerStatus.NextEventText,
		Address:      html.EscapeString(address.String()),
		Queue:        html.EscapeString(report.QueueID),
		TodayDate:    report.TodayDate.Format("02.01"),
		Today:        report.TodayText(),
		TomorrowDate: report.TomorrowDate.Format("02.01"),
		Tomorrow:     report.TomorrowText(),
		UpdatedAt:    report.UpdatedAt.Format("15:04 02.01.2006"),
	}

	var buf bytes.Buffer
	if err := statusTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute status template: %w", err)
	}
	return buf.String(), nil
}

// PlainText strips HTML tags, for console output.
func PlainText(message string) string {
	return html.UnescapeString(tagsRegexp.ReplaceAllString(message, ""))
}
