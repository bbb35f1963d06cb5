package config_test

import (
	"context"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Roma7-7-7/dtek-notifier/internal/config"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DEV", "true")
	t.Setenv("CITY", "м. Українка")
	t.Setenv("STREET", "вул. Юності")
	t.Setenv("HOUSE", "12")
	t.Setenv("TELEGRAM_BOT_TOKEN", "test-token")
}

func TestNewConfig(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		unset   []string
		want    func(t *testing.T, c *config.Config)
		wantErr assert.ErrorAssertionFunc
	}{
		{
			name: "defaults",
			want: func(t *testing.T, c *config.Config) {
				assert.Equal(t, "data/dtek-notifier.db", c.DBPath)
				assert.Equal(t, 5*time.Minute, c.RefreshInterval)
				assert.Equal(t, "https://www.dtek-krem.com.ua/ua/shutdowns", c.ShutdownsPage)
				assert.Equal(t, "https://api.telegram.org", c.TelegramAPIURL)
				assert.Equal(t, "Europe/Kyiv", c.Location.String())
				assert.Equal(t, "test-token", c.TelegramToken)
				assert.False(t, c.CalendarEnabled)
				assert.Equal(t, 7, c.CalendarCleanupDays)
			},
			wantErr: assert.NoError,
		},
		{
			name: "overrides",
			env: map[string]string{
				"REFRESH_INTERVAL":          "90s",
				"TIMEZONE":                  "UTC",
				"CALENDAR_ENABLED":          "true",
				"CALENDAR_ID":               "primary",
				"CALENDAR_CREDENTIALS_FILE": "creds.json",
			},
			want: func(t *testing.T, c *config.Config) {
				assert.Equal(t, 90*time.Second, c.RefreshInterval)
				assert.Equal(t, time.UTC, c.Location)
				assert.True(t, c.CalendarEnabled)
				assert.Equal(t, "primary", c.CalendarID)
			},
			wantErr: assert.NoError,
		},
		{
			name:  "missing_house",
			unset: []string{"HOUSE"},
			wantErr: func(t assert.TestingT, err error, i ...interface{}) bool {
				return assert.ErrorContains(t, err, "HOUSE", i...)
			},
		},
		{
			name: "invalid_timezone",
			env:  map[string]string{"TIMEZONE": "Mars/Olympus"},
			wantErr: func(t assert.TestingT, err error, i ...interface{}) bool {
				return assert.ErrorContains(t, err, `load timezone "Mars/Olympus"`, i...)
			},
		},
		{
			name: "calendar_without_id",
			env:  map[string]string{"CALENDAR_ENABLED": "true"},
			wantErr: func(t assert.TestingT, err error, i ...interface{}) bool {
				return assert.ErrorContains(t, err, "CALENDAR_ID", i...)
			},
		},
		{
			name: "dev_without_token",
			env:  map[string]string{"TELEGRAM_BOT_TOKEN": ""},
			wantErr: func(t assert.TestingT, err error, i ...interface{}) bool {
				return assert.ErrorIs(t, err, config.ErrTelegramTokenRequired, i...)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			for _, k := range tt.unset {
				require.NoError(t, os.Unsetenv(k))
			}

			got, err := config.NewConfig(context.Background())
			if !tt.wantErr(t, err) {
				return
			}
			if tt.want != nil {
				require.NotNil(t, got)
				tt.want(t, got)
			}
		})
	}
}

func TestConfig_ChatIDs(t *testing.T) {
	tests := []struct {
		name    string
		chatID  string
		chatID2 string
		args    []string
		want    []int64
		wantErr assert.ErrorAssertionFunc
	}{
		{
			name:    "env_only",
			chatID:  "100",
			chatID2: "-200",
			want:    []int64{100, -200},
			wantErr: assert.NoError,
		},
		{
			name:    "first_arg_overrides_first_env",
			chatID:  "100",
			chatID2: "200",
			args:    []string{"300"},
			want:    []int64{300, 200},
			wantErr: assert.NoError,
		},
		{
			name:    "args_without_env",
			args:    []string{"300", "400", "500"},
			want:    []int64{300, 400},
			wantErr: assert.NoError,
		},
		{
			name:    "second_only",
			chatID2: "200",
			want:    []int64{200},
			wantErr: assert.NoError,
		},
		{
			name: "none",
			wantErr: func(t assert.TestingT, err error, i ...interface{}) bool {
				return assert.ErrorIs(t, err, config.ErrNoChatIDs, i...)
			},
		},
		{
			name: "invalid",
			args: []string{"@channel"},
			wantErr: func(t assert.TestingT, err error, i ...interface{}) bool {
				return assert.ErrorIs(t, err, strconv.ErrSyntax, i...) && assert.ErrorContains(t, err, `parse chat id "@channel"`, i...)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &config.Config{ChatID: tt.chatID, ChatID2: tt.chatID2}

			got, err := c.ChatIDs(tt.args)
			if !tt.wantErr(t, err) {
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
