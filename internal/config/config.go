package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

var (
	ErrNoChatIDs             = errors.New("no telegram chat id configured")
	ErrTelegramTokenRequired = errors.New("telegram token is required")
)

type Config struct {
	Dev             bool          `envconfig:"DEV" default:"false"`
	DBPath          string        `envconfig:"DB_PATH" default:"data/dtek-notifier.db"`
	RefreshInterval time.Duration `envconfig:"REFRESH_INTERVAL" default:"5m"`
	Timezone        string        `envconfig:"TIMEZONE" default:"Europe/Kyiv"`
	MetricsAddr     string        `envconfig:"METRICS_ADDR"`

	ShutdownsPage string `envconfig:"SHUTDOWNS_PAGE" default:"https://www.dtek-krem.com.ua/ua/shutdowns"`
	City          string `envconfig:"CITY" required:"true"`
	Street        string `envconfig:"STREET" required:"true"`
	House         string `envconfig:"HOUSE" required:"true"`

	TelegramToken         string `envconfig:"TELEGRAM_BOT_TOKEN"`
	TelegramTokenSSMParam string `envconfig:"TELEGRAM_TOKEN_SSM_PARAM" default:"/dtek-notifier/prod/telegram-token"`
	TelegramAPIURL        string `envconfig:"TELEGRAM_API_URL" default:"https://api.telegram.org"`
	ChatID                string `envconfig:"TELEGRAM_CHAT_ID"`
	ChatID2               string `envconfig:"TELEGRAM_CHAT_ID_2"`

	CalendarEnabled         bool   `envconfig:"CALENDAR_ENABLED" default:"false"`
	CalendarID              string `envconfig:"CALENDAR_ID"`
	CalendarCredentialsFile string `envconfig:"CALENDAR_CREDENTIALS_FILE"`
	CalendarSyncPossible    bool   `envconfig:"CALENDAR_SYNC_POSSIBLE" default:"false"`
	CalendarCleanupDays     int    `envconfig:"CALENDAR_CLEANUP_DAYS" default:"7"`

	Location *time.Location `ignored:"true"`
}

// NewConfig reads .env (when present) and the process environment.
// Outside of dev mode a missing token is fetched from SSM Parameter Store.
func NewConfig(ctx context.Context) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	res := &Config{}
	err := envconfig.Process("", res)
	if err != nil {
		return nil, fmt.Errorf("envconfig process: %w", err)
	}

	res.Location, err = time.LoadLocation(res.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", res.Timezone, err)
	}

	if res.CalendarEnabled && (res.CalendarID == "" || res.CalendarCredentialsFile == "") {
		return nil, errors.New("CALENDAR_ID and CALENDAR_CREDENTIALS_FILE are required when calendar is enabled")
	}

	if res.TelegramToken == "" && !res.Dev {
		res.TelegramToken, err = getSSMToken(ctx, res.TelegramTokenSSMParam)
		if err != nil {
			return nil, err
		}
	}

	if res.TelegramToken == "" {
		return nil, ErrTelegramTokenRequired
	}

	return res, nil
}

// ChatIDs resolves target chats. Positional args override TELEGRAM_CHAT_ID and TELEGRAM_CHAT_ID_2 in order.
func (c *Config) ChatIDs(args []string) ([]int64, error) {
	raw := []string{c.ChatID, c.ChatID2}
	for i := 0; i < len(raw) && i < len(args); i++ {
		if args[i] != "" {
			raw[i] = args[i]
		}
	}

	res := make([]int64, 0, len(raw))
	for _, s := range raw {
		if s == "" {
			continue
		}
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse chat id %q: %w", s, err)
		}
		res = append(res, id)
	}

	if len(res) == 0 {
		return nil, ErrNoChatIDs
	}
	return res, nil
}

func getSSMToken(ctx context.Context, name string) (string, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return "", fmt.Errorf("load aws config: %w", err)
	}
	ssmClient := ssm.NewFromConfig(cfg)

	param, err := ssmClient.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("get SSM token: %w", err)
	}
	if param.Parameter == nil || param.Parameter.Value == nil {
		return "", errors.New("SSM Token not found")
	}

	return *param.Parameter.Value, nil
}
