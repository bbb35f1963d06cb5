package telegram

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	tb "gopkg.in/telebot.v3"
)

var (
	ErrMessageNotModified    = errors.New("message is not modified")
	ErrMessageToEditNotFound = errors.New("message to edit not found")
)

// Client sends HTML messages without link previews.
type Client struct {
	bot *tb.Bot

	log *slog.Logger
}

// NewClient creates a send-only client. apiURL may be empty to use the public Bot API.
func NewClient(token, apiURL string, log *slog.Logger) (*Client, error) {
	bot, err := tb.NewBot(tb.Settings{
		Token:   token,
		URL:     apiURL,
		Offline: true,
	})
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &Client{
		bot: bot,
		log: log.With("component", "telegram"),
	}, nil
}

// SendMessage posts a new message and returns its id.
func (c *Client) SendMessage(ctx context.Context, chatID int64, text string) (int, error) {
	msg, err := c.bot.Send(tb.ChatID(chatID), text, tb.ModeHTML, tb.NoPreview)
	if err != nil {
		return 0, fmt.Errorf("send message to chatID=%d: %w", chatID, classify(err))
	}

	c.log.DebugContext(ctx, "message sent", "chatID", chatID, "messageID", msg.ID)
	return msg.ID, nil
}

// EditMessage replaces the text of a previously sent message.
func (c *Client) EditMessage(ctx context.Context, chatID int64, messageID int, text string) error {
	stored := tb.StoredMessage{
		MessageID: strconv.Itoa(messageID),
		ChatID:    chatID,
	}
	if _, err := c.bot.Edit(stored, text, tb.ModeHTML, tb.NoPreview); err != nil {
		return fmt.Errorf("edit message=%d in chatID=%d: %w", messageID, chatID, classify(err))
	}

	c.log.DebugContext(ctx, "message edited", "chatID", chatID, "messageID", messageID)
	return nil
}

// classify maps Bot API descriptions the delivery flow depends on to sentinel errors.
func classify(err error) error {
	switch msg := err.Error(); {
	case strings.Contains(msg, "message is not modified"):
		return fmt.Errorf("%w: %w", ErrMessageNotModified, err)
	case strings.Contains(msg, "message to edit not found"):
		return fmt.Errorf("%w: %w", ErrMessageToEditNotFound, err)
	default:
		return err
	}
}
