package dal

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

const messagesBucket = "messages"

// LastMessage is the status message currently shown in a chat.
type LastMessage struct {
	ChatID    int64     `json:"chat_id"`
	MessageID int       `json:"message_id"`
	SentAt    time.Time `json:"sent_at"`
}

// GetLastMessage returns the message to edit in a chat, if any
func (s *BoltDB) GetLastMessage(chatID int64) (LastMessage, bool, error) {
	var res LastMessage
	found := false

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket([]byte(messagesBucket)).Get(i64tob(chatID))
		if data == nil {
			return nil
		}
		found = true
		return json.Unmarshal(data, &res)
	})

	return res, found, err
}

// PutLastMessage stores the message and stamps it with the current time
func (s *BoltDB) PutLastMessage(msg LastMessage) error {
	msg.SentAt = s.clock.Now()

	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(messagesBucket))
		if b == nil {
			return errors.New("messages bucket not found")
		}

		data, err := json.Marshal(&msg)
		if err != nil {
			return fmt.Errorf("marshal last message for chatID=%d: %w", msg.ChatID, err)
		}
		if err := b.Put(i64tob(msg.ChatID), data); err != nil {
			return fmt.Errorf("put last message for chatID=%d: %w", msg.ChatID, err)
		}

		return nil
	})
}

func (s *BoltDB) DeleteLastMessage(chatID int64) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.Bucket([]byte(messagesBucket)).Delete(i64tob(chatID)); err != nil {
			return fmt.Errorf("delete last message for chatID=%d: %w", chatID, err)
		}
		return nil
	})
}
