package dal_test

import (
	"time"

	"github.com/Roma7-7-7/dtek-notifier/internal/dal/testutil"
)

func (s *BoltDBTestSuite) TestBoltDB_LastMessage() {
	sentAt := time.Date(2025, time.November, 20, 17, 7, 0, 0, time.UTC)
	s.clockMock.Set(sentAt)

	_, ok, err := s.store.GetLastMessage(1)
	s.Require().NoError(err)
	s.False(ok)

	s.Require().NoError(s.store.PutLastMessage(testutil.NewLastMessage(1, 100).Build()))
	s.Require().NoError(s.store.PutLastMessage(testutil.NewLastMessage(2, 200).Build()))

	msg, ok, err := s.store.GetLastMessage(1)
	s.Require().NoError(err)
	s.Require().True(ok)
	s.Equal(int64(1), msg.ChatID)
	s.Equal(100, msg.MessageID)
	s.True(sentAt.Equal(msg.SentAt))

	s.clockMock.Advance(time.Hour)
	s.Require().NoError(s.store.PutLastMessage(testutil.NewLastMessage(1, 101).Build()))
	msg, ok, err = s.store.GetLastMessage(1)
	s.Require().NoError(err)
	s.Require().True(ok)
	s.Equal(101, msg.MessageID)
	s.True(sentAt.Add(time.Hour).Equal(msg.SentAt))

	s.Require().NoError(s.store.DeleteLastMessage(1))
	_, ok, err = s.store.GetLastMessage(1)
	s.Require().NoError(err)
	s.False(ok)

	msg, ok, err = s.store.GetLastMessage(2)
	s.Require().NoError(err)
	s.Require().True(ok)
	s.Equal(200, msg.MessageID)
}

func (s *BoltDBTestSuite) TestBoltDB_DeleteLastMessage_Missing() {
	s.NoError(s.store.DeleteLastMessage(42))
}
