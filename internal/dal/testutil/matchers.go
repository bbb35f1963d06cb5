package testutil

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Roma7-7-7/dtek-notifier/internal/dal"
)

// LastMessageMatcher ignores SentAt, which is taken from the service clock
type LastMessageMatcher struct {
	t    *testing.T
	want dal.LastMessage
}

func NewLastMessageMatcher(t *testing.T, want dal.LastMessage) *LastMessageMatcher {
	return &LastMessageMatcher{
		t:    t,
		want: want,
	}
}

func (m LastMessageMatcher) Matches(x interface{}) bool {
	actual, ok := x.(dal.LastMessage)
	if !ok {
		m.t.Fatalf("LastMessageMatcher.Matches: expected dal.LastMessage, got %T", x)
		return false
	}

	m.want.SentAt = actual.SentAt
	return assert.ObjectsAreEqual(m.want, actual)
}

func (m LastMessageMatcher) String() string {
	return fmt.Sprintf("LastMessageMatcher(%+v)", m.want)
}

// ReportSnapshotMatcher compares everything except UpdatedAt
type ReportSnapshotMatcher struct {
	t    *testing.T
	want dal.ReportSnapshot
}

func NewReportSnapshotMatcher(t *testing.T, want dal.ReportSnapshot) *ReportSnapshotMatcher {
	return &ReportSnapshotMatcher{
		t:    t,
		want: want,
	}
}

func (m ReportSnapshotMatcher) Matches(x interface{}) bool {
	actual, ok := x.(dal.ReportSnapshot)
	if !ok {
		m.t.Fatalf("ReportSnapshotMatcher.Matches: expected dal.ReportSnapshot, got %T", x)
		return false
	}

	m.want.UpdatedAt = actual.UpdatedAt
	return assert.ObjectsAreEqual(m.want, actual)
}

func (m ReportSnapshotMatcher) String() string {
	return fmt.Sprintf("ReportSnapshotMatcher(%+v)", m.want)
}
