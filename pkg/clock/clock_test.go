package clock_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Roma7-7-7/dtek-notifier/pkg/clock"
)

func TestClock_Now(t *testing.T) {
	kyiv, err := time.LoadLocation("Europe/Kyiv")
	require.NoError(t, err)

	tests := []struct {
		name string
		loc  *time.Location
		want *time.Location
	}{
		{name: "kyiv", loc: kyiv, want: kyiv},
		{name: "utc", loc: time.UTC, want: time.UTC},
		{name: "nil_is_local", loc: nil, want: time.Local},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := clock.New(tt.loc)
			require.NotNil(t, c)

			startAt := time.Now()
			now := c.Now()
			assert.False(t, now.Before(startAt))
			assert.Equal(t, tt.want, now.Location())
			assert.Equal(t, tt.want, c.Location())
		})
	}
}

func TestMock(t *testing.T) {
	start := time.Date(2025, time.November, 20, 17, 7, 0, 0, time.UTC)
	m := clock.NewMock(start)

	assert.Equal(t, start, m.Now())
	assert.Equal(t, start, m.Now())

	m.Set(start.AddDate(0, 0, 1))
	assert.Equal(t, time.Date(2025, time.November, 21, 17, 7, 0, 0, time.UTC), m.Now())

	got := m.Advance(30 * time.Minute)
	assert.Equal(t, time.Date(2025, time.November, 21, 17, 37, 0, 0, time.UTC), got)
	assert.Equal(t, got, m.Now())
}

func TestMock_Concurrent(t *testing.T) {
	m := clock.NewMock(time.Date(2025, time.November, 20, 0, 0, 0, 0, time.UTC))

	wg := &sync.WaitGroup{}
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Advance(time.Minute)
			_ = m.Now()
		}()
	}
	wg.Wait()

	assert.Equal(t, time.Date(2025, time.November, 20, 0, 10, 0, 0, time.UTC), m.Now())
}
