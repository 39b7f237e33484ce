package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Run("valid date", func(t *testing.T) {
		got, err := ParseDate("2026-09-15")
		require.NoError(t, err)
		assert.Equal(t, 2026, got.Year())
		assert.Equal(t, time.September, got.Month())
		assert.Equal(t, 15, got.Day())
		assert.Equal(t, 0, got.Hour())
		assert.Equal(t, 0, got.Minute())
		assert.Equal(t, time.Local, got.Location())
	})

	t.Run("invalid formats", func(t *testing.T) {
		for _, input := range []string{"2026/09/15", "15-09-2026", "2026-9-15", "2026-09", "", "abcd-ef-gh"} {
			_, err := ParseDate(input)
			assert.ErrorIs(t, err, ErrInvalidDateString, "input %q", input)
		}
	})

	t.Run("nonexistent day rejected", func(t *testing.T) {
		// time.Date нормализовал бы 31 февраля в март
		_, err := ParseDate("2026-02-31")
		assert.ErrorIs(t, err, ErrInvalidDateString)
	})
}

func TestSameDay(t *testing.T) {
	a := time.Date(2026, 9, 15, 0, 0, 0, 0, time.Local)
	b := time.Date(2026, 9, 15, 23, 59, 59, 0, time.Local)
	c := time.Date(2026, 9, 16, 0, 0, 0, 0, time.Local)

	assert.True(t, SameDay(a, b))
	assert.False(t, SameDay(b, c))
}

func TestDayBefore(t *testing.T) {
	yesterday := time.Date(2026, 9, 14, 23, 59, 0, 0, time.Local)
	now := time.Date(2026, 9, 15, 14, 3, 0, 0, time.Local)
	todayMidnight := time.Date(2026, 9, 15, 0, 0, 0, 0, time.Local)

	assert.True(t, DayBefore(yesterday, now))
	// Полночь сегодняшнего дня не считается прошлым днем
	assert.False(t, DayBefore(todayMidnight, now))
	assert.False(t, DayBefore(now, yesterday))
}

func TestAt(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.Local)

	got, err := At(date, "10:30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 15, 10, 30, 0, 0, time.Local), got)

	_, err = At(date, "25:00")
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestAt_UTCDateBuildsLocalInstant(t *testing.T) {
	// Колонка DATE сканируется как полночь UTC: момент обязан строиться
	// в локальной тайм-зоне, а не наследовать локацию даты
	oldLocal := time.Local
	time.Local = time.FixedZone("UTC+3", 3*60*60)
	defer func() { time.Local = oldLocal }()

	dateUTC := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	got, err := At(dateUTC, "15:00")
	require.NoError(t, err)

	want := time.Date(2026, 9, 15, 15, 0, 0, 0, time.Local)
	assert.True(t, got.Equal(want), "got %s, want %s", got, want)
	assert.Equal(t, time.Local, got.Location())
}
