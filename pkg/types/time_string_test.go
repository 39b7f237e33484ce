package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "valid morning", input: "08:00", want: "08:00"},
		{name: "valid midnight", input: "00:00", want: "00:00"},
		{name: "valid end of day", input: "23:59", want: "23:59"},
		{name: "missing leading zero", input: "8:00", wantErr: true},
		{name: "hours out of range", input: "24:00", wantErr: true},
		{name: "minutes out of range", input: "10:60", wantErr: true},
		{name: "no separator", input: "1000", wantErr: true},
		{name: "garbage", input: "ab:cd", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Minutes(t *testing.T) {
	tests := []struct {
		input TimeString
		want  int
	}{
		{input: "00:00", want: 0},
		{input: "08:00", want: 480},
		{input: "10:30", want: 630},
		{input: "23:59", want: 1439},
	}

	for _, tt := range tests {
		got, err := tt.input.Minutes()
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "minutes of %s", tt.input)
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	t.Run("simple addition", func(t *testing.T) {
		got, err := TimeString("10:00").AddMinutes(45)
		require.NoError(t, err)
		assert.Equal(t, TimeString("10:45"), got)
	})

	t.Run("carry minutes into hours", func(t *testing.T) {
		got, err := TimeString("17:45").AddMinutes(30)
		require.NoError(t, err)
		assert.Equal(t, TimeString("18:15"), got)
	})

	t.Run("carry across multiple hours", func(t *testing.T) {
		got, err := TimeString("09:30").AddMinutes(150)
		require.NoError(t, err)
		assert.Equal(t, TimeString("12:00"), got)
	})

	t.Run("overflow past midnight", func(t *testing.T) {
		_, err := TimeString("23:30").AddMinutes(60)
		assert.ErrorIs(t, err, ErrTimeOutOfRange)
	})
}

func TestNewTimeStringFromMinutes(t *testing.T) {
	got, err := NewTimeStringFromMinutes(630)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:30"), got)

	_, err = NewTimeStringFromMinutes(MinutesPerDay)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)

	_, err = NewTimeStringFromMinutes(-1)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)
}

func TestTimeString_Comparison(t *testing.T) {
	assert.True(t, TimeString("09:30").IsBefore("10:00"))
	assert.True(t, TimeString("10:00").IsAfter("09:30"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	// Лексикографическое сравнение корректно благодаря ведущим нулям
	assert.True(t, TimeString("08:00").IsBefore("10:00"))
	assert.True(t, TimeString("09:59").IsBefore("10:00"))
}

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2026, 9, 15, 14, 3, 27, 0, time.Local)
	assert.Equal(t, TimeString("14:03"), NewTimeString(moment))
}
