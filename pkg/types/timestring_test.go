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
		{name: "valid morning time", input: "10:30", want: TimeString("10:30")},
		{name: "valid midnight", input: "00:00", want: TimeString("00:00")},
		{name: "valid end of day", input: "23:30", want: TimeString("23:30")},
		{name: "invalid hour", input: "25:00", wantErr: true},
		{name: "invalid minute", input: "10:60", wantErr: true},
		{name: "missing leading zero", input: "9:30", wantErr: true},
		{name: "empty string", input: "", wantErr: true},
		{name: "garbage", input: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	tests := []struct {
		name    string
		start   TimeString
		minutes int
		want    TimeString
		wantErr bool
	}{
		{name: "add slot duration", start: "10:00", minutes: 30, want: "10:30"},
		{name: "cross hour boundary", start: "10:45", minutes: 30, want: "11:15"},
		{name: "add zero", start: "10:00", minutes: 0, want: "10:00"},
		{name: "last slot of day", start: "23:30", minutes: 30, wantErr: true},
		{name: "cross midnight", start: "23:45", minutes: 30, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.start.AddMinutes(tt.minutes)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("10:30").IsAfter("10:00"))
	assert.False(t, TimeString("10:00").IsAfter("10:00"))
}

func TestTimeString_MinutesUntil(t *testing.T) {
	minutes, err := TimeString("10:00").MinutesUntil("12:00")
	require.NoError(t, err)
	assert.Equal(t, 120, minutes)

	minutes, err = TimeString("12:00").MinutesUntil("10:00")
	require.NoError(t, err)
	assert.Equal(t, -120, minutes)
}

func TestTimeString_Minute(t *testing.T) {
	assert.Equal(t, 30, TimeString("10:30").Minute())
	assert.Equal(t, 0, TimeString("10:00").Minute())
	assert.Equal(t, 15, TimeString("10:15").Minute())
	assert.Equal(t, 0, TimeString("bad").Minute())
}

func TestTimeString_At(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	got, err := TimeString("10:30").At(date)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 15, 10, 30, 0, 0, time.UTC), got)
}

func TestTimeString_Scan(t *testing.T) {
	t.Run("string with seconds", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan("10:30:00"))
		assert.Equal(t, TimeString("10:30"), ts)
	})

	t.Run("bytes", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan([]byte("18:00")))
		assert.Equal(t, TimeString("18:00"), ts)
	})

	t.Run("time value", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan(time.Date(2000, 1, 1, 9, 15, 0, 0, time.UTC)))
		assert.Equal(t, TimeString("09:15"), ts)
	})

	t.Run("nil resets value", func(t *testing.T) {
		ts := TimeString("10:00")
		require.NoError(t, ts.Scan(nil))
		assert.True(t, ts.IsZero())
	})

	t.Run("unsupported type", func(t *testing.T) {
		var ts TimeString
		assert.Error(t, ts.Scan(42))
	})
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("10:30").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:30", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = TimeString("bad").Value()
	assert.Error(t, err)
}
