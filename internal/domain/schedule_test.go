package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

func TestScheduleWindow_SlotCount(t *testing.T) {
	tests := []struct {
		name  string
		start types.TimeString
		end   types.TimeString
		want  int
	}{
		{name: "two hour window", start: "10:00", end: "12:00", want: 4},
		{name: "full working day", start: "09:00", end: "18:00", want: 18},
		{name: "single slot", start: "10:00", end: "10:30", want: 1},
		{name: "inverted window", start: "12:00", end: "10:00", want: 0},
		{name: "zero length window", start: "10:00", end: "10:00", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &ScheduleWindow{StartTime: tt.start, EndTime: tt.end}
			assert.Equal(t, tt.want, w.SlotCount())
		})
	}
}

func TestScheduleWindow_CoversSlot(t *testing.T) {
	w := &ScheduleWindow{
		StartTime: types.TimeString("10:00"),
		EndTime:   types.TimeString("12:00"),
	}

	tests := []struct {
		name  string
		start types.TimeString
		want  bool
	}{
		{name: "first slot", start: "10:00", want: true},
		{name: "middle slot", start: "11:00", want: true},
		{name: "last valid start", start: "11:30", want: true},
		{name: "slot would end past window", start: "11:45", want: false},
		{name: "start at window end", start: "12:00", want: false},
		{name: "before window", start: "09:30", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, w.CoversSlot(tt.start))
		})
	}
}

func TestScheduleWindow_IsBookable(t *testing.T) {
	available := &ScheduleWindow{IsAvailable: true}
	assert.True(t, available.IsBookable())

	dayOff := &ScheduleWindow{IsAvailable: false}
	assert.False(t, dayOff.IsBookable())
}
