package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

var testDate = time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

func slotTimes(slots []domain.AvailableSlot) []string {
	times := make([]string, len(slots))
	for i, slot := range slots {
		times[i] = slot.StartTime.String()
	}
	return times
}

func TestGenerateWindowSlots(t *testing.T) {
	tests := []struct {
		name   string
		start  types.TimeString
		end    types.TimeString
		expect []string
	}{
		{
			name:   "two hour window",
			start:  "10:00",
			end:    "12:00",
			expect: []string{"10:00", "10:30", "11:00", "11:30"},
		},
		{
			name:   "single slot window",
			start:  "10:00",
			end:    "10:30",
			expect: []string{"10:00"},
		},
		{
			name:   "window shorter than a slot",
			start:  "10:00",
			end:    "10:15",
			expect: []string{},
		},
		{
			name:   "window not a multiple of slot length drops the tail",
			start:  "10:00",
			end:    "11:15",
			expect: []string{"10:00", "10:30"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window := &domain.ScheduleWindow{
				StartTime: tt.start,
				EndTime:   tt.end,
			}

			slots, err := generateWindowSlots(window, testDate)
			require.NoError(t, err)
			assert.Equal(t, tt.expect, slotTimes(slots))
		})
	}
}

func TestFilterBookedSlots(t *testing.T) {
	window := &domain.ScheduleWindow{
		StartTime: types.TimeString("10:00"),
		EndTime:   types.TimeString("12:00"),
	}
	slots, err := generateWindowSlots(window, testDate)
	require.NoError(t, err)

	t.Run("no appointments keeps all slots", func(t *testing.T) {
		available := filterBookedSlots(slots, nil)
		assert.Equal(t, []string{"10:00", "10:30", "11:00", "11:30"}, slotTimes(available))
	})

	t.Run("booked slot is removed", func(t *testing.T) {
		appointments := []*domain.Appointment{
			{StartTime: "10:30", DurationMinutes: 30, Status: domain.StatusBooked},
		}

		available := filterBookedSlots(slots, appointments)
		assert.Equal(t, []string{"10:00", "11:00", "11:30"}, slotTimes(available))
	})

	t.Run("cancelled appointment frees the slot", func(t *testing.T) {
		appointments := []*domain.Appointment{
			{StartTime: "10:30", DurationMinutes: 30, Status: domain.StatusCancelled},
		}

		available := filterBookedSlots(slots, appointments)
		assert.Equal(t, []string{"10:00", "10:30", "11:00", "11:30"}, slotTimes(available))
	})

	t.Run("hour long appointment blocks two slots", func(t *testing.T) {
		appointments := []*domain.Appointment{
			{StartTime: "10:30", DurationMinutes: 60, Status: domain.StatusBooked},
		}

		available := filterBookedSlots(slots, appointments)
		assert.Equal(t, []string{"10:00", "11:30"}, slotTimes(available))
	})

	t.Run("all slots booked leaves empty list", func(t *testing.T) {
		appointments := []*domain.Appointment{
			{StartTime: "10:00", DurationMinutes: 30, Status: domain.StatusBooked},
			{StartTime: "10:30", DurationMinutes: 30, Status: domain.StatusBooked},
			{StartTime: "11:00", DurationMinutes: 30, Status: domain.StatusBooked},
			{StartTime: "11:30", DurationMinutes: 30, Status: domain.StatusBooked},
		}

		available := filterBookedSlots(slots, appointments)
		assert.Empty(t, available)
	})
}
