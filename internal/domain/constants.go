package domain

// SlotDurationMinutes фиксированная длительность слота записи
// Все записи в салоне занимают ровно один слот
const SlotDurationMinutes = 30

// Business validation constants
const (
	MaxNotesLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
