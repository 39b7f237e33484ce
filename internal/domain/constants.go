package domain

// Рабочий график по умолчанию
const (
	DefaultOpenTime              = "08:00"
	DefaultCloseTime             = "18:00"
	DefaultSlotStepMinutes       = 30
	DefaultPastSlotMarginMinutes = 5
	DefaultMinCancelNoticeHours  = 2
)

// Бизнес-ограничения
const (
	MaxNotesLength = 500
)

// Форматы даты и времени на границе API
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
