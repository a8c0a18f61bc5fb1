package domain

// Default operating window for the availability grid
const (
	DefaultOpenTime        = "07:00"
	DefaultCloseTime       = "17:00"
	DefaultSlotStepMinutes = 30
)

// Business validation constants
const (
	MinSlotStepMinutes = 5
	MaxSlotStepMinutes = 480 // 8 hours

	MinBookingDurationMinutes = 5
	MaxBookingDurationMinutes = 12 * 60

	MinResourceCapacity = 1
	MaxResourceNameLen  = 200
	MaxLocationLen      = 300
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
