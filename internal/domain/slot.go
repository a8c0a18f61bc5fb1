package domain

import "github.com/campuscore/CMP-ResourceService/pkg/types"

// SlotState represents the availability state of a single grid slot.
// Precedence when deriving the state: under_maintenance > booked > available.
type SlotState string

const (
	SlotAvailable        SlotState = "available"
	SlotBooked           SlotState = "booked"
	SlotUnderMaintenance SlotState = "under_maintenance"
)

// Slot is one evaluated point of the availability grid
type Slot struct {
	StartTime types.TimeString
	State     SlotState
}

// IsOpen returns true if the slot can be selected for a new booking
func (s *Slot) IsOpen() bool {
	return s.State == SlotAvailable
}
