package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campuscore/CMP-ResourceService/pkg/types"
)

func booking(start, end types.TimeString) *Booking {
	return &Booking{
		StartTime: start,
		EndTime:   end,
		Status:    StatusConfirmed,
	}
}

func TestOverlaps(t *testing.T) {
	b := booking("09:00", "11:00")

	cases := []struct {
		name     string
		start    types.TimeString
		end      types.TimeString
		expected bool
	}{
		{"identical interval", "09:00", "11:00", true},
		{"contained interval", "09:30", "10:30", true},
		{"containing interval", "08:00", "12:00", true},
		{"overlap at start", "08:00", "09:30", true},
		{"overlap at end", "10:30", "12:00", true},
		{"one minute overlap", "10:59", "11:30", true},
		{"touching at end", "11:00", "12:00", false},
		{"touching at start", "08:00", "09:00", false},
		{"before", "07:00", "08:00", false},
		{"after", "12:00", "13:00", false},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, b.Overlaps(tc.start, tc.end))
		})
	}
}

func TestBookingStatus(t *testing.T) {
	confirmed := booking("09:00", "10:00")
	assert.True(t, confirmed.IsConfirmed())
	assert.False(t, confirmed.IsCancelled())
	assert.True(t, confirmed.CanBeEdited())

	cancelled := booking("09:00", "10:00")
	cancelled.Status = StatusCancelled
	assert.False(t, cancelled.IsConfirmed())
	assert.True(t, cancelled.IsCancelled())
	assert.False(t, cancelled.CanBeEdited())
}

func TestValidBookingStatus(t *testing.T) {
	assert.True(t, ValidBookingStatus(StatusConfirmed))
	assert.True(t, ValidBookingStatus(StatusCancelled))
	assert.False(t, ValidBookingStatus("pending"))
	assert.False(t, ValidBookingStatus(""))
}
