package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(d int) time.Time {
	return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC)
}

func TestIntervalsOverlap(t *testing.T) {
	tests := []struct {
		name     string
		s1, e1   time.Time
		s2, e2   time.Time
		expected bool
	}{
		{
			name: "fully overlapping",
			s1:   day(1), e1: day(10),
			s2: day(3), e2: day(5),
			expected: true,
		},
		{
			name: "partial overlap at start",
			s1:   day(1), e1: day(5),
			s2: day(4), e2: day(10),
			expected: true,
		},
		{
			name: "identical intervals",
			s1:   day(1), e1: day(5),
			s2: day(1), e2: day(5),
			expected: true,
		},
		{
			name: "disjoint",
			s1:   day(1), e1: day(3),
			s2: day(5), e2: day(8),
			expected: false,
		},
		{
			name: "touching endpoints do not overlap",
			s1:   day(1), e1: day(5),
			s2: day(5), e2: day(8),
			expected: false,
		},
		{
			name: "touching endpoints reversed",
			s1:   day(5), e1: day(8),
			s2: day(1), e2: day(5),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IntervalsOverlap(tt.s1, tt.e1, tt.s2, tt.e2))
			// Overlap is symmetric
			assert.Equal(t, tt.expected, IntervalsOverlap(tt.s2, tt.e2, tt.s1, tt.e1))
		})
	}
}

func TestBookingOverlaps(t *testing.T) {
	booking := &Booking{StartDate: day(10), EndDate: day(15)}

	assert.True(t, booking.Overlaps(day(12), day(20)))
	assert.False(t, booking.Overlaps(day(15), day(20)))
	assert.False(t, booking.Overlaps(day(1), day(10)))
}

func TestBookingStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{BookingStatusPending, BookingStatusConfirmed, true},
		{BookingStatusPending, BookingStatusCancelled, true},
		{BookingStatusPending, BookingStatusCompleted, false},
		{BookingStatusConfirmed, BookingStatusCompleted, true},
		{BookingStatusConfirmed, BookingStatusCancelled, true},
		{BookingStatusConfirmed, BookingStatusPending, false},
		{BookingStatusCompleted, BookingStatusCancelled, false},
		{BookingStatusCompleted, BookingStatusConfirmed, false},
		{BookingStatusCancelled, BookingStatusPending, false},
		{BookingStatusCancelled, BookingStatusConfirmed, false},

		// Self transitions are idempotent
		{BookingStatusPending, BookingStatusPending, true},
		{BookingStatusConfirmed, BookingStatusConfirmed, true},
		{BookingStatusCompleted, BookingStatusCompleted, true},
		{BookingStatusCancelled, BookingStatusCancelled, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestBookingStatusIsActive(t *testing.T) {
	assert.True(t, BookingStatusPending.IsActive())
	assert.True(t, BookingStatusConfirmed.IsActive())
	assert.False(t, BookingStatusCompleted.IsActive())
	assert.False(t, BookingStatusCancelled.IsActive())
}

func TestParseBookingStatus(t *testing.T) {
	status, ok := ParseBookingStatus("CONFIRMED")
	assert.True(t, ok)
	assert.Equal(t, BookingStatusConfirmed, status)

	_, ok = ParseBookingStatus("confirmed")
	assert.False(t, ok)

	_, ok = ParseBookingStatus("UNKNOWN")
	assert.False(t, ok)
}
