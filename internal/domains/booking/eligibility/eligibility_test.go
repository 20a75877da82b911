package eligibility

import (
	"testing"

	"github.com/stretchr/testify/assert"

	bookingModel "atrium/internal/domains/booking/model"
	roomModel "atrium/internal/domains/room/model"
	ticketModel "atrium/internal/domains/ticket/model"
	"atrium/shared/failure"
)

func TestCheckEnrollment(t *testing.T) {
	assert.NoError(t, CheckEnrollment(1))

	err := CheckEnrollment(0)
	assert.Error(t, err)
	assert.True(t, failure.IsNotFound(err))
}

func TestCheckTicket(t *testing.T) {
	eligible := ticketModel.TicketWithType{
		ID:            1,
		Status:        ticketModel.StatusPaid,
		IsRemote:      false,
		IncludesHotel: true,
	}

	tests := []struct {
		name   string
		mutate func(t *ticketModel.TicketWithType)
		ok     bool
	}{
		{name: "paid hotel ticket passes", mutate: func(*ticketModel.TicketWithType) {}, ok: true},
		{name: "missing ticket rejects", mutate: func(t *ticketModel.TicketWithType) { t.ID = 0 }},
		{name: "reserved ticket rejects", mutate: func(t *ticketModel.TicketWithType) { t.Status = ticketModel.StatusReserved }},
		{name: "remote ticket rejects", mutate: func(t *ticketModel.TicketWithType) { t.IsRemote = true }},
		{name: "ticket without hotel rejects", mutate: func(t *ticketModel.TicketWithType) { t.IncludesHotel = false }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ticket := eligible
			tt.mutate(&ticket)

			err := CheckTicket(ticket)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.True(t, failure.IsNotFound(err))
			}
		})
	}
}

func TestCheckRoom(t *testing.T) {
	assert.NoError(t, CheckRoom(roomModel.Room{ID: 3, Capacity: 2}))

	err := CheckRoom(roomModel.Room{})
	assert.Error(t, err)
	assert.True(t, failure.IsNotFound(err))
}

func TestCheckCapacity(t *testing.T) {
	tests := []struct {
		name      string
		capacity  int
		occupancy int
		ok        bool
	}{
		{name: "empty room passes", capacity: 1, occupancy: 0, ok: true},
		{name: "below capacity passes", capacity: 3, occupancy: 2, ok: true},
		{name: "at capacity rejects", capacity: 3, occupancy: 3},
		{name: "over capacity rejects", capacity: 1, occupancy: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckCapacity(tt.capacity, tt.occupancy)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.True(t, failure.IsForbidden(err))
			}
		})
	}
}

func TestCheckNotOccupant(t *testing.T) {
	occupants := []bookingModel.Booking{
		{ID: 1, UserID: 10, RoomID: 3},
		{ID: 2, UserID: 11, RoomID: 3},
	}

	assert.NoError(t, CheckNotOccupant(12, occupants))

	err := CheckNotOccupant(11, occupants)
	assert.Error(t, err)
	assert.True(t, failure.IsForbidden(err))
}

func TestOccupancy(t *testing.T) {
	occupants := []bookingModel.Booking{
		{ID: 1, UserID: 10, RoomID: 3},
		{ID: 2, UserID: 11, RoomID: 3},
	}

	assert.Equal(t, 2, Occupancy(occupants, 0))
	assert.Equal(t, 1, Occupancy(occupants, 2))
	assert.Equal(t, 0, Occupancy(nil, 0))
}
