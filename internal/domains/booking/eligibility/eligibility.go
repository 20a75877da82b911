// Package eligibility holds the booking admission rules as pure checks over
// already-loaded records. Each check returns nil to continue or a terminal
// failure carrying the HTTP code the caller propagates unchanged.
package eligibility

import (
	bookingModel "atrium/internal/domains/booking/model"
	roomModel "atrium/internal/domains/room/model"
	ticketModel "atrium/internal/domains/ticket/model"
	"atrium/shared/failure"
)

// CheckEnrollment requires the user to be enrolled in the event.
func CheckEnrollment(enrollmentID int64) error {
	if enrollmentID == 0 {
		return failure.NotFound("enrollment not found")
	}

	return nil
}

// CheckTicket requires a ticket that is paid for, includes hotel accommodation
// and is not remote. Any one violation rejects.
func CheckTicket(ticket ticketModel.TicketWithType) error {
	if ticket.ID == 0 || ticket.Status == ticketModel.StatusReserved || ticket.IsRemote || !ticket.IncludesHotel {
		return failure.NotFound("no eligible ticket for booking")
	}

	return nil
}

// CheckRoom requires the target room to exist.
func CheckRoom(room roomModel.Room) error {
	if room.ID == 0 {
		return failure.NotFound("room not found")
	}

	return nil
}

// CheckCapacity requires occupancy to stay strictly below capacity, so a room
// exactly at capacity rejects further occupants.
func CheckCapacity(capacity, occupancy int) error {
	if occupancy >= capacity {
		return failure.Forbidden("room is at full capacity")
	}

	return nil
}

// CheckNotOccupant rejects a user who already holds one of the room's bookings.
func CheckNotOccupant(userID int64, occupants []bookingModel.Booking) error {
	for _, booking := range occupants {
		if booking.UserID == userID {
			return failure.Forbidden("user already occupies this room")
		}
	}

	return nil
}

// Occupancy counts the room's bookings, optionally excluding the booking being
// moved so a self-move never counts against its own destination.
func Occupancy(occupants []bookingModel.Booking, excludeBookingID int64) int {
	count := 0

	for _, booking := range occupants {
		if booking.ID == excludeBookingID {
			continue
		}

		count++
	}

	return count
}
