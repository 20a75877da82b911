package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"atrium/internal/domains/booking/model"
	"atrium/internal/domains/booking/model/dto"
	gModel "atrium/shared/model"
	"atrium/shared/timezone"
)

func TestBookingResponse_FromModel(t *testing.T) {
	now := timezone.Now()
	bookingModel := model.BookingWithRoom{
		ID:           42,
		UserID:       7,
		RoomID:       10,
		RoomHotelID:  3,
		RoomName:     "Suite 101",
		RoomCapacity: 2,
		RoomImage:    "https://cdn.example.com/rooms/suite-101.png",
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  "test-user",
			ModifiedBy: "test-user",
		},
	}

	var response dto.BookingResponse
	response.FromModel(bookingModel)

	assert.Equal(t, bookingModel.ID, response.ID)
	assert.Equal(t, bookingModel.RoomID, response.Room.ID)
	assert.Equal(t, bookingModel.RoomHotelID, response.Room.HotelID)
	assert.Equal(t, bookingModel.RoomName, response.Room.Name)
	assert.Equal(t, bookingModel.RoomCapacity, response.Room.Capacity)
	assert.Equal(t, bookingModel.RoomImage, response.Room.Image)
	assert.Equal(t, bookingModel.CreatedBy, response.CreatedBy)
	assert.Equal(t, bookingModel.ModifiedBy, response.ModifiedBy)
}
