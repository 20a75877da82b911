package dto

import (
	"atrium/internal/domains/booking/model"
	gDto "atrium/shared/dto"
)

type CreateBookingRequest struct {
	RoomID int64 `json:"roomId" validate:"required,min=1"`
}

type RoomSummary struct {
	ID       int64  `json:"id"`
	HotelID  int64  `json:"hotelId"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	Image    string `json:"image"`
}

type BookingResponse struct {
	ID   int64       `json:"id"`
	Room RoomSummary `json:"room"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(m model.BookingWithRoom) {
	r.ID = m.ID
	r.Room = RoomSummary{
		ID:       m.RoomID,
		HotelID:  m.RoomHotelID,
		Name:     m.RoomName,
		Capacity: m.RoomCapacity,
		Image:    m.RoomImage,
	}
	r.Metadata.FromModel(m.Metadata)
}

type CreateBookingResponse struct {
	BookingID int64 `json:"bookingId"`
}

type UpdateBookingResponse struct {
	BookingID int64 `json:"bookingId"`
}
