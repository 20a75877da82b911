package model

import (
	"atrium/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID     = "id"
	FieldUserID = "user_id"
	FieldRoomID = "room_id"
)

type Booking struct {
	ID     int64 `db:"id" insert:"-"`
	UserID int64 `db:"user_id"`
	RoomID int64 `db:"room_id"`
	model.Metadata
}

// BookingWithRoom is the read model joining a booking to its room snapshot.
type BookingWithRoom struct {
	ID           int64  `db:"id"`
	UserID       int64  `db:"user_id"`
	RoomID       int64  `db:"room_id"`
	RoomHotelID  int64  `db:"room_hotel_id" table:"rooms" column:"hotel_id"`
	RoomName     string `db:"room_name"     table:"rooms" column:"name"`
	RoomCapacity int    `db:"room_capacity" table:"rooms" column:"capacity"`
	RoomImage    string `db:"room_image"    table:"rooms" column:"image"`
	model.Metadata
}

func (BookingWithRoom) GetJoinQuery() string {
	return "JOIN rooms ON rooms.id = bookings.room_id"
}
