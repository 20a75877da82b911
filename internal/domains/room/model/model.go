package model

import "atrium/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID       = "id"
	FieldHotelID  = "hotel_id"
	FieldName     = "name"
	FieldCapacity = "capacity"
	FieldImage    = "image"
	FieldActive   = "active"
)

type Room struct {
	ID       int64  `db:"id" insert:"-"`
	HotelID  int64  `db:"hotel_id"`
	Name     string `db:"name"`
	Capacity int    `db:"capacity"`
	Image    string `db:"image"`
	Active   bool   `db:"active"`
	model.Metadata
}
