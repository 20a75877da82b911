package model

import (
	"atrium/shared/model"
)

const (
	TableName  = "tickets"
	EntityName = "ticket"

	FieldID           = "id"
	FieldEnrollmentID = "enrollment_id"
	FieldStatus       = "status"

	TypeTableName = "ticket_types"
)

const (
	StatusReserved = "RESERVED"
	StatusPaid     = "PAID"
)

type Ticket struct {
	ID           int64  `db:"id" insert:"-"`
	TicketTypeID int64  `db:"ticket_type_id"`
	EnrollmentID int64  `db:"enrollment_id"`
	Status       string `db:"status"`
	model.Metadata
}

type TicketType struct {
	ID            int64  `db:"id" insert:"-"`
	Name          string `db:"name"`
	Price         int64  `db:"price"`
	IsRemote      bool   `db:"is_remote"`
	IncludesHotel bool   `db:"includes_hotel"`
	model.Metadata
}

// TicketWithType is the read model joining a ticket to its type, used by the
// booking eligibility checks.
type TicketWithType struct {
	ID            int64  `db:"id"`
	TicketTypeID  int64  `db:"ticket_type_id"`
	EnrollmentID  int64  `db:"enrollment_id"`
	Status        string `db:"status"`
	IsRemote      bool   `db:"is_remote"      table:"ticket_types"`
	IncludesHotel bool   `db:"includes_hotel" table:"ticket_types"`
}

func (TicketWithType) GetJoinQuery() string {
	return "JOIN ticket_types ON ticket_types.id = tickets.ticket_type_id"
}
