package model

import (
	"time"

	"atrium/shared/model"
)

const (
	TableName  = "enrollments"
	EntityName = "enrollment"

	FieldID     = "id"
	FieldUserID = "user_id"
)

type Enrollment struct {
	ID       int64     `db:"id" insert:"-"`
	UserID   int64     `db:"user_id"`
	Name     string    `db:"name"`
	CPF      string    `db:"cpf"`
	Birthday time.Time `db:"birthday"`
	Phone    string    `db:"phone"`
	model.Metadata
}
