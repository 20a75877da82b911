package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"atrium/infras/otel"
	"atrium/infras/postgres"
	"atrium/internal/domains/ticket/model"
	"atrium/shared"
	gRepo "atrium/shared/repository"
)

type Ticket interface {
	GetWithTypeByEnrollmentID(ctx context.Context, enrollmentID int64) (model.TicketWithType, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.TicketWithType]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Ticket {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.TicketWithType](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) GetWithTypeByEnrollmentID(ctx context.Context, enrollmentID int64) (model.TicketWithType, error) {
	return repo.Get(ctx, shared.FilterByID(enrollmentID, model.FieldEnrollmentID, model.TableName))
}
