package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"atrium/infras/otel"
	"atrium/infras/postgres"
	"atrium/internal/domains/enrollment/model"
	"atrium/shared"
	gRepo "atrium/shared/repository"
)

type Enrollment interface {
	GetByUserID(ctx context.Context, userID int64) (model.Enrollment, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Enrollment]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Enrollment {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Enrollment](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) GetByUserID(ctx context.Context, userID int64) (model.Enrollment, error) {
	return repo.Get(ctx, shared.FilterByID(userID, model.FieldUserID, model.TableName))
}
