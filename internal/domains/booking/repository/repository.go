package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"github.com/jmoiron/sqlx"

	"atrium/infras/otel"
	"atrium/infras/postgres"
	"atrium/internal/domains/booking/model"
	"atrium/shared"
	"atrium/shared/constant"
	gDto "atrium/shared/dto"
	gRepo "atrium/shared/repository"
	"atrium/shared/timezone"
)

type Booking interface {
	GetWithRoomByUser(ctx context.Context, userID int64) (model.BookingWithRoom, error)
	GetByIDTx(ctx context.Context, tx *sqlx.Tx, bookingID int64) (model.Booking, error)
	GetAllByRoomTx(ctx context.Context, tx *sqlx.Tx, roomID int64) ([]model.Booking, error)
	InsertReturningIDTx(ctx context.Context, tx *sqlx.Tx, model model.Booking) (int64, error)
	UpdateRoomTx(ctx context.Context, tx *sqlx.Tx, bookingID, roomID int64, modifiedBy string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	withRoom gRepo.Repository[model.BookingWithRoom]
	db       *postgres.Connection
	otel     otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		withRoom:   gRepo.NewRepository[model.BookingWithRoom](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) GetWithRoomByUser(ctx context.Context, userID int64) (model.BookingWithRoom, error) {
	return repo.withRoom.Get(ctx, shared.FilterByID(userID, model.FieldUserID, model.TableName))
}

func (repo *repositoryImpl) GetByIDTx(ctx context.Context, tx *sqlx.Tx, bookingID int64) (model.Booking, error) {
	return repo.GetTx(ctx, tx, shared.FilterByID(bookingID, model.FieldID, model.TableName))
}

func (repo *repositoryImpl) GetAllByRoomTx(ctx context.Context, tx *sqlx.Tx, roomID int64) ([]model.Booking, error) {
	return repo.GetAllTx(ctx, tx, gDto.QueryParams{}, shared.FilterByID(roomID, model.FieldRoomID, model.TableName))
}

func (repo *repositoryImpl) UpdateRoomTx(ctx context.Context, tx *sqlx.Tx, bookingID, roomID int64, modifiedBy string) error {
	fields := map[string]any{
		model.FieldRoomID:        roomID,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: modifiedBy,
	}

	return repo.UpdateTx(ctx, tx, fields, shared.FilterByID(bookingID, model.FieldID, model.TableName))
}
