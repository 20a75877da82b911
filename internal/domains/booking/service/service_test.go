package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"atrium/config"
	kafkaMocks "atrium/infras/kafka/mocks"
	otelMocks "atrium/infras/otel/mocks"
	bookingModel "atrium/internal/domains/booking/model"
	"atrium/internal/domains/booking/model/dto"
	bookingMocks "atrium/internal/domains/booking/mocks"
	enrollmentModel "atrium/internal/domains/enrollment/model"
	enrollmentMocks "atrium/internal/domains/enrollment/mocks"
	roomModel "atrium/internal/domains/room/model"
	roomMocks "atrium/internal/domains/room/mocks"
	ticketModel "atrium/internal/domains/ticket/model"
	ticketMocks "atrium/internal/domains/ticket/mocks"
	"atrium/shared/cache"
	cacheMocks "atrium/shared/cache/mocks"
	"atrium/shared/failure"
)

// fakeTxRunner runs the transactional body directly; repository mocks ignore
// the tx handle.
type fakeTxRunner struct{}

func (fakeTxRunner) WithTx(_ context.Context, fn func(tx *sqlx.Tx) error) error {
	return fn(nil)
}

type testDeps struct {
	bookingRepo    *bookingMocks.MockBooking
	enrollmentRepo *enrollmentMocks.MockEnrollment
	ticketRepo     *ticketMocks.MockTicket
	roomRepo       *roomMocks.MockRoom
	cacheMock      *cacheMocks.MockRedisCache
	kafkaMock      *kafkaMocks.MockClient
}

func newTestService(t *testing.T) (Booking, testDeps) {
	t.Helper()

	ctrl := gomock.NewController(t)
	deps := testDeps{
		bookingRepo:    bookingMocks.NewMockBooking(ctrl),
		enrollmentRepo: enrollmentMocks.NewMockEnrollment(ctrl),
		ticketRepo:     ticketMocks.NewMockTicket(ctrl),
		roomRepo:       roomMocks.NewMockRoom(ctrl),
		cacheMock:      cacheMocks.NewMockRedisCache(ctrl),
		kafkaMock:      kafkaMocks.NewMockClient(ctrl),
	}

	svc := New(
		deps.bookingRepo,
		deps.enrollmentRepo,
		deps.ticketRepo,
		deps.roomRepo,
		fakeTxRunner{},
		&config.Config{},
		deps.cacheMock,
		otelMocks.NewOtel(),
		deps.kafkaMock,
	)

	return svc, deps
}

// expectAfterWrite covers the detached event publish and cache invalidation;
// the goroutine may or may not run before the test returns.
func expectAfterWrite(deps testDeps) {
	deps.kafkaMock.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	deps.cacheMock.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func eligibleTicket() ticketModel.TicketWithType {
	return ticketModel.TicketWithType{
		ID:            5,
		EnrollmentID:  3,
		Status:        ticketModel.StatusPaid,
		IsRemote:      false,
		IncludesHotel: true,
	}
}

func TestGetByUser(t *testing.T) {
	ctx := context.Background()

	t.Run("returns booking with embedded room", func(t *testing.T) {
		svc, deps := newTestService(t)

		deps.cacheMock.EXPECT().Get(ctx, gomock.Any(), gomock.Any()).Return(cache.Nil)
		deps.bookingRepo.EXPECT().GetWithRoomByUser(ctx, int64(10)).Return(bookingModel.BookingWithRoom{
			ID:           1,
			UserID:       10,
			RoomID:       3,
			RoomName:     "Suite 101",
			RoomCapacity: 2,
		}, nil)
		deps.cacheMock.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		res, err := svc.GetByUser(ctx, 10)

		assert.NoError(t, err)
		assert.Equal(t, int64(1), res.ID)
		assert.Equal(t, int64(3), res.Room.ID)
		assert.Equal(t, "Suite 101", res.Room.Name)
	})

	t.Run("no booking yields not found", func(t *testing.T) {
		svc, deps := newTestService(t)

		deps.cacheMock.EXPECT().Get(ctx, gomock.Any(), gomock.Any()).Return(cache.Nil)
		deps.bookingRepo.EXPECT().GetWithRoomByUser(ctx, int64(10)).Return(bookingModel.BookingWithRoom{}, nil)

		_, err := svc.GetByUser(ctx, 10)

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("store failure surfaces as internal error", func(t *testing.T) {
		svc, deps := newTestService(t)

		deps.cacheMock.EXPECT().Get(ctx, gomock.Any(), gomock.Any()).Return(cache.Nil)
		deps.bookingRepo.EXPECT().GetWithRoomByUser(ctx, int64(10)).Return(bookingModel.BookingWithRoom{}, errors.New("db down"))

		_, err := svc.GetByUser(ctx, 10)

		assert.Error(t, err)
		assert.Equal(t, 500, failure.GetCode(err))
	})
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	req := dto.CreateBookingRequest{RoomID: 3}
	enrollment := enrollmentModel.Enrollment{ID: 3, UserID: 10}
	room := roomModel.Room{ID: 3, Capacity: 2, Active: true}

	t.Run("eligible user books an open room", func(t *testing.T) {
		svc, deps := newTestService(t)
		expectAfterWrite(deps)

		gomock.InOrder(
			deps.enrollmentRepo.EXPECT().GetByUserID(ctx, int64(10)).Return(enrollment, nil),
			deps.ticketRepo.EXPECT().GetWithTypeByEnrollmentID(ctx, int64(3)).Return(eligibleTicket(), nil),
			deps.roomRepo.EXPECT().GetForUpdateTx(ctx, gomock.Any(), gomock.Any()).Return(room, nil),
			deps.bookingRepo.EXPECT().GetAllByRoomTx(ctx, gomock.Any(), int64(3)).Return([]bookingModel.Booking{{ID: 1, UserID: 11, RoomID: 3}}, nil),
			deps.bookingRepo.EXPECT().InsertReturningIDTx(ctx, gomock.Any(), gomock.Any()).Return(int64(77), nil),
		)

		res, err := svc.Create(ctx, 10, req)

		assert.NoError(t, err)
		assert.Equal(t, int64(77), res.BookingID)
	})

	t.Run("missing enrollment stops before any other store", func(t *testing.T) {
		svc, deps := newTestService(t)

		deps.enrollmentRepo.EXPECT().GetByUserID(ctx, int64(10)).Return(enrollmentModel.Enrollment{}, nil)

		_, err := svc.Create(ctx, 10, req)

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("reserved ticket stops before the room store", func(t *testing.T) {
		svc, deps := newTestService(t)

		ticket := eligibleTicket()
		ticket.Status = ticketModel.StatusReserved

		gomock.InOrder(
			deps.enrollmentRepo.EXPECT().GetByUserID(ctx, int64(10)).Return(enrollment, nil),
			deps.ticketRepo.EXPECT().GetWithTypeByEnrollmentID(ctx, int64(3)).Return(ticket, nil),
		)

		_, err := svc.Create(ctx, 10, req)

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("remote ticket rejects", func(t *testing.T) {
		svc, deps := newTestService(t)

		ticket := eligibleTicket()
		ticket.IsRemote = true

		gomock.InOrder(
			deps.enrollmentRepo.EXPECT().GetByUserID(ctx, int64(10)).Return(enrollment, nil),
			deps.ticketRepo.EXPECT().GetWithTypeByEnrollmentID(ctx, int64(3)).Return(ticket, nil),
		)

		_, err := svc.Create(ctx, 10, req)

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("nonexistent room stops before counting occupants", func(t *testing.T) {
		svc, deps := newTestService(t)

		gomock.InOrder(
			deps.enrollmentRepo.EXPECT().GetByUserID(ctx, int64(10)).Return(enrollment, nil),
			deps.ticketRepo.EXPECT().GetWithTypeByEnrollmentID(ctx, int64(3)).Return(eligibleTicket(), nil),
			deps.roomRepo.EXPECT().GetForUpdateTx(ctx, gomock.Any(), gomock.Any()).Return(roomModel.Room{}, nil),
		)

		_, err := svc.Create(ctx, 10, req)

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("full room rejects with forbidden", func(t *testing.T) {
		svc, deps := newTestService(t)

		occupants := []bookingModel.Booking{
			{ID: 1, UserID: 11, RoomID: 3},
			{ID: 2, UserID: 12, RoomID: 3},
		}

		gomock.InOrder(
			deps.enrollmentRepo.EXPECT().GetByUserID(ctx, int64(10)).Return(enrollment, nil),
			deps.ticketRepo.EXPECT().GetWithTypeByEnrollmentID(ctx, int64(3)).Return(eligibleTicket(), nil),
			deps.roomRepo.EXPECT().GetForUpdateTx(ctx, gomock.Any(), gomock.Any()).Return(room, nil),
			deps.bookingRepo.EXPECT().GetAllByRoomTx(ctx, gomock.Any(), int64(3)).Return(occupants, nil),
		)

		_, err := svc.Create(ctx, 10, req)

		assert.Error(t, err)
		assert.Equal(t, 403, failure.GetCode(err))
	})

	t.Run("user already occupying the room rejects with forbidden", func(t *testing.T) {
		svc, deps := newTestService(t)

		occupants := []bookingModel.Booking{{ID: 1, UserID: 10, RoomID: 3}}

		gomock.InOrder(
			deps.enrollmentRepo.EXPECT().GetByUserID(ctx, int64(10)).Return(enrollment, nil),
			deps.ticketRepo.EXPECT().GetWithTypeByEnrollmentID(ctx, int64(3)).Return(eligibleTicket(), nil),
			deps.roomRepo.EXPECT().GetForUpdateTx(ctx, gomock.Any(), gomock.Any()).Return(room, nil),
			deps.bookingRepo.EXPECT().GetAllByRoomTx(ctx, gomock.Any(), int64(3)).Return(occupants, nil),
		)

		_, err := svc.Create(ctx, 10, req)

		assert.Error(t, err)
		assert.Equal(t, 403, failure.GetCode(err))
	})

	t.Run("insert failure surfaces as internal error", func(t *testing.T) {
		svc, deps := newTestService(t)

		gomock.InOrder(
			deps.enrollmentRepo.EXPECT().GetByUserID(ctx, int64(10)).Return(enrollment, nil),
			deps.ticketRepo.EXPECT().GetWithTypeByEnrollmentID(ctx, int64(3)).Return(eligibleTicket(), nil),
			deps.roomRepo.EXPECT().GetForUpdateTx(ctx, gomock.Any(), gomock.Any()).Return(room, nil),
			deps.bookingRepo.EXPECT().GetAllByRoomTx(ctx, gomock.Any(), int64(3)).Return(nil, nil),
			deps.bookingRepo.EXPECT().InsertReturningIDTx(ctx, gomock.Any(), gomock.Any()).Return(int64(0), errors.New("insert failed")),
		)

		_, err := svc.Create(ctx, 10, req)

		assert.Error(t, err)
		assert.Equal(t, 500, failure.GetCode(err))
	})
}

func TestChangeRoom(t *testing.T) {
	ctx := context.Background()
	req := dto.CreateBookingRequest{RoomID: 4}
	booking := bookingModel.Booking{ID: 7, UserID: 10, RoomID: 3}
	destination := roomModel.Room{ID: 4, Capacity: 1, Active: true}

	t.Run("moves the booking to an open room", func(t *testing.T) {
		svc, deps := newTestService(t)
		expectAfterWrite(deps)

		gomock.InOrder(
			deps.bookingRepo.EXPECT().GetByIDTx(ctx, gomock.Any(), int64(7)).Return(booking, nil),
			deps.roomRepo.EXPECT().GetForUpdateTx(ctx, gomock.Any(), gomock.Any()).Return(destination, nil),
			deps.bookingRepo.EXPECT().GetAllByRoomTx(ctx, gomock.Any(), int64(4)).Return(nil, nil),
			deps.bookingRepo.EXPECT().UpdateRoomTx(ctx, gomock.Any(), int64(7), int64(4), "10").Return(nil),
		)

		res, err := svc.ChangeRoom(ctx, 10, 7, req)

		assert.NoError(t, err)
		assert.Equal(t, int64(7), res.BookingID)
	})

	t.Run("unknown booking yields not found", func(t *testing.T) {
		svc, deps := newTestService(t)

		deps.bookingRepo.EXPECT().GetByIDTx(ctx, gomock.Any(), int64(7)).Return(bookingModel.Booking{}, nil)

		_, err := svc.ChangeRoom(ctx, 10, 7, req)

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("another user's booking yields not found", func(t *testing.T) {
		svc, deps := newTestService(t)

		deps.bookingRepo.EXPECT().GetByIDTx(ctx, gomock.Any(), int64(7)).Return(bookingModel.Booking{ID: 7, UserID: 99, RoomID: 3}, nil)

		_, err := svc.ChangeRoom(ctx, 10, 7, req)

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("nonexistent destination yields not found", func(t *testing.T) {
		svc, deps := newTestService(t)

		gomock.InOrder(
			deps.bookingRepo.EXPECT().GetByIDTx(ctx, gomock.Any(), int64(7)).Return(booking, nil),
			deps.roomRepo.EXPECT().GetForUpdateTx(ctx, gomock.Any(), gomock.Any()).Return(roomModel.Room{}, nil),
		)

		_, err := svc.ChangeRoom(ctx, 10, 7, req)

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("full destination rejects with forbidden", func(t *testing.T) {
		svc, deps := newTestService(t)

		occupants := []bookingModel.Booking{{ID: 8, UserID: 11, RoomID: 4}}

		gomock.InOrder(
			deps.bookingRepo.EXPECT().GetByIDTx(ctx, gomock.Any(), int64(7)).Return(booking, nil),
			deps.roomRepo.EXPECT().GetForUpdateTx(ctx, gomock.Any(), gomock.Any()).Return(destination, nil),
			deps.bookingRepo.EXPECT().GetAllByRoomTx(ctx, gomock.Any(), int64(4)).Return(occupants, nil),
		)

		_, err := svc.ChangeRoom(ctx, 10, 7, req)

		assert.Error(t, err)
		assert.Equal(t, 403, failure.GetCode(err))
	})

	t.Run("moving to the currently held room succeeds", func(t *testing.T) {
		svc, deps := newTestService(t)
		expectAfterWrite(deps)

		selfReq := dto.CreateBookingRequest{RoomID: 3}
		source := roomModel.Room{ID: 3, Capacity: 1, Active: true}
		occupants := []bookingModel.Booking{booking}

		gomock.InOrder(
			deps.bookingRepo.EXPECT().GetByIDTx(ctx, gomock.Any(), int64(7)).Return(booking, nil),
			deps.roomRepo.EXPECT().GetForUpdateTx(ctx, gomock.Any(), gomock.Any()).Return(source, nil),
			deps.bookingRepo.EXPECT().GetAllByRoomTx(ctx, gomock.Any(), int64(3)).Return(occupants, nil),
			deps.bookingRepo.EXPECT().UpdateRoomTx(ctx, gomock.Any(), int64(7), int64(3), "10").Return(nil),
		)

		res, err := svc.ChangeRoom(ctx, 10, 7, selfReq)

		assert.NoError(t, err)
		assert.Equal(t, int64(7), res.BookingID)
	})
}
