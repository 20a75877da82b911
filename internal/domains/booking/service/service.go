package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"atrium/config"
	"atrium/infras/kafka"
	"atrium/infras/otel"
	"atrium/infras/postgres"
	"atrium/internal/domains/booking/eligibility"
	"atrium/internal/domains/booking/model"
	"atrium/internal/domains/booking/model/dto"
	"atrium/internal/domains/booking/repository"
	enrollmentRepo "atrium/internal/domains/enrollment/repository"
	roomModel "atrium/internal/domains/room/model"
	roomRepo "atrium/internal/domains/room/repository"
	ticketRepo "atrium/internal/domains/ticket/repository"
	"atrium/shared"
	"atrium/shared/cache"
	"atrium/shared/constant"
	"atrium/shared/failure"
	gModel "atrium/shared/model"
	"atrium/shared/timezone"
)

const (
	cacheGetBooking = "booking:get"

	eventBookingCreated     = "booking.created"
	eventBookingRoomChanged = "booking.room_changed"
)

type bookingEvent struct {
	Event     string `json:"event"`
	BookingID int64  `json:"booking_id"`
	UserID    int64  `json:"user_id"`
	RoomID    int64  `json:"room_id"`
	At        string `json:"at"`
}

type Booking interface {
	GetByUser(ctx context.Context, userID int64) (dto.BookingResponse, error)
	Create(ctx context.Context, userID int64, req dto.CreateBookingRequest) (dto.CreateBookingResponse, error)
	ChangeRoom(ctx context.Context, userID, bookingID int64, req dto.CreateBookingRequest) (dto.UpdateBookingResponse, error)
}

type serviceImpl struct {
	bookingRepo    repository.Booking
	enrollmentRepo enrollmentRepo.Enrollment
	ticketRepo     ticketRepo.Ticket
	roomRepo       roomRepo.Room
	tx             postgres.TxRunner
	cfg            *config.Config
	cache          cache.RedisCache
	otel           otel.Otel
	kafka          kafka.Client
}

func New(
	bookingRepo repository.Booking,
	enrollmentRepo enrollmentRepo.Enrollment,
	ticketRepo ticketRepo.Ticket,
	roomRepo roomRepo.Room,
	tx postgres.TxRunner,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	kafkaClient kafka.Client,
) Booking {
	return &serviceImpl{
		bookingRepo:    bookingRepo,
		enrollmentRepo: enrollmentRepo,
		ticketRepo:     ticketRepo,
		roomRepo:       roomRepo,
		tx:             tx,
		cfg:            cfg,
		cache:          cache,
		otel:           otel,
		kafka:          kafkaClient,
	}
}

func (s *serviceImpl) GetByUser(ctx context.Context, userID int64) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByUser")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, strconv.FormatInt(userID, 10))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.bookingRepo.GetWithRoomByUser(ctx, userID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == 0 {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

// Create admits a user into a room. Enrollment and ticket checks run before
// any room read so an ineligible user never touches room state; the room
// lookup, occupancy count and insert share one transaction with the room row
// locked, which serializes concurrent writers on the same room.
func (s *serviceImpl) Create(ctx context.Context, userID int64, req dto.CreateBookingRequest) (res dto.CreateBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	enrollment, err := s.enrollmentRepo.GetByUserID(ctx, userID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get enrollment")

		return res, fmt.Errorf("failed to get enrollment: %w", err)
	}

	if err = eligibility.CheckEnrollment(enrollment.ID); err != nil {
		return res, err
	}

	ticket, err := s.ticketRepo.GetWithTypeByEnrollmentID(ctx, enrollment.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get ticket")

		return res, fmt.Errorf("failed to get ticket: %w", err)
	}

	if err = eligibility.CheckTicket(ticket); err != nil {
		return res, err
	}

	var bookingID int64

	err = s.tx.WithTx(ctx, func(tx *sqlx.Tx) error {
		room, err := s.lockRoom(ctx, tx, req.RoomID)
		if err != nil {
			return err
		}

		occupants, err := s.bookingRepo.GetAllByRoomTx(ctx, tx, req.RoomID)
		if err != nil {
			log.Error().Err(err).Msg("failed to get room occupants")

			return fmt.Errorf("failed to get room occupants: %w", err)
		}

		if err = eligibility.CheckCapacity(room.Capacity, len(occupants)); err != nil {
			return err
		}

		if err = eligibility.CheckNotOccupant(userID, occupants); err != nil {
			return err
		}

		user := strconv.FormatInt(userID, 10)
		now := timezone.Now()

		bookingID, err = s.bookingRepo.InsertReturningIDTx(ctx, tx, model.Booking{
			UserID: userID,
			RoomID: req.RoomID,
			Metadata: gModel.Metadata{
				CreatedAt:  now,
				ModifiedAt: now,
				CreatedBy:  user,
				ModifiedBy: user,
			},
		})

		return err
	})
	if err != nil {
		return res, err
	}

	s.afterWrite(ctx, eventBookingCreated, bookingID, userID, req.RoomID)

	res.BookingID = bookingID

	return res, nil
}

// ChangeRoom moves an existing booking to another room. The booking being
// moved never counts against its destination occupancy, so a move to the room
// it already occupies is a no-op that succeeds.
func (s *serviceImpl) ChangeRoom(ctx context.Context, userID, bookingID int64, req dto.CreateBookingRequest) (res dto.UpdateBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ChangeRoom")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.tx.WithTx(ctx, func(tx *sqlx.Tx) error {
		booking, err := s.bookingRepo.GetByIDTx(ctx, tx, bookingID)
		if err != nil {
			log.Error().Err(err).Msg("failed to get booking")

			return fmt.Errorf("failed to get booking: %w", err)
		}

		if booking.ID == 0 || booking.UserID != userID {
			return failure.NotFound("booking not found")
		}

		room, err := s.lockRoom(ctx, tx, req.RoomID)
		if err != nil {
			return err
		}

		occupants, err := s.bookingRepo.GetAllByRoomTx(ctx, tx, req.RoomID)
		if err != nil {
			log.Error().Err(err).Msg("failed to get room occupants")

			return fmt.Errorf("failed to get room occupants: %w", err)
		}

		if err = eligibility.CheckCapacity(room.Capacity, eligibility.Occupancy(occupants, bookingID)); err != nil {
			return err
		}

		return s.bookingRepo.UpdateRoomTx(ctx, tx, bookingID, req.RoomID, strconv.FormatInt(userID, 10))
	})
	if err != nil {
		return res, err
	}

	s.afterWrite(ctx, eventBookingRoomChanged, bookingID, userID, req.RoomID)

	res.BookingID = bookingID

	return res, nil
}

func (s *serviceImpl) lockRoom(ctx context.Context, tx *sqlx.Tx, roomID int64) (roomModel.Room, error) {
	room, err := s.roomRepo.GetForUpdateTx(ctx, tx, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return room, fmt.Errorf("failed to get room: %w", err)
	}

	return room, eligibility.CheckRoom(room)
}

// afterWrite publishes the lifecycle event and drops the user's cached booking.
// Both run detached from the request so a slow broker never delays the response.
func (s *serviceImpl) afterWrite(ctx context.Context, event string, bookingID, userID, roomID int64) {
	go func() {
		c := context.WithoutCancel(ctx)

		message := kafka.Message{
			Key: strconv.FormatInt(bookingID, 10),
			Value: bookingEvent{
				Event:     event,
				BookingID: bookingID,
				UserID:    userID,
				RoomID:    roomID,
				At:        timezone.Now().Format(constant.DateFormat),
			},
		}

		if err := s.kafka.SendMessages(c, s.cfg.External.Kafka.BookingTopic, message); err != nil {
			log.Error().Err(err).Str("event", event).Msg("failed to publish booking event")
		}

		cacheKey := shared.BuildCacheKey(cacheGetBooking, strconv.FormatInt(userID, 10))
		if err := s.cache.Delete(c, cacheKey); err != nil {
			log.Error().Err(err).Msg("failed to invalidate booking cache")
		}
	}()
}
