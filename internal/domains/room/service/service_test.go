package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"atrium/config"
	otelMocks "atrium/infras/otel/mocks"
	s3Mocks "atrium/infras/s3/mocks"
	"atrium/internal/domains/room/model"
	"atrium/internal/domains/room/model/dto"
	roomMocks "atrium/internal/domains/room/mocks"
	"atrium/shared/cache"
	cacheMocks "atrium/shared/cache/mocks"
	"atrium/shared/failure"
)

type testDeps struct {
	repo      *roomMocks.MockRoom
	cacheMock *cacheMocks.MockRedisCache
	s3Mock    *s3Mocks.MockS3
}

func newTestService(t *testing.T) (Room, testDeps) {
	t.Helper()

	ctrl := gomock.NewController(t)
	deps := testDeps{
		repo:      roomMocks.NewMockRoom(ctrl),
		cacheMock: cacheMocks.NewMockRedisCache(ctrl),
		s3Mock:    s3Mocks.NewMockS3(ctrl),
	}

	svc := New(deps.repo, &config.Config{}, deps.cacheMock, otelMocks.NewOtel(), deps.s3Mock)

	return svc, deps
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	req := dto.CreateRoomRequest{HotelID: 1, Name: "Suite 101", Capacity: 3}

	t.Run("success without image", func(t *testing.T) {
		svc, deps := newTestService(t)

		deps.repo.EXPECT().CreateReturningID(ctx, gomock.Any()).Return(int64(11), nil)
		deps.cacheMock.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		res, err := svc.Create(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, int64(11), res.RoomID)
	})

	t.Run("repository error", func(t *testing.T) {
		svc, deps := newTestService(t)

		deps.repo.EXPECT().CreateReturningID(ctx, gomock.Any()).Return(int64(0), errors.New("insert failed"))

		_, err := svc.Create(ctx, req)

		assert.Error(t, err)
	})
}

func TestGet(t *testing.T) {
	ctx := context.Background()

	room := model.Room{ID: 11, HotelID: 1, Name: "Suite 101", Capacity: 3, Active: true}

	t.Run("cache miss falls through to repository", func(t *testing.T) {
		svc, deps := newTestService(t)

		deps.cacheMock.EXPECT().Get(ctx, gomock.Any(), gomock.Any()).Return(cache.Nil)
		deps.repo.EXPECT().Get(ctx, gomock.Any()).Return(room, nil)
		deps.cacheMock.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		res, err := svc.Get(ctx, 11)

		assert.NoError(t, err)
		assert.Equal(t, int64(11), res.ID)
		assert.Equal(t, 3, res.Capacity)
	})

	t.Run("room not found", func(t *testing.T) {
		svc, deps := newTestService(t)

		deps.cacheMock.EXPECT().Get(ctx, gomock.Any(), gomock.Any()).Return(cache.Nil)
		deps.repo.EXPECT().Get(ctx, gomock.Any()).Return(model.Room{}, nil)

		_, err := svc.Get(ctx, 99)

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	room := model.Room{ID: 11, HotelID: 1, Name: "Suite 101", Capacity: 3}
	capacity := 4

	t.Run("success", func(t *testing.T) {
		svc, deps := newTestService(t)

		deps.repo.EXPECT().Get(ctx, gomock.Any()).Return(room, nil)
		deps.repo.EXPECT().Update(ctx, gomock.Any(), gomock.Any()).Return(nil)
		deps.cacheMock.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		deps.cacheMock.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		err := svc.Update(ctx, dto.UpdateRoomRequest{Capacity: &capacity}, 11)

		assert.NoError(t, err)
	})

	t.Run("room not found", func(t *testing.T) {
		svc, deps := newTestService(t)

		deps.repo.EXPECT().Get(ctx, gomock.Any()).Return(model.Room{}, nil)

		err := svc.Update(ctx, dto.UpdateRoomRequest{Capacity: &capacity}, 99)

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc, deps := newTestService(t)

		deps.repo.EXPECT().Exist(ctx, gomock.Any()).Return(true, nil)
		deps.repo.EXPECT().Delete(ctx, gomock.Any()).Return(nil)
		deps.cacheMock.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		deps.cacheMock.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		err := svc.Delete(ctx, 11)

		assert.NoError(t, err)
	})

	t.Run("room not found", func(t *testing.T) {
		svc, deps := newTestService(t)

		deps.repo.EXPECT().Exist(ctx, gomock.Any()).Return(false, nil)

		err := svc.Delete(ctx, 99)

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}
