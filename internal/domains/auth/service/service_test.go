package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"atrium/config"
	"atrium/infras/jwt"
	jwtMocks "atrium/infras/jwt/mocks"
	otelMocks "atrium/infras/otel/mocks"
	"atrium/internal/domains/auth/model/dto"
	userModel "atrium/internal/domains/user/model"
	userMocks "atrium/internal/domains/user/mocks"
	"atrium/shared/constant"
	"atrium/shared/failure"
	"atrium/shared/password"
)

func newTestService(t *testing.T) (Auth, *userMocks.MockUser, *jwtMocks.MockJWT) {
	t.Helper()

	ctrl := gomock.NewController(t)
	userRepo := userMocks.NewMockUser(ctrl)
	jwtService := jwtMocks.NewMockJWT(ctrl)

	svc := New(userRepo, &config.Config{}, otelMocks.NewOtel(), jwtService)

	return svc, userRepo, jwtService
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	req := dto.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "supersecret",
	}

	tokenPair := &jwt.TokenPair{
		AccessToken:  "access",
		RefreshToken: "refresh",
		TokenType:    "Bearer",
		ExpiresIn:    900,
	}

	t.Run("success", func(t *testing.T) {
		svc, userRepo, jwtService := newTestService(t)

		userRepo.EXPECT().Exist(ctx, gomock.Any()).Return(false, nil)
		userRepo.EXPECT().CreateReturningID(ctx, gomock.Any()).Return(int64(42), nil)
		jwtService.EXPECT().GenerateTokenPair(ctx, "42", req.Email, constant.RoleUser).Return(tokenPair, nil)

		res, err := svc.Register(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, int64(42), res.UserID)
		assert.Equal(t, "access", res.AccessToken)
	})

	t.Run("email already registered", func(t *testing.T) {
		svc, userRepo, _ := newTestService(t)

		userRepo.EXPECT().Exist(ctx, gomock.Any()).Return(true, nil)

		_, err := svc.Register(ctx, req)

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("repository error", func(t *testing.T) {
		svc, userRepo, _ := newTestService(t)

		userRepo.EXPECT().Exist(ctx, gomock.Any()).Return(false, errors.New("db down"))

		_, err := svc.Register(ctx, req)

		assert.Error(t, err)
		assert.Equal(t, 500, failure.GetCode(err))
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	hashed, err := password.Hash("supersecret")
	if err != nil {
		t.Fatalf("failed to hash fixture password: %v", err)
	}

	user := userModel.User{
		ID:       7,
		Email:    "alice@example.com",
		Password: hashed,
		Role:     constant.RoleUser,
	}

	req := dto.LoginRequest{Email: "alice@example.com", Password: "supersecret"}

	t.Run("success", func(t *testing.T) {
		svc, userRepo, jwtService := newTestService(t)

		userRepo.EXPECT().Get(ctx, gomock.Any()).Return(user, nil)
		jwtService.EXPECT().GenerateTokenPair(ctx, "7", user.Email, user.Role).Return(&jwt.TokenPair{AccessToken: "access"}, nil)

		res, err := svc.Login(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, "access", res.AccessToken)
	})

	t.Run("unknown email", func(t *testing.T) {
		svc, userRepo, _ := newTestService(t)

		userRepo.EXPECT().Get(ctx, gomock.Any()).Return(userModel.User{}, nil)

		_, err := svc.Login(ctx, req)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, userRepo, _ := newTestService(t)

		userRepo.EXPECT().Get(ctx, gomock.Any()).Return(user, nil)

		_, err := svc.Login(ctx, dto.LoginRequest{Email: req.Email, Password: "nope"})

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestRefreshToken(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc, _, jwtService := newTestService(t)

		jwtService.EXPECT().RefreshTokens(ctx, "refresh").Return(&jwt.TokenPair{AccessToken: "new-access"}, nil)

		res, err := svc.RefreshToken(ctx, dto.RefreshTokenRequest{RefreshToken: "refresh"})

		assert.NoError(t, err)
		assert.Equal(t, "new-access", res.AccessToken)
	})

	t.Run("invalid refresh token", func(t *testing.T) {
		svc, _, jwtService := newTestService(t)

		jwtService.EXPECT().RefreshTokens(ctx, "bad").Return(nil, jwt.ErrInvalidToken)

		_, err := svc.RefreshToken(ctx, dto.RefreshTokenRequest{RefreshToken: "bad"})

		assert.Error(t, err)
		assert.Equal(t, 401, failure.GetCode(err))
	})
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()

	hashed, err := password.Hash("oldsecret")
	if err != nil {
		t.Fatalf("failed to hash fixture password: %v", err)
	}

	user := userModel.User{ID: 7, Email: "alice@example.com", Password: hashed}
	req := dto.ChangePasswordRequest{CurrentPassword: "oldsecret", NewPassword: "newsecret12"}

	t.Run("success", func(t *testing.T) {
		svc, userRepo, _ := newTestService(t)

		userRepo.EXPECT().Get(ctx, gomock.Any()).Return(user, nil)
		userRepo.EXPECT().Update(ctx, gomock.Any(), gomock.Any()).Return(nil)

		err := svc.ChangePassword(ctx, req, 7)

		assert.NoError(t, err)
	})

	t.Run("user not found", func(t *testing.T) {
		svc, userRepo, _ := newTestService(t)

		userRepo.EXPECT().Get(ctx, gomock.Any()).Return(userModel.User{}, nil)

		err := svc.ChangePassword(ctx, req, 7)

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("wrong current password", func(t *testing.T) {
		svc, userRepo, _ := newTestService(t)

		userRepo.EXPECT().Get(ctx, gomock.Any()).Return(user, nil)

		err := svc.ChangePassword(ctx, dto.ChangePasswordRequest{CurrentPassword: "nope", NewPassword: "newsecret12"}, 7)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}
