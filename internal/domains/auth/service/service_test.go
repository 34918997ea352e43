package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"atrium/config"
	"atrium/infras/jwt"
	jwtMocks "atrium/infras/jwt/mocks"
	"atrium/infras/otel/mocks"
	"atrium/internal/domains/auth/model/dto"
	"atrium/internal/domains/auth/service"
	userMocks "atrium/internal/domains/user/mocks"
	userModel "atrium/internal/domains/user/model"
	"atrium/shared/constant"
	gDto "atrium/shared/dto"
	"atrium/shared/failure"
	"atrium/shared/password"
)

const testUserID = "a1b2c3d4-e5f6-4a7b-8c9d-0e1f2a3b4c5d"

func newAuthService(ctrl *gomock.Controller) (service.Auth, *userMocks.MockUser, *jwtMocks.MockJWT) {
	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)

	svc := service.New(mockUserRepo, &config.Config{}, mocks.NewOtel(), mockJWT)

	return svc, mockUserRepo, mockJWT
}

func TestAuthService_Register(t *testing.T) {
	req := dto.RegisterRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "password123",
	}

	t.Run("successful registration", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, userRepo, _ := newAuthService(ctrl)

		userRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)
		userRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user userModel.User) error {
				assert.Equal(t, "jane@example.com", user.Email)
				assert.Equal(t, constant.RoleUser, user.Role)
				assert.NotEqual(t, "password123", user.Password)
				assert.NoError(t, password.Verify("password123", user.Password))
				return nil
			})

		err := svc.Register(context.Background(), req)

		assert.NoError(t, err)
	})

	t.Run("email already registered", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, userRepo, _ := newAuthService(ctrl)

		userRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		err := svc.Register(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("existence check error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, userRepo, _ := newAuthService(ctrl)

		userRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, errors.New("query error"))

		err := svc.Register(context.Background(), req)

		assert.Error(t, err)
	})
}

func TestAuthService_Login(t *testing.T) {
	hashed, err := password.Hash("password123")
	assert.NoError(t, err)

	storedUser := userModel.User{
		ID:       testUserID,
		Email:    "jane@example.com",
		Password: hashed,
		Role:     constant.RoleUser,
	}

	req := dto.LoginRequest{
		Email:    "jane@example.com",
		Password: "password123",
	}

	t.Run("successful login", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, userRepo, jwtService := newAuthService(ctrl)

		userRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(storedUser, nil)
		jwtService.EXPECT().
			GenerateTokenPair(testUserID, "jane@example.com", constant.RoleUser).
			Return(&jwt.TokenPair{
				AccessToken:  "access-token",
				RefreshToken: "refresh-token",
				ExpiresIn:    900,
			}, nil)

		res, err := svc.Login(context.Background(), req)

		assert.NoError(t, err)
		assert.Equal(t, "access-token", res.AccessToken)
		assert.Equal(t, "refresh-token", res.RefreshToken)
		assert.Equal(t, int64(900), res.ExpiresIn)
	})

	t.Run("non-existent email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, userRepo, _ := newAuthService(ctrl)

		userRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(userModel.User{}, nil)

		_, err := svc.Login(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, userRepo, _ := newAuthService(ctrl)

		userRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(storedUser, nil)

		_, err := svc.Login(context.Background(), dto.LoginRequest{
			Email:    "jane@example.com",
			Password: "wrong-password",
		})

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("token generation error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, userRepo, jwtService := newAuthService(ctrl)

		userRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(storedUser, nil)
		jwtService.EXPECT().
			GenerateTokenPair(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("signing error"))

		_, err := svc.Login(context.Background(), req)

		assert.Error(t, err)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	t.Run("successful refresh", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, _, jwtService := newAuthService(ctrl)

		jwtService.EXPECT().
			RefreshTokens("old-refresh-token").
			Return(&jwt.TokenPair{
				AccessToken:  "new-access-token",
				RefreshToken: "new-refresh-token",
				ExpiresIn:    900,
			}, nil)

		res, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "old-refresh-token"})

		assert.NoError(t, err)
		assert.Equal(t, "new-access-token", res.AccessToken)
	})

	t.Run("invalid refresh token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, _, jwtService := newAuthService(ctrl)

		jwtService.EXPECT().
			RefreshTokens("expired-token").
			Return(nil, errors.New("token expired"))

		_, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "expired-token"})

		assert.Error(t, err)
		assert.Equal(t, failure.KindUnauthorized, failure.GetKind(err))
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	hashed, err := password.Hash("old-password")
	assert.NoError(t, err)

	storedUser := userModel.User{
		ID:       testUserID,
		Email:    "jane@example.com",
		Password: hashed,
		Role:     constant.RoleUser,
	}

	req := dto.ChangePasswordRequest{
		CurrentPassword: "old-password",
		NewPassword:     "new-password",
	}

	t.Run("successful change", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, userRepo, _ := newAuthService(ctrl)

		userRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(storedUser, nil)
		userRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				newHash, _ := fields[userModel.FieldPassword].(string)
				assert.NoError(t, password.Verify("new-password", newHash))
				return nil
			})

		err := svc.ChangePassword(context.Background(), req, testUserID)

		assert.NoError(t, err)
	})

	t.Run("user not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, userRepo, _ := newAuthService(ctrl)

		userRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(userModel.User{}, nil)

		err := svc.ChangePassword(context.Background(), req, testUserID)

		assert.Error(t, err)
		assert.Equal(t, failure.KindNotFound, failure.GetKind(err))
	})

	t.Run("wrong current password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, userRepo, _ := newAuthService(ctrl)

		userRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(storedUser, nil)

		err := svc.ChangePassword(context.Background(), dto.ChangePasswordRequest{
			CurrentPassword: "not-the-password",
			NewPassword:     "new-password",
		}, testUserID)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}
