package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"atrium/infras/jwt"
	"atrium/internal/domains/auth/model/dto"
	"atrium/shared/constant"
)

func TestLoginResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "test-access-token",
		RefreshToken: "test-refresh-token",
		ExpiresIn:    900,
	}

	var response dto.LoginResponse
	response.FromTokenPair(tokenPair)

	assert.Equal(t, tokenPair.AccessToken, response.AccessToken)
	assert.Equal(t, tokenPair.RefreshToken, response.RefreshToken)
	assert.Equal(t, tokenPair.ExpiresIn, response.ExpiresIn)
}

func TestRefreshTokenResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "new-access-token",
		RefreshToken: "new-refresh-token",
		ExpiresIn:    900,
	}

	var response dto.RefreshTokenResponse
	response.FromTokenPair(tokenPair)

	assert.Equal(t, tokenPair.AccessToken, response.AccessToken)
	assert.Equal(t, tokenPair.RefreshToken, response.RefreshToken)
}

func TestRegisterRequest_ToUserModel(t *testing.T) {
	t.Run("defaults role to user", func(t *testing.T) {
		req := dto.RegisterRequest{
			Name:     "Jane Doe",
			Email:    "jane@example.com",
			Password: "plaintext",
		}

		user := req.ToUserModel("guest", "hashed-password")

		assert.NotEmpty(t, user.ID)
		assert.Equal(t, "Jane Doe", user.Name)
		assert.Equal(t, "hashed-password", user.Password)
		assert.Equal(t, constant.RoleUser, user.Role)
		assert.Equal(t, "guest", user.CreatedBy)
	})

	t.Run("keeps explicit role", func(t *testing.T) {
		req := dto.RegisterRequest{
			Name:     "Admin",
			Email:    "admin@example.com",
			Password: "plaintext",
			Role:     constant.RoleAdmin,
		}

		user := req.ToUserModel("guest", "hashed-password")

		assert.Equal(t, constant.RoleAdmin, user.Role)
	})
}

func TestUpdatePasswordRequest(t *testing.T) {
	req := dto.UpdatePasswordRequest{
		Password: "hashed-new-password",
	}

	assert.Equal(t, "hashed-new-password", req.Password)
}
