package service

import (
	"testing"

	"frontera-be/internal/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAccessTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	user := &entity.User{
		Id:   uuid.New(),
		Role: entity.UserRoleAdmin,
	}

	signed, err := signAccessToken(user)
	require.NoError(t, err)

	parsed, err := jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, user.Id.String(), claims["user_id"])
	assert.Equal(t, "admin", claims["role"])
	assert.NotNil(t, claims["exp"])
}

func TestToUserProfile(t *testing.T) {
	avatar := "https://example.com/a.png"
	user := &entity.User{
		Id:        uuid.New(),
		Email:     "founder@acme.test",
		FullName:  "Acme Founder",
		Role:      entity.UserRoleUser,
		Status:    entity.UserStatusActive,
		AvatarURL: &avatar,
	}

	profile := toUserProfile(user)
	assert.Equal(t, user.Id, profile.Id)
	assert.Equal(t, "founder@acme.test", profile.Email)
	assert.Equal(t, "user", profile.Role)
	assert.Equal(t, "active", profile.Status)
	assert.Equal(t, avatar, profile.AvatarURL)
}
