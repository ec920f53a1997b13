package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orders/internal/model"
)

func testUser() *model.User {
	return &model.User{
		ID:        7,
		Email:     "ana@example.com",
		Document:  "30123456",
		FirstName: "Ana",
		LastName:  "Garcia",
		Address:   "Main St 123",
		Photo:     "~/images/users/abc.jpg",
		CityID:    42,
		UserType:  model.UserTypeAdmin,
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := NewJWTService("test-secret")

	token, expiration, err := svc.GenerateToken(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// 30-day expiry, allow a little slack for test execution time.
	assert.WithinDuration(t, time.Now().Add(TokenExpiry), expiration, time.Minute)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)

	// Claims snapshot the stored profile exactly.
	assert.Equal(t, "ana@example.com", claims.Subject)
	assert.Equal(t, "Admin", claims.Role)
	assert.Equal(t, "30123456", claims.Document)
	assert.Equal(t, "Ana", claims.FirstName)
	assert.Equal(t, "Garcia", claims.LastName)
	assert.Equal(t, "Main St 123", claims.Address)
	assert.Equal(t, "~/images/users/abc.jpg", claims.Photo)
	assert.Equal(t, 42, claims.CityID)
}

func TestValidateToken_EmptyPhoto(t *testing.T) {
	svc := NewJWTService("test-secret")
	user := testUser()
	user.Photo = ""

	token, _, err := svc.GenerateToken(user)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Empty(t, claims.Photo)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, _, err := NewJWTService("secret-a").GenerateToken(testUser())
	require.NoError(t, err)

	_, err = NewJWTService("secret-b").ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := NewJWTService("test-secret").ValidateToken("not.a.token")
	assert.Error(t, err)
}
