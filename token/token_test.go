// token_test.go - Tests for token generation and verification

package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vehicle-rental-backend/models"
)

func testUser() *models.User {
	return &models.User{ID: 7, Name: "Ali", Email: "a@b.com", Role: models.RoleCustomer}
}

func TestGenerateAndParse(t *testing.T) {
	signed, err := Generate("secret", testUser(), time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := Parse("secret", signed)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "Ali", claims.Name)
	assert.Equal(t, "a@b.com", claims.Email)
	assert.Equal(t, models.RoleCustomer, claims.Role)
}

func TestGenerateRequiresSecret(t *testing.T) {
	_, err := Generate("", testUser(), time.Hour)
	assert.Error(t, err)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	signed, err := Generate("secret", testUser(), time.Hour)
	require.NoError(t, err)

	_, err = Parse("other", signed)
	assert.Error(t, err)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	// Hand-roll an already-expired token; Generate clamps non-positive
	// TTLs to the default.
	claims := Claims{
		UserID: 7,
		Email:  "a@b.com",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = Parse("secret", signed)
	assert.Error(t, err)
}

func TestParseRejectsWrongAlgorithm(t *testing.T) {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: 7}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = Parse("secret", signed)
	assert.Error(t, err)
}
