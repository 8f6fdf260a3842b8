package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emre/studentms/internal/app/models"
	"github.com/emre/studentms/internal/pkg/apperrors"
)

func newTestJWTService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: exp,
		TokenIssuer:    "studentms.test",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestJWTService(time.Hour)
	studentID := int64(42)

	user := &models.User{
		ID:        7,
		Username:  "S1001",
		Role:      models.RoleStudent,
		StudentID: &studentID,
	}

	token, err := svc.GenerateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "S1001", claims.Username)
	assert.Equal(t, models.RoleStudent, claims.Role)
	require.NotNil(t, claims.StudentID)
	assert.Equal(t, int64(42), *claims.StudentID)
	assert.Equal(t, "studentms.test", claims.Issuer)
}

func TestValidateTokenAdminHasNoStudentID(t *testing.T) {
	svc := newTestJWTService(time.Hour)

	token, err := svc.GenerateToken(&models.User{
		ID:       1,
		Username: "admin",
		Role:     models.RoleAdmin,
	})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, claims.Role)
	assert.Nil(t, claims.StudentID)
}

func TestValidateTokenExpired(t *testing.T) {
	svc := newTestJWTService(-time.Minute)

	token, err := svc.GenerateToken(&models.User{ID: 1, Username: "admin", Role: models.RoleAdmin})
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	issuer := newTestJWTService(time.Hour)
	verifier := NewJWTService(JWTConfig{
		SecretKey:      "a-different-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "studentms.test",
	})

	token, err := issuer.GenerateToken(&models.User{ID: 1, Username: "admin", Role: models.RoleAdmin})
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

func TestValidateTokenMalformed(t *testing.T) {
	svc := newTestJWTService(time.Hour)

	for _, tokenString := range []string{"", "not-a-token", "a.b.c"} {
		_, err := svc.ValidateToken(tokenString)
		assert.Error(t, err, "token %q should be rejected", tokenString)
	}
}

func TestValidateTokenWrongSigningMethod(t *testing.T) {
	svc := newTestJWTService(time.Hour)

	// alg=none tokens must never verify.
	token := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
		UserID:   1,
		Username: "admin",
		Role:     models.RoleAdmin,
	})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ValidateToken(signed)
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

func TestValidateTokenTampered(t *testing.T) {
	svc := newTestJWTService(time.Hour)

	token, err := svc.GenerateToken(&models.User{ID: 1, Username: "admin", Role: models.RoleAdmin})
	require.NoError(t, err)

	tampered := token[:len(token)-4] + "xxxx"
	_, err = svc.ValidateToken(tampered)
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}
