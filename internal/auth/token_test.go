package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/novacast/nova-backend/internal/config"
)

// Файл unit-тестов проверки токенов.
//
// Покрываем:
//   - happy-path: корректный HS256 токен -> Identity с ролью;
//   - неизвестная роль деградирует до user;
//   - просроченный токен -> ErrTokenExpired;
//   - чужая подпись / чужой issuer / битый uid -> ErrInvalidToken;
//   - Into/From round-trip для Identity в контексте.

const testSecret = "unit-test-secret"

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret: testSecret,
		Issuer:    "nova",
		Audience:  []string{"nova-backend"},
	}
}

// signToken собирает HS256 токен с нужными клеймами.
func signToken(t *testing.T, secret, uid, role string, issuer string, ttl time.Duration) string {
	t.Helper()

	now := time.Now()
	claims := accessClaims{
		UserID: uid,
		Email:  "user@example.com",
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuer,
			Subject:   uid,
			Audience:  jwt.ClaimStrings{"nova-backend"},
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

// TestVerify_OK_Admin — корректный токен с ролью admin.
func TestVerify_OK_Admin(t *testing.T) {
	t.Parallel()

	v := NewVerifier(testAuthConfig())
	uid := uuid.New()

	id, err := v.Verify(signToken(t, testSecret, uid.String(), "admin", "nova", time.Hour))
	require.NoError(t, err)
	require.Equal(t, uid, id.UserID)
	require.Equal(t, "user@example.com", id.Email)
	require.True(t, id.IsAdmin())
}

// TestVerify_UnknownRoleDowngradesToUser — неизвестная роль не даёт привилегий.
func TestVerify_UnknownRoleDowngradesToUser(t *testing.T) {
	t.Parallel()

	v := NewVerifier(testAuthConfig())
	uid := uuid.New()

	id, err := v.Verify(signToken(t, testSecret, uid.String(), "superroot", "nova", time.Hour))
	require.NoError(t, err)
	require.Equal(t, RoleUser, id.Role)
	require.False(t, id.IsAdmin())
}

// TestVerify_Expired — просроченный токен.
func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	v := NewVerifier(testAuthConfig())
	uid := uuid.New()

	// Минус час с запасом больше leeway в 5 секунд.
	_, err := v.Verify(signToken(t, testSecret, uid.String(), "user", "nova", -time.Hour))
	require.ErrorIs(t, err, ErrTokenExpired)
}

// TestVerify_WrongSignature — токен, подписанный чужим секретом.
func TestVerify_WrongSignature(t *testing.T) {
	t.Parallel()

	v := NewVerifier(testAuthConfig())
	uid := uuid.New()

	_, err := v.Verify(signToken(t, "other-secret", uid.String(), "user", "nova", time.Hour))
	require.ErrorIs(t, err, ErrInvalidToken)
}

// TestVerify_WrongIssuer — чужой issuer.
func TestVerify_WrongIssuer(t *testing.T) {
	t.Parallel()

	v := NewVerifier(testAuthConfig())
	uid := uuid.New()

	_, err := v.Verify(signToken(t, testSecret, uid.String(), "user", "evil", time.Hour))
	require.ErrorIs(t, err, ErrInvalidToken)
}

// TestVerify_BadUID — uid, не являющийся UUID.
func TestVerify_BadUID(t *testing.T) {
	t.Parallel()

	v := NewVerifier(testAuthConfig())

	_, err := v.Verify(signToken(t, testSecret, "not-a-uuid", "user", "nova", time.Hour))
	require.ErrorIs(t, err, ErrInvalidToken)
}

// TestIdentity_IntoFrom — round-trip личности через контекст.
func TestIdentity_IntoFrom(t *testing.T) {
	t.Parallel()

	want := Identity{UserID: uuid.New(), Email: "a@b.c", Role: RoleAdmin}

	got, ok := From(Into(context.Background(), want))
	require.True(t, ok)
	require.Equal(t, want, got)

	_, ok = From(context.Background())
	require.False(t, ok)
}
