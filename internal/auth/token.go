package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/novacast/nova-backend/internal/config"
)

var (
	// ErrInvalidToken — токен не прошёл проверку (подпись/issuer/audience/формат).
	ErrInvalidToken = errors.New("invalid token")
	// ErrTokenExpired — срок действия токена истёк.
	ErrTokenExpired = errors.New("token expired")
)

// accessClaims — клеймы access-токена identity-провайдера.
type accessClaims struct {
	UserID string `json:"uid"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Verifier валидирует access-токены (HS256).
type Verifier struct {
	cfg config.AuthConfig
}

// NewVerifier создаёт Verifier с параметрами из конфигурации.
func NewVerifier(cfg config.AuthConfig) *Verifier {
	return &Verifier{cfg: cfg}
}

// Verify валидирует access-токен и возвращает личность вызывающего.
//
// Ошибки:
//   - ErrTokenExpired — истёк срок действия;
//   - ErrInvalidToken — всё остальное (подпись, issuer, audience, клеймы).
func (v *Verifier) Verify(tokenStr string) (Identity, error) {
	const op = "auth/Verify"

	token, err := jwt.ParseWithClaims(tokenStr, &accessClaims{},
		func(t *jwt.Token) (interface{}, error) {
			if t.Method != jwt.SigningMethodHS256 {
				return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
			}

			return []byte(v.cfg.JWTSecret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(5*time.Second),
		jwt.WithIssuer(v.cfg.Issuer),
		jwt.WithAudience(v.cfg.Audience...),
	)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Identity{}, fmt.Errorf("%s: %w", op, ErrTokenExpired)
		}

		return Identity{}, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid {
		return Identity{}, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return Identity{}, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	role := Role(claims.Role)
	if role != RoleAdmin {
		role = RoleUser
	}

	return Identity{
		UserID: userID,
		Email:  claims.Email,
		Role:   role,
	}, nil
}
