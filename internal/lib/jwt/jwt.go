package jwt

import (
	"errors"
	"fmt"
	"time"

	"blog_service/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the identity a verified token resolves to.
type Claims struct {
	AccountID int64
	Role      models.Role
}

// Manager signs and verifies HS256 identity tokens. Rotating the secret
// invalidates every previously issued token.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

func (m *Manager) Issue(accountID int64, role models.Role) (string, error) {
	const op = "jwt.Issue"

	now := time.Now()

	claims := jwt.MapClaims{
		"uid":  accountID,
		"role": string(role),
		"iat":  now.Unix(),
		"exp":  now.Add(m.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return signed, nil
}

// Verify is a pure cryptographic and temporal check; it never touches storage.
func (m *Manager) Verify(tokenStr string) (Claims, error) {
	const op = "jwt.Verify"

	claims := jwt.MapClaims{}

	parsed, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%s: unexpected signing method", op)
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return Claims{}, ErrInvalidToken
	}

	uid, ok := claims["uid"].(float64)
	if !ok {
		return Claims{}, ErrInvalidToken
	}

	roleStr, ok := claims["role"].(string)
	if !ok || !models.Role(roleStr).Valid() {
		return Claims{}, ErrInvalidToken
	}

	return Claims{
		AccountID: int64(uid),
		Role:      models.Role(roleStr),
	}, nil
}
