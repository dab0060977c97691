package jwt

import (
	"strings"
	"testing"
	"time"

	"blog_service/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify_Success(t *testing.T) {
	t.Parallel()

	m := NewManager("super-secret", time.Hour)

	token, err := m.Issue(42, models.RoleAdmin)
	require.NoError(t, err)

	claims, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.AccountID)
	assert.Equal(t, models.RoleAdmin, claims.Role)
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	m := NewManager("secret", -time.Second)

	token, err := m.Issue(1, models.RoleUser)
	require.NoError(t, err)

	_, err = m.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewManager("right-secret", time.Hour)
	verifier := NewManager("wrong-secret", time.Hour)

	token, err := issuer.Issue(1, models.RoleUser)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Tampered(t *testing.T) {
	t.Parallel()

	m := NewManager("secret", time.Hour)

	token, err := m.Issue(7, models.RoleUser)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	// Flip a character in the middle of each segment.
	for i, part := range parts {
		tampered := []byte(part)
		mid := len(tampered) / 2
		if tampered[mid] == 'a' {
			tampered[mid] = 'b'
		} else {
			tampered[mid] = 'a'
		}

		segments := append([]string{}, parts...)
		segments[i] = string(tampered)

		_, err := m.Verify(strings.Join(segments, "."))
		assert.ErrorIs(t, err, ErrInvalidToken, "segment %d", i)
	}
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	m := NewManager("secret", time.Hour)

	for _, tokenStr := range []string{"", "not.a.jwt", "garbage"} {
		_, err := m.Verify(tokenStr)
		require.ErrorIs(t, err, ErrInvalidToken)
	}
}
