package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowboard/flowboard-api/internal/models"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func testUser() *models.User {
	return &models.User{
		ID:    uuid.New(),
		Email: "alice@example.com",
		Role:  models.RoleUser,
	}
}

func TestTokenService_IssueAndValidate(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)
	user := testUser()

	token, err := svc.Issue(user)
	require.NoError(t, err)

	assert.True(t, svc.Validate(token, "alice@example.com"))
	assert.False(t, svc.Validate(token, "bob@example.com"))
}

func TestTokenService_Expiry(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)}
	svc := NewTokenService("test-secret", time.Hour, WithClock(clock.Now))

	token, err := svc.Issue(testUser())
	require.NoError(t, err)

	clock.now = clock.now.Add(59 * time.Minute)
	assert.True(t, svc.Validate(token, "alice@example.com"))

	clock.now = clock.now.Add(2 * time.Minute)
	assert.False(t, svc.Validate(token, "alice@example.com"))
}

func TestTokenService_RejectsForeignSignature(t *testing.T) {
	issuer := NewTokenService("other-secret", time.Hour)
	verifier := NewTokenService("test-secret", time.Hour)

	token, err := issuer.Issue(testUser())
	require.NoError(t, err)

	assert.False(t, verifier.Validate(token, "alice@example.com"))

	// the subject is still readable without the key
	subject, err := verifier.ExtractSubject(token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", subject)
}

func TestTokenService_RejectsNoneAlgorithm(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "alice@example.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	assert.False(t, svc.Validate(token, "alice@example.com"))
}

func TestTokenService_ExtractSubject_Malformed(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		_, err := svc.ExtractSubject(token)
		assert.True(t, errors.Is(err, ErrMalformedToken), token)
		assert.False(t, svc.Validate(token, "alice@example.com"), token)
	}
}

func TestTokenService_ExtractSubject_MissingSubject(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	svc := NewTokenService("test-secret", time.Hour)
	_, err = svc.ExtractSubject(token)
	assert.True(t, errors.Is(err, ErrMalformedToken))
}

func TestNewIdentity_Scopes(t *testing.T) {
	user := testUser()
	id := NewIdentity(user)
	assert.True(t, id.HasScope(ScopeSelf))
	assert.False(t, id.HasScope(ScopeAdmin))

	user.Role = models.RoleAdmin
	admin := NewIdentity(user)
	assert.True(t, admin.HasScope(ScopeAdmin))

	ctx := WithIdentity(context.Background(), admin)
	got, ok := IdentityFrom(ctx)
	require.True(t, ok)
	assert.Equal(t, user.ID, got.UserID)

	_, ok = IdentityFrom(context.Background())
	assert.False(t, ok)
}
