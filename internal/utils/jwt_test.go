package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samidy/monosync/models"
)

const (
	testIssuer  = "monosync-gate"
	testSignKey = "test-sign-key"
)

func testSession() models.Session {
	return models.Session{
		UserID: "usr_123",
		Email:  "listener@example.com",
	}
}

func TestGenerateSessionToken_RoundTrip(t *testing.T) {
	tokenString, err := GenerateSessionToken(testIssuer, testSession(), time.Hour, testSignKey)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	session, err := ValidateSessionToken(tokenString, testSignKey, testIssuer)
	require.NoError(t, err)

	assert.Equal(t, "usr_123", session.UserID)
	assert.Equal(t, "listener@example.com", session.Email)
	assert.WithinDuration(t, time.Now(), session.IssuedAt, 5*time.Second)
}

func TestGenerateSessionToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name    string
		issuer  string
		session models.Session
		maxAge  time.Duration
		signKey string
	}{
		{name: "empty issuer", session: testSession(), maxAge: time.Hour, signKey: testSignKey},
		{name: "empty user id", issuer: testIssuer, maxAge: time.Hour, signKey: testSignKey},
		{name: "zero max age", issuer: testIssuer, session: testSession(), signKey: testSignKey},
		{name: "empty sign key", issuer: testIssuer, session: testSession(), maxAge: time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateSessionToken(tt.issuer, tt.session, tt.maxAge, tt.signKey)
			assert.Error(t, err)
		})
	}
}

func TestValidateSessionToken_WrongSignKey(t *testing.T) {
	tokenString, err := GenerateSessionToken(testIssuer, testSession(), time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateSessionToken(tokenString, "other-key", testIssuer)
	assert.Error(t, err)
}

func TestValidateSessionToken_WrongIssuer(t *testing.T) {
	tokenString, err := GenerateSessionToken("other-service", testSession(), time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateSessionToken(tokenString, testSignKey, testIssuer)
	assert.Error(t, err)
}

func TestValidateSessionToken_Expired(t *testing.T) {
	tokenString, err := GenerateSessionToken(testIssuer, testSession(), time.Nanosecond, testSignKey)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = ValidateSessionToken(tokenString, testSignKey, testIssuer)
	assert.Error(t, err)
}

func TestValidateSessionToken_Garbage(t *testing.T) {
	_, err := ValidateSessionToken("not-a-token", testSignKey, testIssuer)
	assert.Error(t, err)
}
