package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/samidy/monosync/models"
)

// GenerateSessionToken creates a signed HMAC-SHA256 JWT carrying the session.
//
// The token includes the following claims:
//   - Issuer    (iss): identifies the service that minted the session
//   - Subject   (sub): the authenticated user's record id
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus maxAge
//   - email: the identity's email, omitted when empty
//
// All parameters are required. Returns an error if any of them are empty or
// zero.
func GenerateSessionToken(issuer string, session models.Session, maxAge time.Duration, signKey string) (string, error) {
	if issuer == "" || session.UserID == "" || maxAge == 0 || signKey == "" {
		return "", errors.New("invalid params for generating session token")
	}

	now := time.Now()
	claims := &models.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   session.UserID,
			ExpiresAt: jwt.NewNumericDate(now.Add(maxAge)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Email: session.Email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing session token: %w", err)
	}

	return tokenString, nil
}

// ValidateSessionToken validates the given session token string and extracts
// the session it carries.
//
// Validation includes:
//   - Signature verification using the provided sign key
//   - Issuer (iss) claim check against the provided issuer
//   - Expiration (exp) claim check
//   - Subject (sub) claim presence
func ValidateSessionToken(tokenString, signKey, issuer string) (models.Session, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.SessionClaims{}, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, jwt.WithIssuer(issuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.Session{}, fmt.Errorf("error occurred validating and parsing session token: %w", err)
	}

	claims, ok := token.Claims.(*models.SessionClaims)
	if !ok {
		return models.Session{}, errors.New("unexpected session claims type")
	}
	if claims.Subject == "" {
		return models.Session{}, errors.New("empty subject error")
	}

	return claims.Session(), nil
}
