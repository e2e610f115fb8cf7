package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/vero/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrEmptySubject is returned when a verified token carries no user id.
var ErrEmptySubject = errors.New("empty subject error")

// GenerateSessionToken creates a signed HMAC-SHA256 session token for user.
//
// The token carries the user's id, username and role next to the standard
// claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID
//   - IssuedAt  (iat): issuedAt
//   - ExpiresAt (exp): issuedAt plus tokenDuration
//
// All parameters are required. Returns an error if any of them are empty or zero.
//
// Example usage:
//
//	token, err := utils.GenerateSessionToken("vero", user.Summary(), time.Now(), 7*24*time.Hour, "secret")
func GenerateSessionToken(issuer string, user models.UserSummary, issuedAt time.Time, tokenDuration time.Duration, signKey string) (string, error) {
	if issuer == "" || tokenDuration <= 0 || signKey == "" || user.ID == "" {
		return "", errors.New("invalid params for generating session token")
	}

	claims := &models.SessionClaims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(tokenDuration)),
		},
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during singing session token: %w", err)
	}

	return tokenString, nil
}

// ValidateAndParseSessionToken validates the given session token and
// extracts the session it carries.
//
// Validation includes:
//   - Signing method is HS256 and the signature verifies with tokenSignKey
//   - Issuer (iss) matches tokenIssuer
//   - Expiration (exp) is present and in the future
//   - The userId claim is not empty
//
// Example usage:
//
//	session, err := utils.ValidateAndParseSessionToken(raw, "secret", "vero")
//	if err != nil {
//	    // treat caller as anonymous
//	}
func ValidateAndParseSessionToken(tokenString, tokenSignKey, tokenIssuer string) (models.Session, error) {
	claims := &models.SessionClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.Session{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.UserID == "" {
		return models.Session{}, ErrEmptySubject
	}

	return claims.Session(), nil
}
