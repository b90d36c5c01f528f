package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/yigit/ojtportal/internal/app/models"
	"github.com/yigit/ojtportal/internal/pkg/apperrors"
)

// JWT errors
var (
	ErrInvalidFormat = errors.New("invalid authorization header format")
)

// Claim names the OJT API puts in its tokens. The first non-empty value of each group wins.
var (
	idClaims       = []string{"id", "_id"}
	usernameClaims = []string{"username", "name"}
	emailClaims    = []string{"email"}
	positionClaims = []string{"position"}
)

var parser = jwt.NewParser()

// DecodeClaims reads the payload segment of a token. The header and signature are ignored
// and expiry is not checked, the portal never holds the API's signing key.
func DecodeClaims(tokenString string) (jwt.MapClaims, error) {
	parts := strings.Split(tokenString, ".")
	if len(parts) < 2 {
		return nil, apperrors.ErrTokenMalformed
	}

	payload, err := parser.DecodeSegment(parts[1])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrTokenMalformed, err)
	}

	claims := jwt.MapClaims{}
	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrTokenMalformed, err)
	}
	return claims, nil
}

// DecodeIdentity maps the token payload onto a user. Missing claims become empty strings.
func DecodeIdentity(tokenString string) (models.User, error) {
	claims, err := DecodeClaims(tokenString)
	if err != nil {
		return models.User{}, err
	}

	return models.User{
		ID:       firstClaim(claims, idClaims),
		Username: firstClaim(claims, usernameClaims),
		Email:    firstClaim(claims, emailClaims),
		Position: firstClaim(claims, positionClaims),
	}, nil
}

func firstClaim(claims jwt.MapClaims, names []string) string {
	for _, name := range names {
		if v := claimString(claims[name]); v != "" {
			return v
		}
	}
	return ""
}

// claimString stringifies a claim value. Zero values count as absent.
func claimString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		if val == 0 {
			return ""
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		if !val {
			return ""
		}
		return strconv.FormatBool(val)
	default:
		return fmt.Sprint(val)
	}
}

// BearerHeader builds the Authorization header value for token
func BearerHeader(token string) string {
	return "Bearer " + token
}

// ExtractBearerToken extracts the token from the Authorization header
func ExtractBearerToken(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrInvalidFormat
	}

	// Check if the header starts with "Bearer " (optional)
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer "), nil
	}

	// Otherwise just return the entire header value as the token
	return authHeader, nil
}
