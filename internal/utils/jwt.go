package utils // token helpers shared by handlers and middleware

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AccessToken is a signed HS256 JWT plus its expiry. The application issues
// only access tokens; there is no refresh-token rotation.
type AccessToken struct {
	Token string    // serialized JWT
	Exp   time.Time // UTC expiration time
}

// TokenClaims is what middleware extracts from a validated token.
type TokenClaims struct {
	UserID uint64
	Role   string
}

var errInvalidToken = errors.New("invalid token")

// NewAccessToken signs an HS256 JWT carrying the user id (sub) and role.
// ttlMin is the token lifetime in minutes.
func NewAccessToken(secret string, userID uint64, role string, ttlMin int) (AccessToken, error) {
	now := time.Now().UTC()
	exp := now.Add(time.Duration(ttlMin) * time.Minute)
	claims := jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"exp":  exp.Unix(),
		"iat":  now.Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return AccessToken{}, err
	}
	return AccessToken{Token: signed, Exp: exp}, nil
}

// ParseAccessToken validates the signature and expiry of a raw token and
// returns its claims. Tokens signed with anything but HMAC are rejected.
func ParseAccessToken(secret, raw string) (TokenClaims, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return TokenClaims{}, errInvalidToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return TokenClaims{}, errInvalidToken
	}
	sub, ok := claims["sub"].(float64) // jwt decodes numbers as float64
	if !ok {
		return TokenClaims{}, errInvalidToken
	}
	role, _ := claims["role"].(string)
	return TokenClaims{UserID: uint64(sub), Role: role}, nil
}
