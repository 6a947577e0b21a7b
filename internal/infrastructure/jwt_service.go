package infrastructure

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenExpired means the token was well-formed and correctly signed
	// but its expiry has passed.
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenInvalid means the token is malformed or its signature does not
	// match the payload under the current secret.
	ErrTokenInvalid = errors.New("token invalid")
)

// Claims is the decoded payload of a signed token.
type Claims struct {
	UserID string
	Name   string
}

// JWTService issues and verifies HS256 tokens. The secret and TTL are fixed
// at construction; the service itself is stateless and safe for concurrent
// use.
type JWTService struct {
	secretKey []byte
	ttl       time.Duration
	now       func() time.Time
}

func NewJWTService(secretKey string, ttl time.Duration) *JWTService {
	return &JWTService{
		secretKey: []byte(secretKey),
		ttl:       ttl,
		now:       time.Now,
	}
}

// GenerateToken signs a claim set for the given user valid for the
// configured TTL.
func (j *JWTService) GenerateToken(userID, name string) (string, error) {
	now := j.now()
	claims := jwt.MapClaims{
		"sub":  userID,
		"name": name,
		"iat":  now.Unix(),
		"exp":  now.Add(j.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

// ValidateToken checks the signature and expiry of a token and returns its
// claims. Expired tokens yield ErrTokenExpired; anything else wrong with the
// token yields ErrTokenInvalid.
func (j *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return j.secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(j.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	sub, _ := mapClaims["sub"].(string)
	if sub == "" {
		return nil, ErrTokenInvalid
	}
	name, _ := mapClaims["name"].(string)

	return &Claims{UserID: sub, Name: name}, nil
}
