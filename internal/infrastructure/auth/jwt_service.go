package auth

import (
	"errors"
	"fmt"
	"time"

	"academia_bere/internal/domain/entities"
	"academia_bere/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

type claims struct {
	Email string `json:"email"`
	Rol   string `json:"rol"`
	jwt.RegisteredClaims
}

// JWTService signs HS256 access tokens carrying sub, email and the rol claim.
type JWTService struct {
	secret []byte
	expiry time.Duration
	now    func() time.Time
}

var _ interfaces.ITokenService = (*JWTService)(nil)

func NewJWTService(secret string, expiry time.Duration) *JWTService {
	return &JWTService{secret: []byte(secret), expiry: expiry, now: time.Now}
}

func (s *JWTService) Issue(identity entities.Identity) (string, error) {
	if len(s.secret) == 0 {
		return "", fmt.Errorf("jwt secret not set")
	}
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Email: identity.Email,
		Rol:   string(identity.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.UID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	})
	return token.SignedString(s.secret)
}

func (s *JWTService) Parse(tokenString string) (entities.Identity, error) {
	var c claims
	token, err := jwt.ParseWithClaims(tokenString, &c, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return entities.Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if c.Subject == "" {
		return entities.Identity{}, ErrInvalidToken
	}

	role := entities.Role(c.Rol)
	if role != entities.RoleDocente {
		role = entities.RoleEstudiante
	}
	return entities.Identity{UID: c.Subject, Email: c.Email, Role: role}, nil
}
