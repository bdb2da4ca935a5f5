package service

import (
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// ErrTokenInvalid cubre firma incorrecta, estructura malformada o claims vacíos.
var ErrTokenInvalid = errors.New("token invalid")

// TokenService emite y valida tokens de identidad firmados.
//
// El token lleva un único claim: el id del usuario como subject. No se emite
// expiración; un token emitido es válido mientras el secreto no cambie.
type TokenService struct {
	secret []byte
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Issue firma un token HS256 cuyo subject es el id del usuario.
func (s *TokenService) Issue(userID string) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrTokenInvalid
	}
	if strings.TrimSpace(userID) == "" {
		return "", ErrTokenInvalid
	}
	claims := jwt.RegisteredClaims{Subject: userID}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify valida firma y estructura y devuelve el id del usuario.
func (s *TokenService) Verify(tokenString string) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrTokenInvalid
	}
	if strings.TrimSpace(tokenString) == "" {
		return "", ErrTokenInvalid
	}
	var claims jwt.RegisteredClaims
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	_, err := parser.ParseWithClaims(tokenString, &claims, func(_ *jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		return "", ErrTokenInvalid
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return "", ErrTokenInvalid
	}
	return claims.Subject, nil
}
