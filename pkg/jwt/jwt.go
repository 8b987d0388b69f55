package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar JWT más los datos de la sesión del dashboard.
// UpstreamToken es el token emitido por la API de inventario; se reenvía en cada llamada.
type Claims struct {
	jwt.RegisteredClaims
	UserID        string `json:"user_id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	UpstreamToken string `json:"upstream_token"`
}

// Session datos con los que se firma el token.
type Session struct {
	UserID        string
	Name          string
	Email         string
	UpstreamToken string
}

// Generate genera un token JWT firmado (HS256) para la sesión dada.
func Generate(secret, issuer string, expMinutes int, s Session) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   s.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID:        s.UserID,
		Name:          s.Name,
		Email:         s.Email,
		UpstreamToken: s.UpstreamToken,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token y devuelve la sesión.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (Session, error) {
	if secret == "" {
		return Session{}, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return Session{}, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Session{}, fmt.Errorf("claims inválidos")
	}
	return Session{
		UserID:        claims.UserID,
		Name:          claims.Name,
		Email:         claims.Email,
		UpstreamToken: claims.UpstreamToken,
	}, nil
}
