package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/lojinha-control-api/internal/application/dto"
	"github.com/jhoicas/lojinha-control-api/internal/domain"
	"github.com/jhoicas/lojinha-control-api/internal/domain/entity"
	"github.com/jhoicas/lojinha-control-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase login contra la API de inventario y emisión del token del dashboard.
type AuthUseCase struct {
	gateway Gateway
	jwtCfg  JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(gateway Gateway, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{gateway: gateway, jwtCfg: jwtCfg}
}

// Login verifica email/password en la API, genera el JWT del dashboard
// (que lleva dentro el token de la API) y retorna token + usuario.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" || in.Password == "" {
		return nil, fmt.Errorf("email y password son obligatorios: %w", domain.ErrInvalidInput)
	}

	upstreamToken, user, err := uc.gateway.Login(ctx, email, in.Password)
	if err != nil {
		return nil, err
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes, jwt.Session{
		UserID:        user.ID,
		Name:          user.Name,
		Email:         user.Email,
		UpstreamToken: upstreamToken,
	})
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:     token,
		ExpiresIn: uc.jwtCfg.ExpMinutes * 60,
		User:      toUserResponse(user),
	}, nil
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}
