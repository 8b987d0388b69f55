package restapi

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/lojinha-control-api/internal/application/auth"
	"github.com/jhoicas/lojinha-control-api/internal/domain"
	"github.com/jhoicas/lojinha-control-api/internal/domain/entity"
)

var _ auth.Gateway = (*AuthGateway)(nil)

// AuthGateway valida credenciales contra POST /login de la API de inventario.
type AuthGateway struct {
	client *Client
}

// NewAuthGateway construye el gateway.
func NewAuthGateway(client *Client) *AuthGateway {
	return &AuthGateway{client: client}
}

// Login devuelve el token emitido por la API y el usuario.
// Credenciales rechazadas (401 o 422) se reportan como domain.ErrUnauthorized.
func (g *AuthGateway) Login(ctx context.Context, email, password string) (string, *entity.User, error) {
	var resp loginResponse
	err := g.client.sendJSON(ctx, "POST", "/login", loginPayload{Email: email, Password: password}, &resp)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return "", nil, fmt.Errorf("%v: %w", err, domain.ErrUnauthorized)
		}
		return "", nil, err
	}
	if resp.Token == "" {
		return "", nil, fmt.Errorf("upstream POST /login: respuesta sin token: %w", domain.ErrUpstream)
	}
	user := resp.User.toEntity()
	return resp.Token, &user, nil
}
