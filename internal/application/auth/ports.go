package auth

import (
	"context"

	"github.com/jhoicas/lojinha-control-api/internal/domain/entity"
)

// Gateway valida credenciales contra la API de inventario y devuelve su token.
type Gateway interface {
	Login(ctx context.Context, email, password string) (upstreamToken string, user *entity.User, err error)
}
