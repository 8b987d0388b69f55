package ports

import "context"

type accessTokenKey struct{}

// WithAccessToken guarda en el contexto el token de la API de inventario del usuario autenticado.
// Los adaptadores de salida lo leen con AccessToken para firmar cada llamada.
func WithAccessToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, accessTokenKey{}, token)
}

// AccessToken devuelve el token guardado con WithAccessToken ("" si no hay).
func AccessToken(ctx context.Context) string {
	token, _ := ctx.Value(accessTokenKey{}).(string)
	return token
}
