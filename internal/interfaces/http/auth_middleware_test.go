package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/lojinha-control-api/internal/application/dto"
	"github.com/jhoicas/lojinha-control-api/internal/application/ports"
	apphttp "github.com/jhoicas/lojinha-control-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/lojinha-control-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "lojinha-control-test"
	testExpMin    = 60
)

var testSession = pkgjwt.Session{
	UserID:        "7",
	Name:          "Ana",
	Email:         "ana@lojinha.com",
	UpstreamToken: "upstream-token-123",
}

// buildTestApp monta AuthMiddleware y un handler que devuelve lo que quedó en la sesión.
func buildTestApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{
				"user":  apphttp.GetUser(c),
				"token": ports.AccessToken(c.UserContext()),
			})
		},
	)
	return app
}

func bearer(t *testing.T, secret string, s pkgjwt.Session) string {
	t.Helper()
	tok, err := pkgjwt.Generate(secret, testIssuer, testExpMin, s)
	require.NoError(t, err)
	return "Bearer " + tok
}

func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeError(t *testing.T, resp *http.Response) dto.ErrorResponse {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_TokenValidoCargaSesion(t *testing.T) {
	app := buildTestApp()

	resp := doRequest(t, app, bearer(t, testJWTSecret, testSession))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		User  dto.UserResponse `json:"user"`
		Token string           `json:"token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "7", body.User.ID)
	assert.Equal(t, "Ana", body.User.Name)
	assert.Equal(t, "ana@lojinha.com", body.User.Email)
	assert.Equal(t, "upstream-token-123", body.Token, "el token de la API debe llegar al contexto de los adaptadores")
}

func TestAuthMiddleware_SinHeader(t *testing.T) {
	resp := doRequest(t, buildTestApp(), "")

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "MISSING_TOKEN", decodeError(t, resp).Code)
}

func TestAuthMiddleware_FormatoInvalido(t *testing.T) {
	resp := doRequest(t, buildTestApp(), "Token abc")

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", decodeError(t, resp).Code)
}

func TestAuthMiddleware_BearerVacio(t *testing.T) {
	resp := doRequest(t, buildTestApp(), "Bearer   ")

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "MISSING_TOKEN", decodeError(t, resp).Code)
}

func TestAuthMiddleware_FirmaDeOtroSecreto(t *testing.T) {
	resp := doRequest(t, buildTestApp(), bearer(t, "otro-secreto", testSession))

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", decodeError(t, resp).Code)
}

func TestAuthMiddleware_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testIssuer, -5, testSession)
	require.NoError(t, err)

	resp := doRequest(t, buildTestApp(), "Bearer "+tok)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", decodeError(t, resp).Code)
}

func TestAuthMiddleware_PrefijoBearerSinDistinguirMayusculas(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testIssuer, testExpMin, testSession)
	require.NoError(t, err)

	resp := doRequest(t, buildTestApp(), "bearer "+tok)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
