package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/lojinha-control-api/pkg/jwt"
)

func TestGenerateParse_RoundTrip(t *testing.T) {
	s := jwt.Session{UserID: "7", Name: "Ana", Email: "ana@lojinha.test", UpstreamToken: "up-123"}

	token, err := jwt.Generate("secret", "lojinha-control", 60, s)
	require.NoError(t, err)

	got, err := jwt.Parse("secret", token)
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	token, err := jwt.Generate("secret", "lojinha-control", 60, jwt.Session{UserID: "1"})
	require.NoError(t, err)

	_, err = jwt.Parse("otro-secret", token)
	assert.Error(t, err)
}

func TestParse_Expirado(t *testing.T) {
	token, err := jwt.Generate("secret", "lojinha-control", -5, jwt.Session{UserID: "1"})
	require.NoError(t, err)

	_, err = jwt.Parse("secret", token)
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := jwt.Generate("", "x", 60, jwt.Session{})
	assert.Error(t, err)
}
