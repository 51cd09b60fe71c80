package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateParse_RoundTrip(t *testing.T) {
	tok, err := Generate("secreto", "planta-norte", RoleBodeguero, "cafetal-api", 5)
	require.NoError(t, err)

	sub, role, err := Parse("secreto", tok)
	require.NoError(t, err)
	assert.Equal(t, "planta-norte", sub)
	assert.Equal(t, RoleBodeguero, role)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	tok, err := Generate("secreto", "svc", RoleAdmin, "cafetal-api", 5)
	require.NoError(t, err)

	_, _, err = Parse("otro-secreto", tok)
	assert.Error(t, err)
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := Generate("secreto", "svc", RoleAdmin, "cafetal-api", -1)
	require.NoError(t, err)

	_, _, err = Parse("secreto", tok)
	assert.Error(t, err)
}

func TestGenerate_SinSecreto(t *testing.T) {
	_, err := Generate("", "svc", RoleAdmin, "cafetal-api", 5)
	assert.Error(t, err)
}
