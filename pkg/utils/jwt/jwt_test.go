package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	Init("test-secret", time.Hour)

	token, err := GenerateToken(AdminRole)
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, AdminRole, claims.Role)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestValidateTokenRejectsForeignSecret(t *testing.T) {
	Init("first-secret", time.Hour)
	token, err := GenerateToken(AdminRole)
	require.NoError(t, err)

	Init("second-secret", time.Hour)
	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	Init("test-secret", time.Hour)
	_, err := ValidateToken("not.a.token")
	assert.Error(t, err)
}
