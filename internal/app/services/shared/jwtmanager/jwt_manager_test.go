package jwtmanager

import (
	"academia-service/internal/app/config"
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestManager(t *testing.T) *JWTManager {
	t.Helper()
	cfg := &config.InternalConfig{
		JWT: config.AppJWT{Secret: "test-secret"},
		Academia: config.AppAcademia{
			ServiceTokenIssuer:       "academia-service",
			ServiceTokenAudience:     "academia-scraper",
			ServiceTokenExpInMinutes: 5,
		},
	}
	manager, err := NewJWTManager(cfg, zap.NewNop())
	require.NoError(t, err)
	return manager
}

func TestNewJWTManager_RequiresSecret(t *testing.T) {
	_, err := NewJWTManager(&config.InternalConfig{}, zap.NewNop())
	assert.Error(t, err)
}

func TestCreateToken_SignsServiceClaims(t *testing.T) {
	manager := newTestManager(t)

	out, err := manager.CreateToken(context.Background(), &CreateTokenInput{Subject: "academia-service"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	claims := jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(out.Token, &claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, jwt.SigningMethodHS256.Alg(), parsed.Method.Alg())
	assert.Equal(t, "academia-service", claims.Subject)
	assert.Equal(t, "academia-service", claims.Issuer)
	assert.True(t, claims.VerifyAudience("academia-scraper", true))
	assert.WithinDuration(t, out.ExpiresAt, claims.ExpiresAt.Time, time.Second)
}

func TestCreateToken_RequiresSubject(t *testing.T) {
	manager := newTestManager(t)
	_, err := manager.CreateToken(context.Background(), &CreateTokenInput{})
	assert.Error(t, err)
}

func TestServiceToken_IsCachedUntilNearExpiry(t *testing.T) {
	manager := newTestManager(t)
	now := time.Date(2025, time.January, 10, 9, 0, 0, 0, time.UTC)
	manager.now = func() time.Time { return now }

	first, err := manager.ServiceToken(context.Background())
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	second, err := manager.ServiceToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)

	now = now.Add(2*time.Minute + 45*time.Second)
	third, err := manager.ServiceToken(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, first, third)
}
