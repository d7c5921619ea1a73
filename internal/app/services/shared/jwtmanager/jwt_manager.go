package jwtmanager

import (
	"academia-service/internal/app/config"
	"academia-service/internal/pkg/constvars"
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// renewBefore is how long before expiry a cached service token is replaced.
const renewBefore = 30 * time.Second

// JWTManager signs the short lived HS256 tokens this service presents to the academia upstream.
type JWTManager struct {
	log      *zap.Logger
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
	now      func() time.Time

	mu        sync.Mutex
	cached    string
	cachedExp time.Time
}

// CreateTokenInput defines input parameters for token creation.
type CreateTokenInput struct {
	Subject string
}

// CreateTokenOutput contains the signed token string.
type CreateTokenOutput struct {
	Token     string
	ExpiresAt time.Time
}

func NewJWTManager(cfg *config.InternalConfig, log *zap.Logger) (*JWTManager, error) {
	secret := strings.TrimSpace(cfg.JWT.Secret)
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is empty")
	}

	ttl := time.Duration(cfg.Academia.ServiceTokenExpInMinutes) * time.Minute
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}

	return &JWTManager{
		log:      log,
		secret:   []byte(secret),
		issuer:   cfg.Academia.ServiceTokenIssuer,
		audience: cfg.Academia.ServiceTokenAudience,
		ttl:      ttl,
		now:      time.Now,
	}, nil
}

// CreateToken signs a token for subject with iat and nbf set to now.
func (j *JWTManager) CreateToken(ctx context.Context, in *CreateTokenInput) (*CreateTokenOutput, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	j.log.Debug("JWTManager.CreateToken called", zap.String(constvars.LoggingRequestIDKey, requestID))

	if in == nil || strings.TrimSpace(in.Subject) == "" {
		return nil, fmt.Errorf("subject is required")
	}

	now := j.now().UTC()
	expiresAt := now.Add(j.ttl)
	claims := jwt.RegisteredClaims{
		Issuer:    j.issuer,
		Subject:   in.Subject,
		Audience:  jwt.ClaimStrings{j.audience},
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		ID:        uuid.NewString(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
	if err != nil {
		return nil, err
	}
	return &CreateTokenOutput{Token: signed, ExpiresAt: expiresAt}, nil
}

// ServiceToken returns a cached token for this service, signing a new one when the cached
// token is close to expiry.
func (j *JWTManager) ServiceToken(ctx context.Context) (string, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.cached != "" && j.now().UTC().Add(renewBefore).Before(j.cachedExp) {
		return j.cached, nil
	}

	out, err := j.CreateToken(ctx, &CreateTokenInput{Subject: j.issuer})
	if err != nil {
		return "", err
	}
	j.cached = out.Token
	j.cachedExp = out.ExpiresAt
	return j.cached, nil
}
