package academia

import (
	"academia-service/internal/app/contracts"
	"academia-service/internal/app/models"
	"academia-service/internal/pkg/constvars"
	"academia-service/internal/pkg/exceptions"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// TokenSource hands out the bearer token presented to the upstream.
type TokenSource interface {
	ServiceToken(ctx context.Context) (string, error)
}

type academiaClient struct {
	BaseUrl    string
	HTTPClient *http.Client
	Limiter    *rate.Limiter
	Tokens     TokenSource
	Log        *zap.Logger
}

// NewAcademiaClient builds a client whose outbound calls share one token bucket of
// requestsPerSecond with the given burst.
func NewAcademiaClient(baseUrl string, timeout time.Duration, requestsPerSecond float64, burst int, tokens TokenSource, logger *zap.Logger) contracts.AcademiaClient {
	if burst < 1 {
		burst = 1
	}
	limit := rate.Limit(requestsPerSecond)
	if requestsPerSecond <= 0 {
		limit = rate.Inf
	}
	return &academiaClient{
		BaseUrl:    strings.TrimRight(baseUrl, "/"),
		HTTPClient: &http.Client{Timeout: timeout},
		Limiter:    rate.NewLimiter(limit, burst),
		Tokens:     tokens,
		Log:        logger,
	}
}

func (c *academiaClient) FetchPlanner(ctx context.Context) (*models.PlannerTable, error) {
	var table models.PlannerTable
	if err := c.get(ctx, constvars.AcademiaPathPlanner, "", constvars.ResourceCalendar, &table); err != nil {
		return nil, err
	}
	return &table, nil
}

func (c *academiaClient) FetchCourses(ctx context.Context, sessionToken string) (*models.RawCourseList, error) {
	var list models.RawCourseList
	if err := c.get(ctx, constvars.AcademiaPathCourses, sessionToken, constvars.ResourceCourses, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *academiaClient) FetchUser(ctx context.Context, sessionToken string) (*models.User, error) {
	var user models.User
	if err := c.get(ctx, constvars.AcademiaPathUser, sessionToken, constvars.ResourceUser, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *academiaClient) get(ctx context.Context, path, sessionToken, resource string, out interface{}) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	endpoint := c.BaseUrl + path
	c.Log.Info("academiaClient.get called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUpstreamURLKey, endpoint),
	)

	if err := c.Limiter.Wait(ctx); err != nil {
		c.Log.Error("academiaClient.get outbound limiter wait aborted",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrUpstreamFetch(err, resource)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		c.Log.Error("academiaClient.get error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrCreateHTTPRequest(err)
	}

	token, err := c.Tokens.ServiceToken(ctx)
	if err != nil {
		c.Log.Error("academiaClient.get error signing service token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrSignServiceToken(err)
	}
	req.Header.Set(constvars.HeaderAuthorization, fmt.Sprintf(constvars.AuthorizationBearerFormat, token))
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	if requestID != "" {
		req.Header.Set(constvars.HeaderXRequestID, requestID)
	}
	if sessionToken != "" {
		req.Header.Set(constvars.HeaderXCSRFToken, sessionToken)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("academiaClient.get error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrUpstreamFetch(err, resource)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		statusErr := fmt.Errorf("upstream %s: %s", resp.Status, strings.TrimSpace(string(body)))
		c.Log.Error("academiaClient.get unexpected status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.Error(statusErr),
		)
		if resp.StatusCode == constvars.StatusUnauthorized {
			return exceptions.ErrSessionTokenMissing(statusErr)
		}
		return exceptions.ErrUpstreamStatus(statusErr, resp.StatusCode, resource)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.Log.Error("academiaClient.get error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrUpstreamDecode(err, resource)
	}

	c.Log.Info("academiaClient.get succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSourceKey, resource),
	)
	return nil
}
