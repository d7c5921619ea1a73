package middlewares

import (
	"academia-service/internal/pkg/exceptions"
	"academia-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

// RateLimit limits requests per client IP to MaxRequests per MaxTimeRequestsPerSeconds.
func (m *Middlewares) RateLimit() func(next http.Handler) http.Handler {
	window := time.Duration(m.InternalConfig.App.MaxTimeRequestsPerSeconds) * time.Second
	if window <= 0 {
		window = time.Second
	}
	return httprate.Limit(
		m.InternalConfig.App.MaxRequests,
		window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			markErrorType(r, errorTypeRateLimited)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyRequests(nil))
		}),
	)
}
