package middlewares

import (
	"academia-service/internal/pkg/constvars"
	"academia-service/internal/pkg/exceptions"
	"academia-service/internal/pkg/utils"
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// RequireSessionToken rejects requests without the upstream session token header and stores
// the token in the request context. The token is passed through, never interpreted.
func (m *Middlewares) RequireSessionToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimSpace(r.Header.Get(constvars.HeaderXCSRFToken))
		if token == "" {
			m.Log.Info("Middlewares.RequireSessionToken missing session token",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrSessionTokenMissing(nil))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_TOKEN_KEY, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
