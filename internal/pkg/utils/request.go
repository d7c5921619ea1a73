package utils

import (
	"academia-service/internal/pkg/constvars"
	"academia-service/internal/pkg/dto/requests"
	"net/http"
	"strings"
)

func BuildAcademicQuery(r *http.Request) *requests.AcademicQuery {
	query := r.URL.Query()
	return &requests.AcademicQuery{
		Batch: strings.TrimSpace(query.Get("batch")),
		Date:  strings.TrimSpace(query.Get("date")),
	}
}

func GetSessionToken(r *http.Request) string {
	if token, ok := r.Context().Value(constvars.CONTEXT_SESSION_TOKEN_KEY).(string); ok {
		return token
	}
	return strings.TrimSpace(r.Header.Get(constvars.HeaderXCSRFToken))
}
