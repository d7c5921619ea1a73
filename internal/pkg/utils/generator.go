package utils

import (
	"academia-service/internal/pkg/constvars"
	"fmt"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

func GenerateExportObjectName(prefix, owner, fileExtension string) string {
	if owner == "" {
		owner = "anonymous"
	}
	return fmt.Sprintf("%s/%s/%s%s", prefix, owner, uuid.NewString(), fileExtension)
}
