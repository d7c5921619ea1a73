package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"numeric":  "must be a number",
	"oneof":    "must be one of [%s]",
	"datetime": "must follow the %s format",
	"min":      "must be at least %s",
	"max":      "must be at most %s",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"oneof":    true,
	"datetime": true,
	"min":      true,
	"max":      true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientInvalidBatch                  = "batch must be either 1 or 2"
	ErrClientBatchUnknown                  = "your batch information is not available"
	ErrClientUpstreamUnavailable           = "academic records are unavailable right now, please try again later"
	ErrClientTooManyRequests               = "too many requests, please slow down"
	ErrClientTooManyExports                = "too many timetable exports, please try again later"
	ErrClientNoDayOrder                    = "No information available for today"
	ErrClientSourceFailed                  = "Failed to fetch %s"
)

// Error messages for developers
const (
	ErrDevInvalidInput               = "invalid input"
	ErrDevValidationFailed           = "validation failed"
	ErrDevCannotParseJSON            = "cannot parse JSON"
	ErrDevCannotMarshalJSON          = "cannot marshal JSON"
	ErrDevCannotParseDate            = "cannot parse date %s"
	ErrDevServerDeadlineExceeded     = "server deadline exceeded"
	ErrDevTooManyRequests            = "client rate limit reached"
	ErrDevServerProcess              = "server failed to process the request"
	ErrDevSessionTokenMissing        = "session token header is missing"
	ErrDevInvalidBatch               = "invalid batch number %s"
	ErrDevBatchUnknown               = "user record carries no batch"
	ErrDevUpstreamFetch              = "failed to fetch %s from academia upstream"
	ErrDevUpstreamStatus             = "academia upstream responded with status %d for %s"
	ErrDevUpstreamDecode             = "failed to decode %s from academia upstream"
	ErrDevCreateHTTPRequest          = "failed to create http request"
	ErrDevSignServiceToken           = "failed to sign service token"
	ErrDevRedisGetData               = "failed to get data from redis"
	ErrDevRedisGetNoData             = "no data found in redis for key %s"
	ErrDevRedisSetData               = "failed to set data in redis"
	ErrDevRedisDeleteData            = "failed to delete data in redis"
	ErrDevRedisIncrement             = "failed to increment counter in redis"
	ErrDevRedisUnlock                = "failed to release redis lock"
	ErrDevRedisRefreshLock           = "failed to refresh redis lock"
	ErrDevDBFailedToFindDocument     = "failed to find document"
	ErrDevDBFailedToUpsertDocument   = "failed to upsert document"
	ErrDevMinioFailedToCreateObject  = "failed to create object in bucket %s"
	ErrDevMinioFailedToPresignObject = "failed to presign object in bucket %s"
	ErrDevExportQuotaExceeded        = "export quota exceeded, retry after %d seconds"
	ErrDevRabbitMQPublishMessage     = "failed to publish message to queue %s"
)
