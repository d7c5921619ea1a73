package constvars

const (
	LoggingRequestIDKey     = "request_id"
	LoggingMethodKey        = "method"
	LoggingEndpointKey      = "endpoint"
	LoggingRemoteAddrKey    = "remote_addr"
	LoggingUserAgentKey     = "user_agent"
	LoggingQueryKey         = "query"
	LoggingStatusCodeKey    = "status_code"
	LoggingDurationKey      = "duration"
	LoggingSuccessKey       = "success"
	LoggingOperationKey     = "operation"
	LoggingErrorCodeKey     = "error_code"
	LoggingErrorMessageKey  = "error_message"
	LoggingRedisKey         = "redis_key"
	LoggingLockValueKey     = "lock_value"
	LoggingLockTTLKey       = "lock_ttl"
	LoggingLockStoredKey    = "lock_stored_value"
	LoggingLockExpectedKey  = "lock_expected_value"
	LoggingPlannerNameKey   = "planner_name"
	LoggingMonthCountKey    = "month_count"
	LoggingDayCountKey      = "day_count"
	LoggingMonthIndexKey    = "month_index"
	LoggingReferenceDateKey = "reference_date"
	LoggingDayOrderKey      = "day_order"
	LoggingBatchKey         = "batch"
	LoggingRegNumberKey     = "reg_number"
	LoggingCourseCountKey   = "course_count"
	LoggingScheduleDaysKey  = "schedule_days"
	LoggingSourceKey        = "source"
	LoggingUpstreamURLKey   = "upstream_url"
	LoggingQueueNameKey     = "queue_name"
	LoggingBucketNameKey    = "bucket_name"
	LoggingObjectNameKey    = "object_name"
	LoggingCronSpecKey      = "cron_spec"
	LoggingFetchedAtKey     = "fetched_at"
)
