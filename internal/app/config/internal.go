package config

type InternalConfig struct {
	App      App         `mapstructure:"app"`
	Academia AppAcademia `mapstructure:"academia"`
	Planner  AppPlanner  `mapstructure:"planner"`
	Cache    AppCache    `mapstructure:"cache"`
	JWT      AppJWT      `mapstructure:"jwt"`
	Export   AppExport   `mapstructure:"export"`
	RabbitMQ AppRabbitMQ `mapstructure:"rabbitmq"`
	MongoDB  AppMongoDB  `mapstructure:"mongodb"`
}

type App struct {
	Env                       string   `mapstructure:"env"`
	Port                      string   `mapstructure:"port"`
	Version                   string   `mapstructure:"version"`
	Address                   string   `mapstructure:"address"`
	Timezone                  string   `mapstructure:"timezone"`
	EndpointPrefix            string   `mapstructure:"endpoint_prefix"`
	AllowedOrigins            []string `mapstructure:"allowed_origins"`
	MaxRequests               int      `mapstructure:"max_requests"`
	MaxTimeRequestsPerSeconds int      `mapstructure:"max_time_requests_per_seconds"`
	ShutdownTimeoutInSeconds  int      `mapstructure:"shutdown_timeout_in_seconds"`
	RequestTimeoutInSeconds   int      `mapstructure:"request_timeout_in_seconds"`
}

// AppAcademia points at the collaborator that scrapes and tokenizes academic records.
type AppAcademia struct {
	BaseUrl                  string  `mapstructure:"base_url"`
	RequestTimeoutInSeconds  int     `mapstructure:"request_timeout_in_seconds"`
	MaxRequestsPerSecond     float64 `mapstructure:"max_requests_per_second"`
	Burst                    int     `mapstructure:"burst"`
	ServiceTokenIssuer       string  `mapstructure:"service_token_issuer"`
	ServiceTokenAudience     string  `mapstructure:"service_token_audience"`
	ServiceTokenExpInMinutes int     `mapstructure:"service_token_exp_in_minutes"`
}

type AppPlanner struct {
	Name               string `mapstructure:"name"`
	RefreshCronSpec    string `mapstructure:"refresh_cron_spec"`
	RefreshLockTTLInMs int    `mapstructure:"refresh_lock_ttl_in_ms"`
}

type AppCache struct {
	PlannerTTLInMinutes int `mapstructure:"planner_ttl_in_minutes"`
	CoursesTTLInMinutes int `mapstructure:"courses_ttl_in_minutes"`
	UserTTLInMinutes    int `mapstructure:"user_ttl_in_minutes"`
}

type AppJWT struct {
	Secret string `mapstructure:"secret"`
}

type AppExport struct {
	BucketName                      string `mapstructure:"bucket_name"`
	PreSignedUrlExpiryTimeInMinutes int    `mapstructure:"pre_signed_url_expiry_time_in_minutes"`
	MaxExportsPerMinute             int    `mapstructure:"max_exports_per_minute"`
}

type AppRabbitMQ struct {
	TimetableEventsQueue string `mapstructure:"timetable_events_queue"`
}

type AppMongoDB struct {
	AcademiaDBName string `mapstructure:"academia_db_name"`
}
