package config

const (
	envPort         = "PORT"
	envProvider     = "PROVIDER"
	envConfigFile   = "CONFIG_FILE"
	envCORSOrigins  = "CORS_ALLOWED_ORIGINS"
	envSentryDSN    = "SENTRY_DSN"
	envRetryMax     = "PROVIDER_RETRY_ATTEMPTS"
	envRetryBackoff = "PROVIDER_RETRY_BACKOFF"
	envRateRPS      = "PROVIDER_RATE_RPS"
	envRateBurst    = "PROVIDER_RATE_BURST"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort        = "4000"
	defaultProvider    = "fixture"
	defaultMetricsPort = "9090"
	defaultCORSOrigins = "*"
	// Conservative defaults to respect upstream quotas.
	defaultRateRPS   = 2.0
	defaultRateBurst = 5
)
