package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm"    validate:"required"`
	Video  VideoConfig  `mapstructure:"video"  validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port      int    `mapstructure:"port"       validate:"required,gt=0,lt=65536"`
	LogLevel  string `mapstructure:"log_level"  validate:"required,oneof=debug info warn error"`
	LogFormat string `mapstructure:"log_format" validate:"required,oneof=json text"`

	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" validate:"gt=0"`

	// RateLimitRPS limits generation requests per client address. Zero disables limiting.
	RateLimitRPS   float64 `mapstructure:"rate_limit_rps"   validate:"gte=0"`
	RateLimitBurst int     `mapstructure:"rate_limit_burst" validate:"gte=0"`
}

// LLMConfig contains all Gemini integration settings.
type LLMConfig struct {
	// GeminiAPIKey is the credential used until the host selects another one.
	// It may be empty: a key can be supplied at runtime through the credential endpoint.
	GeminiAPIKey string `mapstructure:"gemini_api_key"`

	// PaidKeySelected marks the configured key as eligible for paid-tier (video) generation.
	PaidKeySelected bool `mapstructure:"paid_key_selected"`

	TextModel  string `mapstructure:"text_model"  validate:"required"`
	ImageModel string `mapstructure:"image_model" validate:"required"`
	VideoModel string `mapstructure:"video_model" validate:"required"`
	ChatModel  string `mapstructure:"chat_model"  validate:"required"`

	// BaseURL overrides the Gemini API endpoint. Empty uses the SDK default.
	BaseURL string `mapstructure:"base_url" validate:"omitempty,url"`

	HTTPTimeoutSeconds int `mapstructure:"http_timeout_seconds" validate:"gte=0"`
}

// VideoConfig controls how long-running video operations are awaited.
type VideoConfig struct {
	PollIntervalSeconds int `mapstructure:"poll_interval_seconds" validate:"gt=0"`

	// MaxPollAttempts caps the number of status checks after submission. Zero means unbounded.
	MaxPollAttempts int `mapstructure:"max_poll_attempts" validate:"gte=0"`

	// PollTimeoutMinutes caps the wall-clock time spent polling. Zero means unbounded.
	PollTimeoutMinutes int `mapstructure:"poll_timeout_minutes" validate:"gte=0"`
}
