package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm"    validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port                   int    `mapstructure:"port"                     validate:"required,gt=0,lt=65536"`
	LogLevel               string `mapstructure:"log_level"                validate:"required,oneof=debug info warn error"`
	ShutdownTimeoutSeconds int    `mapstructure:"shutdown_timeout_seconds" validate:"gte=1"`
}

// LLMConfig contains all LLM integration related settings.
type LLMConfig struct {
	// GeminiAPIKey authenticates against the Gemini API. Startup fails without it.
	GeminiAPIKey string `mapstructure:"gemini_api_key" validate:"required"`

	// ModelName is the Gemini model used for both generation and explanation.
	ModelName string `mapstructure:"model_name" validate:"required"`

	// Temperature is passed to the model for content generation.
	Temperature float64 `mapstructure:"temperature" validate:"gte=0,lte=2"`

	// RequestTimeoutSeconds bounds a single model call. Zero disables the bound.
	RequestTimeoutSeconds int `mapstructure:"request_timeout_seconds" validate:"gte=0"`

	// GeneratePromptPath and ExplainPromptPath optionally override the
	// built-in prompt templates.
	GeneratePromptPath string `mapstructure:"generate_prompt_path" validate:"omitempty,file"`
	ExplainPromptPath  string `mapstructure:"explain_prompt_path"  validate:"omitempty,file"`

	// BaseURL overrides the Gemini endpoint, used against local stubs.
	BaseURL string `mapstructure:"base_url" validate:"omitempty,url"`
}
