// Package config handles configuration loading, parsing, and validation
// from various sources (environment variables, files). It provides type-safe
// access to application settings needed by different components while keeping
// configuration details separate from business logic.
//
// Environment variables use the INSPIRO_ prefix with nested keys joined by
// underscores, e.g. INSPIRO_LLM_GEMINI_API_KEY or INSPIRO_SERVER_PORT.
package config
