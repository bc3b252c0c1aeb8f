// Package config handles configuration loading, parsing, and validation
// from various sources (environment variables, files). It provides type-safe
// access to the settings needed by the HTTP server, the Gemini adapter and the
// video poller while keeping configuration details separate from business logic.
package config
