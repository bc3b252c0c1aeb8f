// Package api adapts HTTP requests to the generation service. Handlers decode
// and validate JSON bodies, call service.GenerationService or the credential
// store, and translate the generation error taxonomy into status codes and
// safe client messages. Errors are logged redacted, never echoed raw.
package api
