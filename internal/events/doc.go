// Package events carries generation lifecycle events from the service layer to
// decoupled observers.
//
// The service emits one GenerationEvent per dispatched request through an
// EventEmitter without knowing who listens. InMemoryEventEmitter fans events out
// synchronously to registered EventHandlers; UsageLogHandler is the built-in
// handler that writes a structured usage line per event and keeps running totals.
package events
