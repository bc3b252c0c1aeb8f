// Package service contains the application use cases of the generation gateway.
//
// GenerationService is the caller surface used by the HTTP layer: it validates
// raw user input into immutable generation.Request values, hands them to a
// generation.Gateway, and publishes one events.GenerationEvent per dispatched
// request. The service never talks to the provider SDK directly, so the
// delivery layer depends only on this package and the generation error taxonomy.
package service
