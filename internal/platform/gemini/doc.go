// Package gemini implements the generation.Gateway interface on top of
// Google's Gemini API (google.golang.org/genai).
//
// This package is an infrastructure adapter in the hexagonal architecture,
// connecting the application's generation domain to the external provider
// without exposing provider types to the rest of the application.
//
// Key components:
//
// 1. Client adapter (client.go):
//   - ClientFactory builds a fresh provider client for every call, keyed by the
//     credential that is active at that moment. Clients are never cached.
//
// 2. Dispatcher (gateway.go, chat.go):
//   - Builds the provider payload for text, image and video requests
//   - Short-circuits video requests when no paid credential is selected
//   - Runs chat turns with the CleverCore assistant persona
//
// 3. Completion poller (poller.go):
//   - Waits for long-running video operations with a constant delay,
//     bounded by attempt and wall-clock budgets and by context cancellation
//
// 4. Result normalizer (normalize.go):
//   - Turns each provider response shape into one display-ready string
//
// 5. Error classifier (classify.go):
//   - Maps every failure to generation.ErrCredentialRequired or a
//     *generation.GenerationError; provider errors never escape raw
package gemini
