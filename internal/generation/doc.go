// Package generation defines the domain model of the generation gateway: the
// three generation kinds (text, image, video), immutable requests and
// display-ready results, chat transcript messages, and the error taxonomy
// every Gateway implementation must map provider failures into.
//
// The Gateway interface is the boundary between the application core and the
// external AI provider (Gemini). Callers only ever observe ErrCredentialRequired,
// a *GenerationError, or ErrInvalidRequest for malformed input.
package generation
