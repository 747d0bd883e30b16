// Package domain defines the request value types that flow through the
// content pipeline and the validation errors they produce.
//
// GenerationRequest and ExplanationRequest are transient: they are built once
// per user action, handed to the generator (or the fallback engine), and
// discarded after the resulting text is returned. Neither type is persisted.
package domain
