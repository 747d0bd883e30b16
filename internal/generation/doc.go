// Package generation defines the boundary between the application and the
// hosted large-language-model service that writes poems and essays.
//
// The Generator interface is implemented by infrastructure adapters (see
// internal/platform/gemini). Adapters normalize every failure into
// ErrGenerationFailed so the caller can switch to fallback content with a
// single errors.Is check, and Result gives callers a validated
// success-or-failure value instead of an untyped response.
package generation
