// Package gemini provides an implementation of the generation.Generator interface
// that uses Google's Gemini API for writing poems and essays and for explaining
// single words in context.
//
// This package is an infrastructure adapter in the hexagonal architecture,
// connecting the application's domain requests to Google's external Gemini AI
// service without exposing the details of the external service to the core
// application.
//
// Key components:
//
// 1. GeminiGenerator:
//   - Implements the generation.Generator interface
//   - Issues exactly one GenerateContent call per request, with no retries
//
// 2. Prompt Management:
//   - Embeds default prompt templates and optionally loads overrides from files
//   - Substitutes the request fields into the templates
//
// 3. Response Processing:
//   - Validates the response into a generation.Result at the boundary
//   - Maps empty, malformed and safety-blocked responses to sentinel errors
//
// The package depends on the google.golang.org/genai client library for
// communicating with the Gemini API.
package gemini
