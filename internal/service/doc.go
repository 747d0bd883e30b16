// Package service contains the application use cases: composing a poem or
// essay and explaining a word.
//
// ContentService coordinates the generator, the fallback engine, the session
// tracker and the event emitter. It always answers with text: when the
// generative service fails, the fallback engine's placeholder is returned
// instead and the failure is reported as an event.
//
// The service depends on the generation.Generator interface, never on a
// concrete adapter, so the API layer and tests can run against any
// implementation.
package service
