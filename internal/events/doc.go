// Package events provides types and interfaces for reporting content outcomes.
//
// Services emit a ContentEvent for every generation and explanation outcome
// without knowing which handlers consume them. The server registers a
// LoggingHandler, which makes the structured log the usage signal.
//
// The primary components are:
// - ContentEvent: one outcome of a generation or explanation request
// - EventHandler: interface for components that can handle events
// - EventEmitter: interface for components that can emit events
package events
