// Package fallback produces offline placeholder text when the generative
// service cannot answer, so a request never ends with nothing to show.
//
// Every function here is pure: the same input always yields the same output.
package fallback
