// Package session orders concurrent requests made on behalf of one caller.
//
// A caller that fires a second request before the first has answered only
// cares about the second answer. Tracker hands out a Ticket per request,
// cancels the context of the request it replaces, and lets the handler ask
// whether its result is still the latest before delivering it.
package session
