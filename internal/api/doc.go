// Package api exposes the board, list, card, comment and activity services
// over HTTP. Handlers decode and validate JSON requests, call the services
// and translate their errors into status codes with sanitized messages.
package api
