// Package api exposes the caption extraction HTTP endpoints and the
// embedded landing and documentation pages.
package api
