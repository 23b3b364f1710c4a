// Package server provides the HTTP server for the caption service, using Gin
// with HTTP/2 (h2c) support and a standard middleware stack.
//
// # Middleware
//
// Built-in middleware (server/middleware):
//
//   - Recovery: Panic recovery with structured logging
//   - Logging: Request/response logging with duration tracking
//   - CORS: Cross-origin resource sharing configuration
//   - RequestID: Request ID generation and propagation
//   - BodySize: Request body size limits
//
// # Endpoints
//
// Built-in endpoints (server/endpoint):
//
//   - /health: Health check aggregation
//   - /info: Application information
//   - /metrics: Runtime memory and goroutine metrics
package server
