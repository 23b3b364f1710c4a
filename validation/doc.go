// Package validation provides validation helpers: a fluent Validator for
// hand-rolled checks (config structs use it in their Validate methods) and a
// struct-tag validator backed by go-playground/validator for request bodies.
// Both return the errors package's AppError so callers can respond uniformly.
package validation
