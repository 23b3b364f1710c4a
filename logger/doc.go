// Package logger provides structured logging for the caption service,
// backed by zerolog. It exposes both a global logger (initialized from
// config at startup) and instance loggers with component tagging.
package logger
