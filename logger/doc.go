// Package logger provides structured logging for the analysis engine on top
// of zerolog: a configurable root logger, component-tagged child loggers,
// and field helpers for the engine's standard keys (operation, analyzer,
// run_id, ...).
package logger
