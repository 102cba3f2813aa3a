// Package zap adapts go.uber.org/zap to the log.Logger interface.
//
// New builds a JSON logger for an environment profile and tees it into the
// OpenTelemetry log bridge; Wrap adapts a logger built elsewhere.
package zap
