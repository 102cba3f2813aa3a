// Package log defines the logging interface and typed fields used across lib-guard.
//
// The guard package never logs. Logging happens at the boundary, in the
// report package, through this interface; the zap package provides the
// production implementation and NopLogger disables output.
package log
