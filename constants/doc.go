// Package constant holds the telemetry names emitted by the report package.
package constant
