// Package runtime holds process-wide switches shared by the reporting packages.
package runtime
