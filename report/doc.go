// Package report records guard errors where they leave a service boundary.
//
// A Reporter writes one structured log entry, adds a guard.raised event to the
// active span and increments the guard_raised_total counter for every non-nil
// error it is given, then hands the same error back to the caller.
//
// In production mode stack traces are omitted, only the error type is logged
// and the span records the error category instead of its text. Caller-supplied
// names (param_name, file_name, class_name, member_name) are dropped too; the
// operation label is chosen by the reporting code and is always kept.
package report
