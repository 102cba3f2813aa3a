package guard

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// Error is the raised error for categories whose only slots are a message
// and an inner error.
type Error struct {
	Kind    Kind
	Message string
	Inner   error
}

// Error renders the message (or the kind's default message) followed by the inner error.
func (e *Error) Error() string {
	return withInner(messageOrDefault(e.Message, e.Kind), e.Inner)
}

// Unwrap returns the inner error.
func (e *Error) Unwrap() error { return e.Inner }

// Is matches the error's kind, its parent kinds and equivalent standard library errors.
func (e *Error) Is(target error) bool { return e.Kind.matches(target) }

// Timeout reports whether the error is a timeout, mirroring net.Error.
func (e *Error) Timeout() bool { return e.Kind == KindTimeout }

func (e *Error) guardKind() Kind { return e.Kind }

// ArgumentError is raised by the Argument, ArgumentNull and ArgumentOutOfRange operations.
type ArgumentError struct {
	Kind        Kind
	ParamName   string
	ActualValue any
	Message     string
	Inner       error
}

// Error renders the message or default, the parameter name, the actual value and the inner error.
func (e *ArgumentError) Error() string {
	var sb strings.Builder

	sb.WriteString(messageOrDefault(e.Message, e.Kind))

	if e.ParamName != "" {
		sb.WriteString(" (parameter ")
		sb.WriteString(strconv.Quote(e.ParamName))
		sb.WriteString(")")
	}

	if e.ActualValue != nil {
		fmt.Fprintf(&sb, " (actual value: %v)", e.ActualValue)
	}

	return withInner(sb.String(), e.Inner)
}

// Unwrap returns the inner error.
func (e *ArgumentError) Unwrap() error { return e.Inner }

// Is matches the error's kind, its parent kinds and equivalent standard library errors.
func (e *ArgumentError) Is(target error) bool { return e.Kind.matches(target) }

func (e *ArgumentError) guardKind() Kind { return e.Kind }

// InvalidCastError is raised by the InvalidCast and InvalidCastCode operations.
// Code carries an optional numeric error code.
type InvalidCastError struct {
	Message string
	Code    int
	Inner   error
}

// Error renders the message or default, the code when set, and the inner error.
func (e *InvalidCastError) Error() string {
	msg := messageOrDefault(e.Message, KindInvalidCast)
	if e.Code != 0 {
		msg += " (code " + strconv.Itoa(e.Code) + ")"
	}

	return withInner(msg, e.Inner)
}

// Unwrap returns the inner error.
func (e *InvalidCastError) Unwrap() error { return e.Inner }

// Is matches KindInvalidCast.
func (e *InvalidCastError) Is(target error) bool { return KindInvalidCast.matches(target) }

func (e *InvalidCastError) guardKind() Kind { return KindInvalidCast }

// AggregateError groups several errors under one message. Errors is never nil
// for an error raised by the Aggregate operation, though it may be empty.
type AggregateError struct {
	Message string
	Errors  []error
}

// Error renders the message or default followed by each non-nil grouped error in parentheses.
func (e *AggregateError) Error() string {
	var sb strings.Builder

	sb.WriteString(messageOrDefault(e.Message, KindAggregate))

	for _, inner := range e.Errors {
		if inner == nil {
			continue
		}

		sb.WriteString(" (")
		sb.WriteString(inner.Error())
		sb.WriteString(")")
	}

	return sb.String()
}

// Unwrap returns the grouped errors so errors.Is and errors.As search all of them.
func (e *AggregateError) Unwrap() []error { return e.Errors }

// Is matches KindAggregate. The grouped errors are matched through Unwrap.
func (e *AggregateError) Is(target error) bool { return KindAggregate.matches(target) }

func (e *AggregateError) guardKind() Kind { return KindAggregate }

// FileError is raised by the FileNotFound and FileLoad operations.
type FileError struct {
	Kind     Kind
	Message  string
	FileName string
	Inner    error
}

// Error renders the message or default, the file name when set, and the inner error.
func (e *FileError) Error() string {
	msg := messageOrDefault(e.Message, e.Kind)
	if e.FileName != "" {
		msg += " (file " + strconv.Quote(e.FileName) + ")"
	}

	return withInner(msg, e.Inner)
}

// Unwrap returns the inner error.
func (e *FileError) Unwrap() error { return e.Inner }

// Is matches the error's kind and fs.ErrNotExist for the not-found kinds.
func (e *FileError) Is(target error) bool { return e.Kind.matches(target) }

func (e *FileError) guardKind() Kind { return e.Kind }

// CanceledError is raised by the OperationCanceled and TaskCanceled operations.
// Context is the cancellation token; it is context.Background() when none was given.
type CanceledError struct {
	Kind    Kind
	Message string
	Inner   error
	Context context.Context //nolint:containedctx
}

// Error renders the message or default followed by the inner error.
func (e *CanceledError) Error() string {
	return withInner(messageOrDefault(e.Message, e.Kind), e.Inner)
}

// Unwrap returns the inner error.
func (e *CanceledError) Unwrap() error { return e.Inner }

// Is matches the error's kind, OperationCanceled for TaskCanceled, and context.Canceled.
func (e *CanceledError) Is(target error) bool { return e.Kind.matches(target) }

func (e *CanceledError) guardKind() Kind { return e.Kind }

// MissingMemberError is raised by the MissingMember, MissingField and
// MissingMethod operations. MemberName holds the field or method name for the
// narrower kinds.
type MissingMemberError struct {
	Kind       Kind
	ClassName  string
	MemberName string
	Message    string
	Inner      error
}

// Error renders the message, or the qualified member name when no message was given,
// followed by the inner error.
func (e *MissingMemberError) Error() string {
	if e.Message != "" || (e.ClassName == "" && e.MemberName == "") {
		return withInner(messageOrDefault(e.Message, e.Kind), e.Inner)
	}

	noun := "member"

	switch e.Kind {
	case KindMissingField:
		noun = "field"
	case KindMissingMethod:
		noun = "method"
	}

	return withInner(noun+" "+strconv.Quote(e.ClassName+"."+e.MemberName)+" not found", e.Inner)
}

// Unwrap returns the inner error.
func (e *MissingMemberError) Unwrap() error { return e.Inner }

// Is matches the error's kind and MissingMember for the field and method kinds.
func (e *MissingMemberError) Is(target error) bool { return e.Kind.matches(target) }

func (e *MissingMemberError) guardKind() Kind { return e.Kind }

func messageOrDefault(message string, kind Kind) string {
	if message == "" {
		return kind.DefaultMessage()
	}

	return message
}

func withInner(msg string, inner error) string {
	if inner == nil {
		return msg
	}

	return msg + ": " + inner.Error()
}
