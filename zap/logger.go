package zap

import (
	"context"

	"github.com/LerianStudio/lib-guard/log"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger adapts a *zap.Logger to log.Logger.
type Logger struct {
	logger      *zap.Logger
	atomicLevel zap.AtomicLevel
}

var _ log.Logger = (*Logger)(nil)

// Wrap adapts an existing zap logger. A nil logger behaves as zap.NewNop().
func Wrap(logger *zap.Logger) *Logger {
	return &Logger{logger: logger}
}

func (l *Logger) must() *zap.Logger {
	if l == nil || l.logger == nil {
		return zap.NewNop()
	}

	return l.logger
}

// Log writes one entry at the given level. The message is sanitized against
// log injection, and when ctx carries a valid span its trace_id and span_id
// are added so the entry correlates with the trace.
func (l *Logger) Log(ctx context.Context, level log.Level, msg string, fields ...log.Field) {
	zapFields := toZapFields(fields)

	if ctx != nil {
		if sc := trace.SpanFromContext(ctx).SpanContext(); sc.IsValid() {
			zapFields = append(zapFields,
				zap.String("trace_id", sc.TraceID().String()),
				zap.String("span_id", sc.SpanID().String()),
			)
		}
	}

	msg = log.Sanitize(msg)

	switch level {
	case log.LevelDebug:
		l.must().Debug(msg, zapFields...)
	case log.LevelWarn:
		l.must().Warn(msg, zapFields...)
	case log.LevelError:
		l.must().Error(msg, zapFields...)
	default:
		l.must().Info(msg, zapFields...)
	}
}

// With returns a child logger with additional structured fields.
//
//nolint:ireturn
func (l *Logger) With(fields ...log.Field) log.Logger {
	return &Logger{
		logger:      l.must().With(toZapFields(fields)...),
		atomicLevel: l.level(),
	}
}

// WithGroup returns a child logger that nests subsequent fields under name.
//
//nolint:ireturn
func (l *Logger) WithGroup(name string) log.Logger {
	return &Logger{
		logger:      l.must().With(zap.Namespace(name)),
		atomicLevel: l.level(),
	}
}

// Enabled reports whether the logger would emit an entry at level.
func (l *Logger) Enabled(level log.Level) bool {
	return l.must().Core().Enabled(toZapLevel(level))
}

// Sync flushes buffered entries, giving up when ctx is done.
func (l *Logger) Sync(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	done := make(chan error, 1)

	go func() {
		done <- l.must().Sync()
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		return err
	}
}

// Raw returns the underlying zap logger.
func (l *Logger) Raw() *zap.Logger {
	return l.must()
}

// Level returns the runtime-adjustable level handle. It is the zero value
// for loggers built with Wrap.
func (l *Logger) Level() zap.AtomicLevel {
	return l.level()
}

func (l *Logger) level() zap.AtomicLevel {
	if l == nil {
		return zap.AtomicLevel{}
	}

	return l.atomicLevel
}

func toZapLevel(level log.Level) zapcore.Level {
	switch level {
	case log.LevelDebug:
		return zapcore.DebugLevel
	case log.LevelWarn:
		return zapcore.WarnLevel
	case log.LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func toZapFields(fields []log.Field) []zap.Field {
	zapFields := make([]zap.Field, len(fields))
	for i, f := range fields {
		zapFields[i] = zap.Any(f.Key, f.Value)
	}

	return zapFields
}
