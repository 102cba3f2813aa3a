package report

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	constant "github.com/LerianStudio/lib-guard/constants"
	"github.com/LerianStudio/lib-guard/guard"
	"github.com/LerianStudio/lib-guard/internal/nilcheck"
	"github.com/LerianStudio/lib-guard/log"
	"github.com/LerianStudio/lib-guard/runtime"
)

// LogMessage is the message of every entry written by Report.
const LogMessage = "guard raised"

// ErrInvalidConfig is returned by New for a config that fails validation.
var ErrInvalidConfig = errors.New("invalid report config")

// Config configures a Reporter.
type Config struct {
	// Component names the service or package reporting errors. Required.
	Component string
	// MeterProvider creates the guard_raised_total counter. Nil uses otel.GetMeterProvider().
	MeterProvider metric.MeterProvider
	// Production forces redaction regardless of runtime.IsProductionMode.
	Production bool
}

// DefaultConfig returns a Config for component using the global meter provider.
func DefaultConfig(component string) Config {
	return Config{Component: component}
}

func (c Config) validate() error {
	if strings.TrimSpace(c.Component) == "" {
		return fmt.Errorf("%w: Component is required", ErrInvalidConfig)
	}

	return nil
}

// Reporter records guard errors at a service boundary as a log entry, a span
// event and a counter increment. It is safe for concurrent use.
type Reporter struct {
	logger     log.Logger
	component  string
	production bool
	counter    metric.Int64Counter
}

// New builds a Reporter. A nil logger disables logging.
func New(logger log.Logger, cfg Config) (*Reporter, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if nilcheck.Interface(logger) {
		logger = log.NewNop()
	}

	provider := cfg.MeterProvider
	if nilcheck.Interface(provider) {
		provider = otel.GetMeterProvider()
	}

	counter, err := provider.Meter(constant.TelemetrySDKName).Int64Counter(
		constant.MetricGuardRaisedTotal,
		metric.WithDescription("Total number of guard errors reported"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s counter: %w", constant.MetricGuardRaisedTotal, err)
	}

	return &Reporter{
		logger:     logger,
		component:  cfg.Component,
		production: cfg.Production,
		counter:    counter,
	}, nil
}

// Report records err under operation and returns err unchanged, so a guard
// call can be reported inline:
//
//	return rep.Report(ctx, "transfer", guard.Throw.ArgumentNull(from == nil, "from", ""))
//
// A nil err records nothing.
func (r *Reporter) Report(ctx context.Context, operation string, err error) error {
	if err == nil || r == nil {
		return err
	}

	if ctx == nil {
		ctx = context.Background()
	}

	production := r.production || runtime.IsProductionMode()
	kind := guard.KindOf(err)
	reportID := uuid.NewString()

	var stack []byte
	if !production {
		stack = debug.Stack()
	}

	found := details(err, production)

	r.log(ctx, reportID, operation, kind, found, err, production)
	r.recordSpan(ctx, reportID, operation, kind, found, err, stack, production)
	r.counter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("component", constant.SanitizeMetricLabel(r.component)),
		attribute.String("operation", constant.SanitizeMetricLabel(operation)),
		attribute.String("kind", kind.String()),
	))

	return err
}

func (r *Reporter) log(
	ctx context.Context,
	reportID, operation string,
	kind guard.Kind,
	found []detail,
	err error,
	production bool,
) {
	if !r.logger.Enabled(log.LevelError) {
		return
	}

	fields := []log.Field{
		log.String("report_id", reportID),
		log.String("component", r.component),
		log.String("operation", log.Sanitize(operation)),
		log.String("kind", kind.String()),
	}

	for _, d := range found {
		switch v := d.value.(type) {
		case string:
			fields = append(fields, log.String(d.key, log.Sanitize(v)))
		case int:
			fields = append(fields, log.Int(d.key, v))
		}
	}

	fields = append(fields, log.Bool("redacted", production), log.ErrorField(err, production))

	r.logger.Log(ctx, log.LevelError, LogMessage, fields...)
}

func (r *Reporter) recordSpan(
	ctx context.Context,
	reportID, operation string,
	kind guard.Kind,
	found []detail,
	err error,
	stack []byte,
	production bool,
) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.String(constant.AttrPrefixGuard+"report_id", reportID),
		attribute.String(constant.AttrPrefixGuard+"component", r.component),
		attribute.String(constant.AttrPrefixGuard+"kind", kind.String()),
	}

	if operation != "" {
		attrs = append(attrs, attribute.String(constant.AttrPrefixGuard+"operation", operation))
	}

	for _, d := range found {
		switch v := d.value.(type) {
		case string:
			attrs = append(attrs, attribute.String(constant.AttrPrefixGuard+d.key, v))
		case int:
			attrs = append(attrs, attribute.Int(constant.AttrPrefixGuard+d.key, v))
		}
	}

	if len(stack) > 0 {
		attrs = append(attrs, attribute.String(constant.AttrPrefixGuard+"stack", string(stack)))
	}

	span.AddEvent(constant.EventGuardRaised, trace.WithAttributes(attrs...))

	// In production the span carries the category, never the error text.
	if production {
		span.RecordError(kind)
	} else {
		span.RecordError(err)
	}

	span.SetStatus(codes.Error, statusMessage(r.component, operation))
}

type detail struct {
	key   string
	value any
}

// details extracts the identifying fields of the outermost guard error in err's
// tree. In production only numeric details are kept, since names come from callers.
func details(err error, production bool) []detail {
	var out []detail

	add := func(key string, value any) {
		if s, ok := value.(string); ok && (s == "" || production) {
			return
		}

		out = append(out, detail{key, value})
	}

	switch v := outermost(err).(type) {
	case *guard.ArgumentError:
		add("param_name", v.ParamName)
	case *guard.FileError:
		add("file_name", v.FileName)
	case *guard.MissingMemberError:
		add("class_name", v.ClassName)
		add("member_name", v.MemberName)
	case *guard.AggregateError:
		add("inner_errors", len(v.Errors))
	case *guard.InvalidCastError:
		if v.Code != 0 {
			add("code", v.Code)
		}
	}

	return out
}

// outermost returns the first guard error found walking err's tree depth-first,
// the order errors.As and guard.KindOf use.
func outermost(err error) error {
	switch err.(type) {
	case nil:
		return nil
	case *guard.Error, *guard.ArgumentError, *guard.InvalidCastError, *guard.AggregateError,
		*guard.FileError, *guard.CanceledError, *guard.MissingMemberError:
		return err
	}

	switch x := err.(type) {
	case interface{ Unwrap() error }:
		return outermost(x.Unwrap())
	case interface{ Unwrap() []error }:
		for _, inner := range x.Unwrap() {
			if found := outermost(inner); found != nil {
				return found
			}
		}
	}

	return nil
}

func statusMessage(component, operation string) string {
	if operation == "" {
		return "guard raised in " + component
	}

	return fmt.Sprintf("guard raised in %s/%s", component, operation)
}
