package constant

import "unicode/utf8"

// TelemetrySDKName identifies this library as an instrumentation scope.
const TelemetrySDKName = "lib-guard"

// MaxMetricLabelLength is the maximum length for metric labels to prevent cardinality explosion.
const MaxMetricLabelLength = 64

// AttrPrefixGuard is the prefix for guard span event attributes.
const AttrPrefixGuard = "guard."

// MetricGuardRaisedTotal is the counter metric for reported guard errors.
const MetricGuardRaisedTotal = "guard_raised_total"

// EventGuardRaised is the span event name for reported guard errors.
const EventGuardRaised = "guard.raised"

// SanitizeMetricLabel truncates a label value to at most MaxMetricLabelLength
// bytes to prevent metric cardinality explosion in OTEL backends. The cut backs
// off to a rune boundary so the result stays valid UTF-8.
func SanitizeMetricLabel(value string) string {
	if len(value) <= MaxMetricLabelLength {
		return value
	}

	n := MaxMetricLabelLength
	for n > 0 && !utf8.RuneStart(value[n]) {
		n--
	}

	return value[:n]
}
