// Package nilcheck detects nil values hidden behind non-nil interfaces.
package nilcheck

import "reflect"

// Interface reports whether value is nil, including typed nils stored in an
// interface (a nil *T passed as a context.Context or log.Logger, for instance).
func Interface(value any) bool {
	if value == nil {
		return true
	}

	switch v := reflect.ValueOf(value); v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return v.IsNil()
	default:
		return false
	}
}
