//go:build unit

package guard

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// invocation calls one Raiser operation with positional slot arguments.
type invocation func(when bool, args []any) error

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asError(v any) error {
	err, _ := v.(error)
	return err
}

func asErrors(v any) []error {
	errs, _ := v.([]error)
	return errs
}

func asInt(v any) int {
	n, _ := v.(int)
	return n
}

func asContext(v any) context.Context {
	ctx, _ := v.(context.Context)
	return ctx
}

func messageInnerCall(op func(Raiser, bool, string, error) error) invocation {
	return func(when bool, a []any) error { return op(Throw, when, asString(a[0]), asError(a[1])) }
}

// operations maps every Raiser operation to a closure building its call.
var operations = map[string]invocation{
	"ArgumentNull": func(when bool, a []any) error {
		return Throw.ArgumentNull(when, asString(a[0]), asString(a[1]))
	},
	"ArgumentNullWrap": messageInnerCall(Raiser.ArgumentNullWrap),
	"Argument": func(when bool, a []any) error {
		return Throw.Argument(when, asString(a[0]), asString(a[1]), asError(a[2]))
	},
	"ArgumentOutOfRange": func(when bool, a []any) error {
		return Throw.ArgumentOutOfRange(when, asString(a[0]), a[1], asString(a[2]))
	},
	"ArgumentOutOfRangeWrap": messageInnerCall(Raiser.ArgumentOutOfRangeWrap),
	"InvalidCast":            messageInnerCall(Raiser.InvalidCast),
	"InvalidCastCode": func(when bool, a []any) error {
		return Throw.InvalidCastCode(when, asString(a[0]), asInt(a[1]))
	},
	"Aggregate": func(when bool, a []any) error {
		return Throw.Aggregate(when, asString(a[0]), asErrors(a[1])...)
	},
	"FileNotFound": func(when bool, a []any) error {
		return Throw.FileNotFound(when, asString(a[0]), asString(a[1]), asError(a[2]))
	},
	"FileLoad": func(when bool, a []any) error {
		return Throw.FileLoad(when, asString(a[0]), asString(a[1]), asError(a[2]))
	},
	"TaskCanceled": messageInnerCall(Raiser.TaskCanceled),
	"OperationCanceled": func(when bool, a []any) error {
		return Throw.OperationCanceled(when, asString(a[0]), asError(a[1]), asContext(a[2]))
	},
	"General":            messageInnerCall(Raiser.General),
	"InvalidOperation":   messageInnerCall(Raiser.InvalidOperation),
	"InvalidData":        messageInnerCall(Raiser.InvalidData),
	"IndexOutOfRange":    messageInnerCall(Raiser.IndexOutOfRange),
	"Format":             messageInnerCall(Raiser.Format),
	"NullReference":      messageInnerCall(Raiser.NullReference),
	"NotImplemented":     messageInnerCall(Raiser.NotImplemented),
	"NotSupported":       messageInnerCall(Raiser.NotSupported),
	"Timeout":            messageInnerCall(Raiser.Timeout),
	"KeyNotFound":        messageInnerCall(Raiser.KeyNotFound),
	"UnauthorizedAccess": messageInnerCall(Raiser.UnauthorizedAccess),
	"AmbiguousMatch":     messageInnerCall(Raiser.AmbiguousMatch),
	"TypeLoad":           messageInnerCall(Raiser.TypeLoad),
	"DLLNotFound":        messageInnerCall(Raiser.DLLNotFound),
	"DirectoryNotFound":  messageInnerCall(Raiser.DirectoryNotFound),
	"PathTooLong":        messageInnerCall(Raiser.PathTooLong),
	"MissingMember": func(when bool, a []any) error {
		return Throw.MissingMember(when, asString(a[0]), asString(a[1]))
	},
	"MissingMemberWrap": messageInnerCall(Raiser.MissingMemberWrap),
	"MissingField": func(when bool, a []any) error {
		return Throw.MissingField(when, asString(a[0]), asString(a[1]))
	},
	"MissingFieldWrap": messageInnerCall(Raiser.MissingFieldWrap),
	"MissingMethod": func(when bool, a []any) error {
		return Throw.MissingMethod(when, asString(a[0]), asString(a[1]))
	},
	"MissingMethodWrap": messageInnerCall(Raiser.MissingMethodWrap),
	"InvalidCredential": messageInnerCall(Raiser.InvalidCredential),
	"Authentication":    messageInnerCall(Raiser.Authentication),
	"DriveNotFound":     messageInnerCall(Raiser.DriveNotFound),
	"Serialization":     messageInnerCall(Raiser.Serialization),
}

type tokenKey struct{}

// sampleArgs builds a distinct, non-zero value for every slot so a swapped
// or dropped argument shows up as a field mismatch.
func sampleArgs(variant Variant) []any {
	args := make([]any, len(variant.Slots))

	for i, slot := range variant.Slots {
		switch slot.Type {
		case SlotString:
			args[i] = variant.Operation + "." + slot.Name
		case SlotError:
			args[i] = errors.New(variant.Operation + " cause")
		case SlotInt:
			args[i] = 1000 + i
		case SlotErrors:
			args[i] = []error{errors.New("first"), errors.New("second")}
		case SlotContext:
			args[i] = context.WithValue(context.Background(), tokenKey{}, variant.Operation)
		case SlotAny:
			args[i] = fmt.Sprintf("%s actual", variant.Operation)
		}
	}

	return args
}

// zeroArgs builds the documented default for every slot.
func zeroArgs(variant Variant) []any {
	args := make([]any, len(variant.Slots))

	for i, slot := range variant.Slots {
		switch slot.Type {
		case SlotString:
			args[i] = ""
		case SlotInt:
			args[i] = 0
		case SlotErrors:
			args[i] = []error(nil)
		}
	}

	return args
}

func raisedFields(t *testing.T, err error) reflect.Value {
	t.Helper()

	rv := reflect.ValueOf(err)
	require.Equal(t, reflect.Pointer, rv.Kind(), "raised error must be a pointer to a struct, got %T", err)

	return rv.Elem()
}

func assertSlotField(t *testing.T, field reflect.Value, slot Slot, want any) {
	t.Helper()

	require.True(t, field.IsValid(), "slot %q maps to missing field %q", slot.Name, slot.Field)

	switch slot.Type {
	case SlotString:
		assert.Equal(t, want, field.String(), "slot %q", slot.Name)
	case SlotInt:
		assert.Equal(t, int64(asInt(want)), field.Int(), "slot %q", slot.Name)
	case SlotError, SlotContext:
		assert.True(t, field.Interface() == want, "slot %q: identity lost, got %v", slot.Name, field.Interface())
	case SlotErrors:
		got, ok := field.Interface().([]error)
		require.True(t, ok)
		wantErrs := asErrors(want)
		require.Len(t, got, len(wantErrs))

		for i := range wantErrs {
			assert.True(t, got[i] == wantErrs[i], "slot %q element %d", slot.Name, i)
		}
	case SlotAny:
		assert.Equal(t, want, field.Interface(), "slot %q", slot.Name)
	}
}

func TestOperationTable_CoversCatalogue(t *testing.T) {
	t.Parallel()

	names := make([]string, 0, len(catalogue))
	for _, variant := range Variants() {
		names = append(names, variant.Operation)
	}

	tableNames := make([]string, 0, len(operations))
	for name := range operations {
		tableNames = append(tableNames, name)
	}

	sort.Strings(names)
	sort.Strings(tableNames)
	require.Equal(t, names, tableNames)
}

func TestRaiser_FalseConditionNeverRaises(t *testing.T) {
	t.Parallel()

	for _, variant := range Variants() {
		variant := variant

		call := operations[variant.Operation]

		t.Run(variant.Operation, func(t *testing.T) {
			t.Parallel()

			require.NoError(t, call(false, sampleArgs(variant)))
			require.NoError(t, call(false, zeroArgs(variant)))
		})
	}
}

func TestRaiser_TrueConditionRaisesSuppliedFields(t *testing.T) {
	t.Parallel()

	for _, variant := range Variants() {
		variant := variant

		call := operations[variant.Operation]

		t.Run(variant.Operation, func(t *testing.T) {
			t.Parallel()

			args := sampleArgs(variant)
			err := call(true, args)
			require.Error(t, err)

			assert.Equal(t, variant.Kind, KindOf(err))
			require.ErrorIs(t, err, variant.Kind)

			fields := raisedFields(t, err)
			mapped := map[string]bool{"Kind": true}

			for i, slot := range variant.Slots {
				assertSlotField(t, fields.FieldByName(slot.Field), slot, args[i])
				mapped[slot.Field] = true
			}

			if kindField := fields.FieldByName("Kind"); kindField.IsValid() {
				assert.Equal(t, variant.Kind, kindField.Interface())
			}

			// No field outside the slot mapping is synthesized.
			for i := 0; i < fields.NumField(); i++ {
				name := fields.Type().Field(i).Name
				if mapped[name] {
					continue
				}

				if name == "Context" {
					assert.Equal(t, context.Background(), fields.Field(i).Interface())
					continue
				}

				assert.True(t, fields.Field(i).IsZero(), "field %s must stay zero", name)
			}
		})
	}
}

func TestRaiser_OmittedSlotsUseDefaults(t *testing.T) {
	t.Parallel()

	for _, variant := range Variants() {
		variant := variant

		call := operations[variant.Operation]

		t.Run(variant.Operation, func(t *testing.T) {
			t.Parallel()

			err := call(true, zeroArgs(variant))
			require.Error(t, err)

			fields := raisedFields(t, err)

			if message := fields.FieldByName("Message"); message.IsValid() {
				assert.Empty(t, message.String())
			}

			if errs := fields.FieldByName("Errors"); errs.IsValid() {
				assert.False(t, errs.IsNil(), "omitted errors must be an empty slice, not nil")
				assert.Zero(t, errs.Len())
			}

			if token := fields.FieldByName("Context"); token.IsValid() {
				assert.Equal(t, context.Background(), token.Interface())
			}

			assert.Contains(t, err.Error(), variant.Kind.DefaultMessage())
		})
	}
}

func TestRaiser_FalseConditionDoesNotAllocate(t *testing.T) {
	calls := make([]func(), 0, len(catalogue))

	for _, variant := range Variants() {
		call := operations[variant.Operation]
		args := sampleArgs(variant)

		calls = append(calls, func() { _ = call(false, args) })
	}

	allocs := testing.AllocsPerRun(100, func() {
		for _, call := range calls {
			call()
		}
	})

	assert.Zero(t, allocs)
}

func TestRaiser_ConcurrentUse(t *testing.T) {
	t.Parallel()

	const workers = 16

	var wg sync.WaitGroup

	results := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			results[i] = Throw.IndexOutOfRange(i%2 == 0, fmt.Sprintf("worker %d", i), nil)
		}(i)
	}

	wg.Wait()

	for i, err := range results {
		if i%2 != 0 {
			assert.NoError(t, err)
			continue
		}

		var raised *Error
		require.ErrorAs(t, err, &raised)
		assert.Equal(t, fmt.Sprintf("worker %d", i), raised.Message)
	}
}

func TestArgumentNull_NoRaise(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Throw.ArgumentNull(false, "x", "msg"))
}

func TestArgumentNull_Raise(t *testing.T) {
	t.Parallel()

	err := Throw.ArgumentNull(true, "x", "msg")

	want := &ArgumentError{Kind: KindArgumentNull, ParamName: "x", Message: "msg"}
	if diff := cmp.Diff(want, err); diff != "" {
		t.Fatalf("raised error mismatch (-want +got):\n%s", diff)
	}

	require.ErrorIs(t, err, KindArgument)
}

func TestAggregate_EmptyErrors(t *testing.T) {
	t.Parallel()

	err := Throw.Aggregate(true, "batch failed")

	want := &AggregateError{Message: "batch failed", Errors: []error{}}
	if diff := cmp.Diff(want, err); diff != "" {
		t.Fatalf("raised error mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, "batch failed", err.Error())
}

func TestAggregate_CopiesSliceKeepsIdentity(t *testing.T) {
	t.Parallel()

	first := errors.New("first")
	errs := []error{first, nil}

	err := Throw.Aggregate(true, "", errs...)
	errs[0] = errors.New("replaced")

	var raised *AggregateError
	require.ErrorAs(t, err, &raised)
	require.Len(t, raised.Errors, 2)
	assert.Same(t, first, raised.Errors[0])
	assert.Nil(t, raised.Errors[1])
	require.ErrorIs(t, err, first)
}

func TestOperationCanceled_NilTokenIsBackground(t *testing.T) {
	t.Parallel()

	inner := errors.New("upstream closed")

	//nolint:staticcheck // a nil token is the documented way to omit it
	err := Throw.OperationCanceled(true, "stopped", inner, nil)

	var raised *CanceledError
	require.ErrorAs(t, err, &raised)
	assert.Equal(t, KindOperationCanceled, raised.Kind)
	assert.Equal(t, "stopped", raised.Message)
	assert.Same(t, inner, raised.Inner)
	require.NotNil(t, raised.Context)
	assert.Equal(t, context.Background(), raised.Context)
	require.ErrorIs(t, err, context.Canceled)
}

func TestOperationCanceled_KeepsToken(t *testing.T) {
	t.Parallel()

	token, cancel := context.WithCancel(context.Background())
	cancel()

	err := Throw.OperationCanceled(true, "", nil, token)

	var raised *CanceledError
	require.ErrorAs(t, err, &raised)
	assert.Equal(t, token, raised.Context)
}

func TestSharedShape_PopulatesOwnFields(t *testing.T) {
	t.Parallel()

	field := Throw.MissingField(true, "Ledger", "balance")
	argument := Throw.ArgumentNull(true, "Ledger", "balance")

	fieldVariant, ok := Lookup("MissingField")
	require.True(t, ok)

	argumentVariant, ok := Lookup("ArgumentNull")
	require.True(t, ok)

	fieldValues := raisedFields(t, field)
	assert.Equal(t, "Ledger", fieldValues.FieldByName(fieldVariant.Slots[0].Field).String())
	assert.Equal(t, "balance", fieldValues.FieldByName(fieldVariant.Slots[1].Field).String())
	assert.Empty(t, fieldValues.FieldByName("Message").String())

	argumentValues := raisedFields(t, argument)
	assert.Equal(t, "Ledger", argumentValues.FieldByName(argumentVariant.Slots[0].Field).String())
	assert.Equal(t, "balance", argumentValues.FieldByName(argumentVariant.Slots[1].Field).String())

	assert.Equal(t, KindMissingField, KindOf(field))
	assert.Equal(t, KindArgumentNull, KindOf(argument))
	assert.NotEqual(t, fieldVariant.Slots[1].Field, argumentVariant.Slots[1].Field)
}
