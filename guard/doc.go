// Package guard turns argument validation and invariant checks into single expressions.
//
// Every operation on Raiser takes a boolean condition followed by the arguments
// of one error category. When the condition is false the operation returns nil
// and does nothing else. When it is true the operation returns exactly one error
// of that category, with each argument stored verbatim in the matching field.
//
//	func Transfer(ctx context.Context, from, to *Account, amount int64) error {
//		if err := guard.Throw.ArgumentNull(from == nil, "from", ""); err != nil {
//			return err
//		}
//
//		if err := guard.Throw.ArgumentOutOfRange(amount <= 0, "amount", amount, "amount must be positive"); err != nil {
//			return err
//		}
//
//		// ...
//	}
//
// # Error Categories
//
// Each category is a Kind. Raised errors satisfy errors.Is against their Kind
// and its parents (an ArgumentNull error also matches KindArgument). Where
// the standard library has an equivalent they match it too, so Timeout errors
// match context.DeadlineExceeded and FileNotFound errors match fs.ErrNotExist.
// Use KindOf to read the category of any error chain, and errors.As with the
// concrete types (*ArgumentError, *FileError, ...) to read individual fields.
//
// # Operations With Shared Shapes
//
// Operations whose arguments have the same types but different meaning always
// have different names. ArgumentNull(when, paramName, message) and
// MissingField(when, className, fieldName) both take two strings but fill
// different fields. When one category accepts either a detail pair or a
// message with a cause, the cause form carries the Wrap suffix
// (ArgumentNullWrap, MissingMemberWrap, ...).
//
// # Catalogue
//
// Variants describes every operation as data: the Kind it raises and, for
// each argument slot, its name, type, whether the zero value is a default,
// and the error field it fills. Slot order and names never change.
//
// # Cost
//
// Operations allocate nothing when the condition is false. Arguments are
// still evaluated by the caller, so keep expensive message formatting
// behind the condition:
//
//	if len(batch) > limit {
//		return guard.Throw.ArgumentOutOfRange(true, "batch", len(batch), fmt.Sprintf("limit is %d", limit))
//	}
package guard
