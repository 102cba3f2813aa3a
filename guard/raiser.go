package guard

import (
	"context"

	"github.com/LerianStudio/lib-guard/internal/nilcheck"
)

// Raiser exposes one raise-if operation per catalogue variant. It carries no
// state; use the shared Throw value.
//
// Every operation returns nil when when is false, without building anything.
// Otherwise it returns exactly one error whose fields hold the arguments as given.
// Empty strings, nil errors and zero codes are the documented defaults.
type Raiser struct{}

// ArgumentNull returns an *ArgumentError of KindArgumentNull when when is true.
func (Raiser) ArgumentNull(when bool, paramName, message string) error {
	if !when {
		return nil
	}

	return &ArgumentError{Kind: KindArgumentNull, ParamName: paramName, Message: message}
}

// ArgumentNullWrap returns an *ArgumentError of KindArgumentNull carrying a cause.
func (Raiser) ArgumentNullWrap(when bool, message string, inner error) error {
	if !when {
		return nil
	}

	return &ArgumentError{Kind: KindArgumentNull, Message: message, Inner: inner}
}

// Argument returns an *ArgumentError of KindArgument when when is true.
func (Raiser) Argument(when bool, message, paramName string, inner error) error {
	if !when {
		return nil
	}

	return &ArgumentError{Kind: KindArgument, Message: message, ParamName: paramName, Inner: inner}
}

// ArgumentOutOfRange returns an *ArgumentError of KindArgumentOutOfRange with
// the offending value attached.
func (Raiser) ArgumentOutOfRange(when bool, paramName string, actualValue any, message string) error {
	if !when {
		return nil
	}

	return &ArgumentError{
		Kind:        KindArgumentOutOfRange,
		ParamName:   paramName,
		ActualValue: actualValue,
		Message:     message,
	}
}

// ArgumentOutOfRangeWrap returns an *ArgumentError of KindArgumentOutOfRange carrying a cause.
func (Raiser) ArgumentOutOfRangeWrap(when bool, message string, inner error) error {
	if !when {
		return nil
	}

	return &ArgumentError{Kind: KindArgumentOutOfRange, Message: message, Inner: inner}
}

// InvalidCast returns an *InvalidCastError when when is true.
func (Raiser) InvalidCast(when bool, message string, inner error) error {
	if !when {
		return nil
	}

	return &InvalidCastError{Message: message, Inner: inner}
}

// InvalidCastCode returns an *InvalidCastError with a numeric error code.
func (Raiser) InvalidCastCode(when bool, message string, code int) error {
	if !when {
		return nil
	}

	return &InvalidCastError{Message: message, Code: code}
}

// Aggregate returns an *AggregateError grouping errs. Passing no errors is
// valid and yields an empty, non-nil Errors slice.
func (Raiser) Aggregate(when bool, message string, errs ...error) error {
	if !when {
		return nil
	}

	return &AggregateError{Message: message, Errors: append([]error{}, errs...)}
}

// FileNotFound returns a *FileError of KindFileNotFound when when is true.
func (Raiser) FileNotFound(when bool, message, fileName string, inner error) error {
	if !when {
		return nil
	}

	return &FileError{Kind: KindFileNotFound, Message: message, FileName: fileName, Inner: inner}
}

// FileLoad returns a *FileError of KindFileLoad when when is true.
func (Raiser) FileLoad(when bool, message, fileName string, inner error) error {
	if !when {
		return nil
	}

	return &FileError{Kind: KindFileLoad, Message: message, FileName: fileName, Inner: inner}
}

// TaskCanceled returns a *CanceledError of KindTaskCanceled with no token.
func (Raiser) TaskCanceled(when bool, message string, inner error) error {
	if !when {
		return nil
	}

	return &CanceledError{Kind: KindTaskCanceled, Message: message, Inner: inner, Context: context.Background()}
}

// OperationCanceled returns a *CanceledError of KindOperationCanceled. A nil
// token is stored as context.Background().
func (Raiser) OperationCanceled(when bool, message string, inner error, token context.Context) error {
	if !when {
		return nil
	}

	if nilcheck.Interface(token) {
		token = context.Background()
	}

	return &CanceledError{Kind: KindOperationCanceled, Message: message, Inner: inner, Context: token}
}

// General returns an *Error of KindGeneral when when is true.
func (Raiser) General(when bool, message string, inner error) error {
	return raise(when, KindGeneral, message, inner)
}

// InvalidOperation returns an *Error of KindInvalidOperation when when is true.
func (Raiser) InvalidOperation(when bool, message string, inner error) error {
	return raise(when, KindInvalidOperation, message, inner)
}

// InvalidData returns an *Error of KindInvalidData when when is true.
func (Raiser) InvalidData(when bool, message string, inner error) error {
	return raise(when, KindInvalidData, message, inner)
}

// IndexOutOfRange returns an *Error of KindIndexOutOfRange when when is true.
func (Raiser) IndexOutOfRange(when bool, message string, inner error) error {
	return raise(when, KindIndexOutOfRange, message, inner)
}

// Format returns an *Error of KindFormat when when is true.
func (Raiser) Format(when bool, message string, inner error) error {
	return raise(when, KindFormat, message, inner)
}

// NullReference returns an *Error of KindNullReference when when is true.
func (Raiser) NullReference(when bool, message string, inner error) error {
	return raise(when, KindNullReference, message, inner)
}

// NotImplemented returns an *Error of KindNotImplemented when when is true.
func (Raiser) NotImplemented(when bool, message string, inner error) error {
	return raise(when, KindNotImplemented, message, inner)
}

// NotSupported returns an *Error of KindNotSupported when when is true.
// The error matches errors.ErrUnsupported.
func (Raiser) NotSupported(when bool, message string, inner error) error {
	return raise(when, KindNotSupported, message, inner)
}

// Timeout returns an *Error of KindTimeout when when is true. The error
// matches context.DeadlineExceeded and os.ErrDeadlineExceeded.
func (Raiser) Timeout(when bool, message string, inner error) error {
	return raise(when, KindTimeout, message, inner)
}

// KeyNotFound returns an *Error of KindKeyNotFound when when is true.
func (Raiser) KeyNotFound(when bool, message string, inner error) error {
	return raise(when, KindKeyNotFound, message, inner)
}

// UnauthorizedAccess returns an *Error of KindUnauthorizedAccess when when is
// true. The error matches fs.ErrPermission.
func (Raiser) UnauthorizedAccess(when bool, message string, inner error) error {
	return raise(when, KindUnauthorizedAccess, message, inner)
}

// AmbiguousMatch returns an *Error of KindAmbiguousMatch when when is true.
func (Raiser) AmbiguousMatch(when bool, message string, inner error) error {
	return raise(when, KindAmbiguousMatch, message, inner)
}

// TypeLoad returns an *Error of KindTypeLoad when when is true.
func (Raiser) TypeLoad(when bool, message string, inner error) error {
	return raise(when, KindTypeLoad, message, inner)
}

// DLLNotFound returns an *Error of KindDLLNotFound when when is true.
func (Raiser) DLLNotFound(when bool, message string, inner error) error {
	return raise(when, KindDLLNotFound, message, inner)
}

// DirectoryNotFound returns an *Error of KindDirectoryNotFound when when is
// true. The error matches fs.ErrNotExist.
func (Raiser) DirectoryNotFound(when bool, message string, inner error) error {
	return raise(when, KindDirectoryNotFound, message, inner)
}

// PathTooLong returns an *Error of KindPathTooLong when when is true.
func (Raiser) PathTooLong(when bool, message string, inner error) error {
	return raise(when, KindPathTooLong, message, inner)
}

// MissingMember returns a *MissingMemberError naming the class and member.
func (Raiser) MissingMember(when bool, className, memberName string) error {
	return raiseMissing(when, KindMissingMember, className, memberName)
}

// MissingMemberWrap returns a *MissingMemberError with a message and cause.
func (Raiser) MissingMemberWrap(when bool, message string, inner error) error {
	return raiseMissingWrap(when, KindMissingMember, message, inner)
}

// MissingField returns a *MissingMemberError of KindMissingField naming the
// class and field. The field name is stored in MemberName.
func (Raiser) MissingField(when bool, className, fieldName string) error {
	return raiseMissing(when, KindMissingField, className, fieldName)
}

// MissingFieldWrap returns a *MissingMemberError of KindMissingField with a message and cause.
func (Raiser) MissingFieldWrap(when bool, message string, inner error) error {
	return raiseMissingWrap(when, KindMissingField, message, inner)
}

// MissingMethod returns a *MissingMemberError of KindMissingMethod naming the
// class and method. The method name is stored in MemberName.
func (Raiser) MissingMethod(when bool, className, methodName string) error {
	return raiseMissing(when, KindMissingMethod, className, methodName)
}

// MissingMethodWrap returns a *MissingMemberError of KindMissingMethod with a message and cause.
func (Raiser) MissingMethodWrap(when bool, message string, inner error) error {
	return raiseMissingWrap(when, KindMissingMethod, message, inner)
}

// InvalidCredential returns an *Error of KindInvalidCredential when when is true.
func (Raiser) InvalidCredential(when bool, message string, inner error) error {
	return raise(when, KindInvalidCredential, message, inner)
}

// Authentication returns an *Error of KindAuthentication when when is true.
func (Raiser) Authentication(when bool, message string, inner error) error {
	return raise(when, KindAuthentication, message, inner)
}

// DriveNotFound returns an *Error of KindDriveNotFound when when is true.
func (Raiser) DriveNotFound(when bool, message string, inner error) error {
	return raise(when, KindDriveNotFound, message, inner)
}

// Serialization returns an *Error of KindSerialization when when is true.
func (Raiser) Serialization(when bool, message string, inner error) error {
	return raise(when, KindSerialization, message, inner)
}

func raise(when bool, kind Kind, message string, inner error) error {
	if !when {
		return nil
	}

	return &Error{Kind: kind, Message: message, Inner: inner}
}

func raiseMissing(when bool, kind Kind, className, memberName string) error {
	if !when {
		return nil
	}

	return &MissingMemberError{Kind: kind, ClassName: className, MemberName: memberName}
}

func raiseMissingWrap(when bool, kind Kind, message string, inner error) error {
	if !when {
		return nil
	}

	return &MissingMemberError{Kind: kind, Message: message, Inner: inner}
}
