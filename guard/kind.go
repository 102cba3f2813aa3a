package guard

import (
	"context"
	"errors"
	"io/fs"
	"os"
)

// Kind identifies the category of a raised guard error.
//
// A Kind is itself an error so it can be used as an errors.Is target:
//
//	if errors.Is(err, guard.KindArgument) { ... }
//
// Matching follows the category hierarchy, so an ArgumentNull error also
// matches KindArgument.
type Kind uint8

// Kind constants. The numeric values are not part of the public contract;
// compare against the named constants.
const (
	KindUnknown Kind = iota
	KindGeneral
	KindArgument
	KindArgumentNull
	KindArgumentOutOfRange
	KindAggregate
	KindAmbiguousMatch
	KindAuthentication
	KindDirectoryNotFound
	KindDLLNotFound
	KindDriveNotFound
	KindFileLoad
	KindFileNotFound
	KindFormat
	KindIndexOutOfRange
	KindInvalidCast
	KindInvalidCredential
	KindInvalidData
	KindInvalidOperation
	KindKeyNotFound
	KindMissingField
	KindMissingMember
	KindMissingMethod
	KindNotImplemented
	KindNotSupported
	KindNullReference
	KindOperationCanceled
	KindPathTooLong
	KindSerialization
	KindTaskCanceled
	KindTimeout
	KindTypeLoad
	KindUnauthorizedAccess

	kindCount
)

type kindInfo struct {
	name        string
	text        string
	parent      Kind
	equivalents []error
}

var kinds = [kindCount]kindInfo{
	KindUnknown:            {name: "unknown", text: "unknown error"},
	KindGeneral:            {name: "general", text: "an error occurred"},
	KindArgument:           {name: "argument", text: "value does not fall within the expected range"},
	KindArgumentNull:       {name: "argument_null", text: "value cannot be null", parent: KindArgument},
	KindArgumentOutOfRange: {name: "argument_out_of_range", text: "specified argument was out of the range of valid values", parent: KindArgument},
	KindAggregate:          {name: "aggregate", text: "one or more errors occurred"},
	KindAmbiguousMatch:     {name: "ambiguous_match", text: "ambiguous match found"},
	KindAuthentication:     {name: "authentication", text: "authentication failed"},
	KindDirectoryNotFound: {
		name:        "directory_not_found",
		text:        "attempted to access a path that is not on the disk",
		equivalents: []error{fs.ErrNotExist},
	},
	KindDLLNotFound: {name: "dll_not_found", text: "dynamic library was not found"},
	KindDriveNotFound: {
		name:        "drive_not_found",
		text:        "attempted to access a drive that is not available",
		equivalents: []error{fs.ErrNotExist},
	},
	KindFileLoad: {name: "file_load", text: "could not load the specified file"},
	KindFileNotFound: {
		name:        "file_not_found",
		text:        "unable to find the specified file",
		equivalents: []error{fs.ErrNotExist},
	},
	KindFormat:            {name: "format", text: "one of the identified items was in an invalid format"},
	KindIndexOutOfRange:   {name: "index_out_of_range", text: "index was outside the bounds of the array"},
	KindInvalidCast:       {name: "invalid_cast", text: "specified cast is not valid"},
	KindInvalidCredential: {name: "invalid_credential", text: "the supplied credential is invalid", parent: KindAuthentication},
	KindInvalidData:       {name: "invalid_data", text: "found invalid data while decoding"},
	KindInvalidOperation:  {name: "invalid_operation", text: "operation is not valid due to the current state of the object"},
	KindKeyNotFound:       {name: "key_not_found", text: "the given key was not present in the dictionary"},
	KindMissingField:      {name: "missing_field", text: "attempted to access a non-existing field", parent: KindMissingMember},
	KindMissingMember:     {name: "missing_member", text: "attempted to access a missing member"},
	KindMissingMethod:     {name: "missing_method", text: "attempted to access a missing method", parent: KindMissingMember},
	KindNotImplemented:    {name: "not_implemented", text: "the method or operation is not implemented"},
	KindNotSupported: {
		name:        "not_supported",
		text:        "specified method is not supported",
		equivalents: []error{errors.ErrUnsupported},
	},
	KindNullReference: {name: "null_reference", text: "object reference not set to an instance of an object"},
	KindOperationCanceled: {
		name:        "operation_canceled",
		text:        "the operation was canceled",
		equivalents: []error{context.Canceled},
	},
	KindPathTooLong:   {name: "path_too_long", text: "the specified file name or path is too long"},
	KindSerialization: {name: "serialization", text: "serialization error"},
	KindTaskCanceled: {
		name:        "task_canceled",
		text:        "a task was canceled",
		parent:      KindOperationCanceled,
		equivalents: []error{context.Canceled},
	},
	KindTimeout: {
		name:        "timeout",
		text:        "the operation has timed out",
		equivalents: []error{context.DeadlineExceeded, os.ErrDeadlineExceeded},
	},
	KindTypeLoad: {name: "type_load", text: "failure has occurred while loading a type"},
	KindUnauthorizedAccess: {
		name:        "unauthorized_access",
		text:        "attempted to perform an unauthorized operation",
		equivalents: []error{fs.ErrPermission},
	},
}

func (k Kind) info() kindInfo {
	if k >= kindCount {
		return kinds[KindUnknown]
	}

	return kinds[k]
}

// String returns the snake_case name of the kind, suitable for log fields and metric labels.
func (k Kind) String() string {
	return k.info().name
}

// Error implements error so a Kind can be passed to errors.Is.
func (k Kind) Error() string {
	return k.info().name
}

// DefaultMessage returns the text rendered for an error of this kind when no
// message was supplied.
func (k Kind) DefaultMessage() string {
	return k.info().text
}

// Parent returns the broader category this kind belongs to, or KindUnknown.
func (k Kind) Parent() Kind {
	return k.info().parent
}

// Within reports whether k is target or one of target's sub-categories.
func (k Kind) Within(target Kind) bool {
	if target == KindUnknown {
		return false
	}

	for current := k; current != KindUnknown; current = current.Parent() {
		if current == target {
			return true
		}
	}

	return false
}

// matches backs the Is method of every guard error type.
func (k Kind) matches(target error) bool {
	if targetKind, ok := target.(Kind); ok {
		return k.Within(targetKind)
	}

	for _, equivalent := range k.info().equivalents {
		if target == equivalent {
			return true
		}
	}

	return false
}

type kinded interface {
	error
	guardKind() Kind
}

// KindOf returns the kind of the first guard error found in err's chain, or
// KindUnknown if there is none.
func KindOf(err error) Kind {
	var target kinded
	if errors.As(err, &target) {
		return target.guardKind()
	}

	return KindUnknown
}
