package failure

import (
	"errors"
	"net/http"
)

// Kind is a machine-readable classification of a failure. It travels in the
// error response body so clients can branch on it without parsing messages.
type Kind string

const (
	KindNotFound           Kind = "not_found"
	KindRoomUnavailable    Kind = "room_unavailable"
	KindInvalidInput       Kind = "invalid_input"
	KindSlotConflict       Kind = "slot_conflict"
	KindStorageFailure     Kind = "storage_failure"
	KindTransactionAborted Kind = "transaction_aborted"
	KindUnauthorized       Kind = "unauthorized"
	KindForbidden          Kind = "forbidden"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Kind    Kind   `json:"kind,omitempty"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var InvalidPageParam = &Failure{Kind: KindInvalidInput, Code: http.StatusBadRequest, Message: "invalid page parameter"}
var InvalidLimitParam = &Failure{Kind: KindInvalidInput, Code: http.StatusBadRequest, Message: "invalid limit parameter"}
var ForbiddenError = &Failure{Kind: KindForbidden, Code: http.StatusForbidden, Message: "You don't have the required permissions"}
var ResourceRestrictedError = &Failure{Kind: KindForbidden, Code: http.StatusForbidden, Message: "You don't have permission to access this resource"}

// Error returns the failure message.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Kind:    KindInvalidInput,
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Kind:    KindInvalidInput,
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// InvalidInput flags a structurally invalid request payload.
func InvalidInput(msg string) error {
	return &Failure{
		Kind:    KindInvalidInput,
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Kind:    KindUnauthorized,
		Code:    http.StatusUnauthorized,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Kind:    KindStorageFailure,
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Kind:    KindNotFound,
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

// RoomUnavailable flags a room that exists but has been soft-deleted.
func RoomUnavailable(msg string) error {
	return &Failure{
		Kind:    KindRoomUnavailable,
		Code:    http.StatusNotFound,
		Message: msg,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Kind:    KindSlotConflict,
		Code:    http.StatusConflict,
		Message: message,
	}
}

// SlotConflict flags requested slots that could not all be exclusively claimed.
// Already-booked and nonexistent slots are reported identically so the check
// stays a single atomic count compare and slot existence is not leaked.
func SlotConflict(message string) error {
	return &Failure{
		Kind:    KindSlotConflict,
		Code:    http.StatusConflict,
		Message: message,
	}
}

// StorageFailure flags a write that did not take effect.
func StorageFailure(err error) error {
	return &Failure{
		Kind:    KindStorageFailure,
		Code:    http.StatusInternalServerError,
		Message: err.Error(),
	}
}

// TransactionAborted wraps any error raised inside an atomic unit once
// rollback has been performed. Failures keep their own kind; anything else
// surfaces as an aborted transaction.
func TransactionAborted(err error) error {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail
	}

	return &Failure{
		Kind:    KindTransactionAborted,
		Code:    http.StatusInternalServerError,
		Message: "Failed to create booking",
	}
}

func Forbidden(msg string) error {
	return &Failure{
		Kind:    KindForbidden,
		Code:    http.StatusForbidden,
		Message: msg,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetKind returns the machine-readable kind of an error interface.
func GetKind(err error) Kind {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Kind
	}

	return KindStorageFailure
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return GetKind(err) == kind
}
