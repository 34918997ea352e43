package failure_test

import (
	"errors"
	"net/http"
	"testing"

	"atrium/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestPredefinedFailures(t *testing.T) {
	tests := []struct {
		name    string
		failure *failure.Failure
		kind    failure.Kind
		code    int
		message string
	}{
		{
			name:    "InvalidPageParam",
			failure: failure.InvalidPageParam,
			kind:    failure.KindInvalidInput,
			code:    http.StatusBadRequest,
			message: "invalid page parameter",
		},
		{
			name:    "InvalidLimitParam",
			failure: failure.InvalidLimitParam,
			kind:    failure.KindInvalidInput,
			code:    http.StatusBadRequest,
			message: "invalid limit parameter",
		},
		{
			name:    "ForbiddenError",
			failure: failure.ForbiddenError,
			kind:    failure.KindForbidden,
			code:    http.StatusForbidden,
			message: "You don't have the required permissions",
		},
		{
			name:    "ResourceRestrictedError",
			failure: failure.ResourceRestrictedError,
			kind:    failure.KindForbidden,
			code:    http.StatusForbidden,
			message: "You don't have permission to access this resource",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.failure.Kind != tt.kind {
				t.Errorf("expected kind to be %s, got %s", tt.kind, tt.failure.Kind)
			}
			if tt.failure.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, tt.failure.Code)
			}
			if tt.failure.Message != tt.message {
				t.Errorf("expected message to be %s, got %s", tt.message, tt.failure.Message)
			}
		})
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		kind    failure.Kind
		code    int
		message string
	}{
		{
			name:    "NotFound",
			err:     failure.NotFound("booking"),
			kind:    failure.KindNotFound,
			code:    http.StatusNotFound,
			message: "booking",
		},
		{
			name:    "RoomUnavailable",
			err:     failure.RoomUnavailable("room not found"),
			kind:    failure.KindRoomUnavailable,
			code:    http.StatusNotFound,
			message: "room not found",
		},
		{
			name:    "InvalidInput",
			err:     failure.InvalidInput("slots must not be empty"),
			kind:    failure.KindInvalidInput,
			code:    http.StatusBadRequest,
			message: "slots must not be empty",
		},
		{
			name:    "SlotConflict",
			err:     failure.SlotConflict("one or more slots are unavailable"),
			kind:    failure.KindSlotConflict,
			code:    http.StatusConflict,
			message: "one or more slots are unavailable",
		},
		{
			name:    "StorageFailure",
			err:     failure.StorageFailure(errors.New("insert failed")),
			kind:    failure.KindStorageFailure,
			code:    http.StatusInternalServerError,
			message: "insert failed",
		},
		{
			name:    "Unauthorized",
			err:     failure.Unauthorized("missing token"),
			kind:    failure.KindUnauthorized,
			code:    http.StatusUnauthorized,
			message: "missing token",
		},
		{
			name:    "Forbidden",
			err:     failure.Forbidden("admin only"),
			kind:    failure.KindForbidden,
			code:    http.StatusForbidden,
			message: "admin only",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := tt.err.(*failure.Failure)
			if !ok {
				t.Fatalf("expected *failure.Failure, got %T", tt.err)
			}
			if f.Kind != tt.kind {
				t.Errorf("expected kind to be %s, got %s", tt.kind, f.Kind)
			}
			if f.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, f.Code)
			}
			if f.Message != tt.message {
				t.Errorf("expected message to be %s, got %s", tt.message, f.Message)
			}
		})
	}
}

func TestBadRequest(t *testing.T) {
	if failure.BadRequest(nil) != nil {
		t.Error("expected nil for nil error")
	}

	result := failure.BadRequest(errors.New("validation failed"))

	f, ok := result.(*failure.Failure)
	if !ok {
		t.Fatalf("expected result to be *failure.Failure, got %T", result)
	}
	if f.Code != http.StatusBadRequest || f.Message != "validation failed" {
		t.Errorf("unexpected failure %+v", f)
	}
}

func TestTransactionAborted(t *testing.T) {
	t.Run("passes failures through unchanged", func(t *testing.T) {
		original := failure.SlotConflict("one or more slots are unavailable")

		result := failure.TransactionAborted(original)

		f, ok := result.(*failure.Failure)
		if !ok {
			t.Fatalf("expected *failure.Failure, got %T", result)
		}
		if f.Kind != failure.KindSlotConflict {
			t.Errorf("expected kind to be preserved, got %s", f.Kind)
		}
		if f.Code != http.StatusConflict {
			t.Errorf("expected code to be preserved, got %d", f.Code)
		}
	})

	t.Run("wraps plain errors as aborted transaction", func(t *testing.T) {
		result := failure.TransactionAborted(errors.New("driver: bad connection"))

		f, ok := result.(*failure.Failure)
		if !ok {
			t.Fatalf("expected *failure.Failure, got %T", result)
		}
		if f.Kind != failure.KindTransactionAborted {
			t.Errorf("expected kind transaction_aborted, got %s", f.Kind)
		}
		if f.Code != http.StatusInternalServerError {
			t.Errorf("expected code 500, got %d", f.Code)
		}
		if f.Message != "Failed to create booking" {
			t.Errorf("expected generic message, got %s", f.Message)
		}
	})
}

func TestGetCode(t *testing.T) {
	if code := failure.GetCode(failure.NotFound("room")); code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", code)
	}
	if code := failure.GetCode(errors.New("plain")); code != http.StatusInternalServerError {
		t.Errorf("expected 500 for plain error, got %d", code)
	}
}

func TestGetKind(t *testing.T) {
	if kind := failure.GetKind(failure.RoomUnavailable("gone")); kind != failure.KindRoomUnavailable {
		t.Errorf("expected room_unavailable, got %s", kind)
	}
	if kind := failure.GetKind(errors.New("plain")); kind != failure.KindStorageFailure {
		t.Errorf("expected storage_failure for plain error, got %s", kind)
	}
}

func TestIsKind(t *testing.T) {
	err := failure.SlotConflict("taken")

	if !failure.IsKind(err, failure.KindSlotConflict) {
		t.Error("expected IsKind to match slot_conflict")
	}
	if failure.IsKind(err, failure.KindNotFound) {
		t.Error("expected IsKind not to match not_found")
	}
}
