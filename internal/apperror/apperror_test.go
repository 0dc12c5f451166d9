package apperror

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
)

func TestConstructors_StatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		code ErrorCode
		want int
	}{
		{"unauthorized", Unauthorized(), ErrCodeUnauthorized, http.StatusUnauthorized},
		{"forbidden", Forbidden(), ErrCodeForbidden, http.StatusForbidden},
		{"not found", NotFound("post"), ErrCodeNotFound, http.StatusNotFound},
		{"email taken", EmailTaken(), ErrCodeEmailTaken, http.StatusBadRequest},
		{"invalid credentials", InvalidCredentials(), ErrCodeInvalidCredentials, http.StatusBadRequest},
		{"invalid current password", InvalidCurrentPassword(), ErrCodeInvalidCurrentPassword, http.StatusBadRequest},
		{"missing fields", MissingFields(), ErrCodeMissingFields, http.StatusBadRequest},
		{"invalid input", InvalidInput("bad json"), ErrCodeInvalidInput, http.StatusBadRequest},
		{"internal", Internal(errors.New("boom")), ErrCodeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.code {
				t.Errorf("Code = %s, want %s", tt.err.Code, tt.code)
			}
			if tt.err.HTTPStatus != tt.want {
				t.Errorf("HTTPStatus = %d, want %d", tt.err.HTTPStatus, tt.want)
			}
			if tt.err.Message == "" {
				t.Error("Message should not be empty")
			}
		})
	}
}

func TestToResponse_OmitsStatusAndCause(t *testing.T) {
	resp := Internal(errors.New("connection refused")).ToResponse()

	raw, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]map[string]string
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	body, ok := decoded["error"]
	if !ok {
		t.Fatalf("response missing error envelope: %s", raw)
	}
	if body["code"] != string(ErrCodeInternal) {
		t.Errorf("code = %q, want %q", body["code"], ErrCodeInternal)
	}
	for _, forbidden := range []string{"connection refused", "HTTPStatus", "cause"} {
		if strings.Contains(string(raw), forbidden) {
			t.Errorf("serialized error leaks %q: %s", forbidden, raw)
		}
	}
}

func TestWithCause_Unwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := NotFound("user").WithCause(cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is should reach the cause through Unwrap")
	}
	if got := err.Error(); !strings.Contains(got, "disk full") {
		t.Errorf("Error() = %q, want the cause included", got)
	}
}

func TestAsAppError(t *testing.T) {
	app := Forbidden()
	wrapped := fmt.Errorf("handling request: %w", app)

	got, ok := AsAppError(wrapped)
	if !ok || got != app {
		t.Errorf("AsAppError(wrapped) = %v, %v; want the original error", got, ok)
	}

	if _, ok := AsAppError(errors.New("plain")); ok {
		t.Error("plain errors should not convert")
	}
}
