package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/tastapp/tast-backend/internal/app/models/dto"
	"github.com/tastapp/tast-backend/internal/pkg/apperrors"
)

func recordError(t *testing.T, err error) (*httptest.ResponseRecorder, dto.ErrorResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

	HandleAPIError(c, err)

	var resp dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	return w, resp
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"validation", apperrors.ErrValidationFailed, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"bad credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeUnauthorized},
		{"expired token", apperrors.ErrTokenExpired, http.StatusUnauthorized, dto.ErrorCodeUnauthorized},
		{"forbidden", apperrors.ErrPermissionDenied, http.StatusForbidden, dto.ErrorCodeForbidden},
		{"missing course", apperrors.ErrCourseNotFound, http.StatusNotFound, dto.ErrorCodeNotFound},
		{"duplicate username", apperrors.ErrUsernameExists, http.StatusConflict, dto.ErrorCodeConflict},
		{"stubbed feature", apperrors.ErrNotImplemented, http.StatusNotImplemented, dto.ErrorCodeNotImplemented},
	}

	for _, tc := range cases {
		w, resp := recordError(t, tc.err)
		if w.Code != tc.wantStatus {
			t.Errorf("%s: status want=%d got=%d", tc.name, tc.wantStatus, w.Code)
		}
		if resp.Error != tc.wantCode {
			t.Errorf("%s: code want=%s got=%s", tc.name, tc.wantCode, resp.Error)
		}
		if resp.Message == "" {
			t.Errorf("%s: message should not be empty", tc.name)
		}
	}
}

func TestHandleAPIErrorWrappedSentinel(t *testing.T) {
	err := apperrors.NewCustomError(apperrors.ErrValidationFailed, "course name must be between 2 and 255 characters")

	w, resp := recordError(t, err)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status want=%d got=%d", http.StatusBadRequest, w.Code)
	}
	if resp.Details != "course name must be between 2 and 255 characters" {
		t.Errorf("details should echo the wrapped message, got %v", resp.Details)
	}
}

func TestHandleAPIErrorUnknownIsInternal(t *testing.T) {
	w, resp := recordError(t, errors.New("connection reset"))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status want=%d got=%d", http.StatusInternalServerError, w.Code)
	}
	if resp.Error != dto.ErrorCodeInternalServer {
		t.Errorf("code want=%s got=%s", dto.ErrorCodeInternalServer, resp.Error)
	}
	// The underlying message is echoed so failures are debuggable from
	// the client side
	if resp.Details != "connection reset" {
		t.Errorf("details want=connection reset got=%v", resp.Details)
	}
}

func TestHandleAPIErrorInternalKeepsAttachedContext(t *testing.T) {
	err := apperrors.NewCustomError(nil, "").WithDetails(map[string]interface{}{
		"courseName": "فيزياء",
		"error":      "failed to open PDF: malformed xref",
	})

	w, resp := recordError(t, err)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status want=%d got=%d", http.StatusInternalServerError, w.Code)
	}

	details, ok := resp.Details.(map[string]interface{})
	if !ok {
		t.Fatalf("details should be the attached context map, got %T", resp.Details)
	}
	if details["error"] != "failed to open PDF: malformed xref" {
		t.Errorf("error detail missing, got %v", details["error"])
	}
	if details["courseName"] != "فيزياء" {
		t.Errorf("request context missing, got %v", details["courseName"])
	}
}
