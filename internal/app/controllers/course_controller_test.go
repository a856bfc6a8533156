package controllers

import (
	"errors"
	"testing"

	"github.com/tastapp/tast-backend/internal/app/models/dto"
	"github.com/tastapp/tast-backend/internal/pkg/apperrors"
)

func createReq() *dto.CreateCourseRequest {
	return &dto.CreateCourseRequest{
		CourseName:   "فيزياء عامة",
		NumQuestions: 5,
		Language:     "arabic",
		QuestionType: "mcq",
	}
}

func TestAnnotateCreateErrorWrapsPlainErrors(t *testing.T) {
	plain := errors.New("failed to open PDF: malformed xref")

	annotated := annotateCreateError(plain, createReq())

	var customErr *apperrors.CustomError
	if !errors.As(annotated, &customErr) {
		t.Fatalf("want CustomError, got %T", annotated)
	}
	if customErr.Details == nil {
		t.Fatal("details should carry the form fields")
	}
	if customErr.Details["error"] != "failed to open PDF: malformed xref" {
		t.Errorf("error detail: got %v", customErr.Details["error"])
	}
	if customErr.Details["courseName"] != "فيزياء عامة" {
		t.Errorf("courseName detail: got %v", customErr.Details["courseName"])
	}
	if customErr.Details["numQuestions"] != 5 {
		t.Errorf("numQuestions detail: got %v", customErr.Details["numQuestions"])
	}
}

func TestAnnotateCreateErrorPreservesSentinel(t *testing.T) {
	err := annotateCreateError(apperrors.NewCustomError(apperrors.ErrInvalidFormat, "uploaded course file is not a PDF"), createReq())

	// The wrapped sentinel must survive so the 400 mapping still applies
	if !errors.Is(err, apperrors.ErrInvalidFormat) {
		t.Fatalf("want ErrInvalidFormat to survive, got %v", err)
	}

	var customErr *apperrors.CustomError
	if !errors.As(err, &customErr) {
		t.Fatalf("want CustomError, got %T", err)
	}
	if customErr.Details["error"] != "uploaded course file is not a PDF" {
		t.Errorf("error detail: got %v", customErr.Details["error"])
	}
}

func TestAnnotateCreateErrorKeepsExistingDetails(t *testing.T) {
	existing := apperrors.NewCustomError(apperrors.ErrValidationFailed, "bad input").
		WithDetails(map[string]interface{}{"field": "numQuestions"})

	err := annotateCreateError(existing, createReq())

	var customErr *apperrors.CustomError
	if !errors.As(err, &customErr) {
		t.Fatalf("want CustomError, got %T", err)
	}
	if customErr.Details["field"] != "numQuestions" {
		t.Errorf("pre-attached details should win, got %v", customErr.Details)
	}
}
