package extract

import (
	"errors"
	"testing"

	"github.com/tastapp/tast-backend/internal/pkg/apperrors"
)

func TestIsPDF(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		want bool
	}{
		{"pdf header", []byte("%PDF-1.7\n...."), true},
		{"empty", nil, false},
		{"plain text", []byte("hello world"), false},
		{"truncated header", []byte("%PD"), false},
	}
	for _, tc := range cases {
		if got := IsPDF(tc.data); got != tc.want {
			t.Errorf("%s: want=%v got=%v", tc.name, tc.want, got)
		}
	}
}

func TestTextRejectsNonPDF(t *testing.T) {
	_, err := Text("notes.txt", []byte("just some text"))
	if err == nil {
		t.Fatal("want error for non-PDF input, got nil")
	}
	if !errors.Is(err, apperrors.ErrInvalidFormat) {
		t.Fatalf("want ErrInvalidFormat, got %v", err)
	}
}
