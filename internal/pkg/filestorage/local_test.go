package filestorage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLocalStorageCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")

	ls, err := NewLocalStorage(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("storage directory not created: %v", err)
	}
	if !info.IsDir() {
		t.Fatal("storage path is not a directory")
	}
	if ls.BasePath() != dir {
		t.Errorf("base path: want=%s got=%s", dir, ls.BasePath())
	}
}

func TestDeleteFileMissingIsNoop(t *testing.T) {
	ls, err := NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if err := ls.DeleteFile("does_not_exist.pdf"); err != nil {
		t.Errorf("deleting a missing file should succeed, got %v", err)
	}
	if err := ls.DeleteFile(""); err != nil {
		t.Errorf("deleting an empty name should succeed, got %v", err)
	}
}

func TestDeleteFileRemovesExisting(t *testing.T) {
	dir := t.TempDir()
	ls, err := NewLocalStorage(dir)
	if err != nil {
		t.Fatal(err)
	}

	name := "course_test_20240101120000.pdf"
	if err := os.WriteFile(filepath.Join(dir, name), []byte("%PDF-"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := ls.DeleteFile(name); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, name)); !os.IsNotExist(err) {
		t.Error("file should have been removed")
	}
}

func TestSanitizeName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Algorithms", "Algorithms"},
		{"  intro   course  ", "intro_course"},
		{"a/b\\c:d", "a_b_c_d"},
		{"مقدمة في البرمجة", "مقدمة_في_البرمجة"},
	}
	for _, tc := range cases {
		if got := sanitizeName(tc.in); got != tc.want {
			t.Errorf("%q: want=%q got=%q", tc.in, tc.want, got)
		}
	}
}

func TestCourseFileNameShape(t *testing.T) {
	name := "course_" + sanitizeName("فيزياء عامة") + "_" + timestamp() + ".pdf"
	if !strings.HasPrefix(name, "course_فيزياء_عامة_") {
		t.Errorf("unexpected prefix: %s", name)
	}
	if !strings.HasSuffix(name, ".pdf") {
		t.Errorf("unexpected suffix: %s", name)
	}
	// timestamp is yyyymmddhhmmss
	ts := strings.TrimSuffix(strings.TrimPrefix(name, "course_فيزياء_عامة_"), ".pdf")
	if len(ts) != 14 {
		t.Errorf("timestamp length: want=14 got=%d (%s)", len(ts), ts)
	}
}
