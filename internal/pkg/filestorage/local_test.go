package filestorage

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func uploadedFile(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("failed to write form file: %v", err)
	}
	mw.Close()

	form, err := multipart.NewReader(&buf, mw.Boundary()).ReadForm(1 << 20)
	if err != nil {
		t.Fatalf("failed to parse form: %v", err)
	}
	t.Cleanup(func() { _ = form.RemoveAll() })

	return form.File["file"][0]
}

func TestSaveAndDeleteFile(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewLocalStorage(dir, "http://localhost:8080/uploads")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	url, err := storage.SaveFile(uploadedFile(t, "banner.png", "fake image bytes"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(url, "http://localhost:8080/uploads/") {
		t.Errorf("expected a public URL, got %q", url)
	}
	if !strings.HasSuffix(url, ".png") {
		t.Errorf("expected the extension preserved, got %q", url)
	}

	// The stored name is randomized, not the original filename
	storedName := filepath.Base(url)
	if storedName == "banner.png" {
		t.Error("stored filename should not be the uploaded name")
	}
	content, err := os.ReadFile(filepath.Join(dir, storedName))
	if err != nil {
		t.Fatalf("stored file should exist: %v", err)
	}
	if string(content) != "fake image bytes" {
		t.Errorf("stored content mismatch: %q", content)
	}

	if err := storage.DeleteFile(url); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, storedName)); !os.IsNotExist(err) {
		t.Error("expected the file removed")
	}

	// Deleting again is idempotent
	if err := storage.DeleteFile(url); err != nil {
		t.Errorf("second delete should be a no-op, got %v", err)
	}
}

func TestDeleteFileEmptyPathIsNoop(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := storage.DeleteFile(""); err != nil {
		t.Errorf("empty path should be a no-op, got %v", err)
	}
}
