package storage

import (
	"bytes"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func makeFileHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="lessonFile"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	if err != nil {
		t.Fatalf("read form: %v", err)
	}
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["lessonFile"][0]
}

func TestIngestStoresAllowedFile(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir)
	s.now = func() time.Time { return time.UnixMilli(1700000000000) }

	fh := makeFileHeader(t, "chapter one.pdf", "application/pdf", []byte("%PDF-1.4 data"))
	name, err := s.Ingest(fh)
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if name != "chapter one-1700000000000.pdf" {
		t.Fatalf("unexpected stored name %q", name)
	}

	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("stored file missing: %v", err)
	}
	if string(data) != "%PDF-1.4 data" {
		t.Fatalf("stored content mismatch")
	}
}

func TestIngestAcceptsPresentationTypes(t *testing.T) {
	s := NewStore(t.TempDir())

	types := []string{
		"application/vnd.ms-powerpoint",
		"application/vnd.openxmlformats-officedocument.presentationml.presentation",
	}
	for _, ct := range types {
		fh := makeFileHeader(t, "slides.pptx", ct, []byte("slides"))
		name, err := s.Ingest(fh)
		if err != nil {
			t.Fatalf("ingest %s: %v", ct, err)
		}
		if name == "" {
			t.Fatalf("expected %s to be accepted", ct)
		}
	}
}

func TestIngestSilentlyRejectsDisallowedType(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir)

	fh := makeFileHeader(t, "photo.png", "image/png", []byte("not a pdf"))
	name, err := s.Ingest(fh)
	if err != nil {
		t.Fatalf("disallowed type must not error, got %v", err)
	}
	if name != "" {
		t.Fatalf("expected empty stored name, got %q", name)
	}

	entries, err := os.ReadDir(dir)
	if err == nil && len(entries) != 0 {
		t.Fatalf("expected no files written, found %d", len(entries))
	}
}

func TestIngestRejectsOversizedFile(t *testing.T) {
	s := NewStore(t.TempDir())
	s.MaxSize = 8

	fh := makeFileHeader(t, "big.pdf", "application/pdf", []byte("more than eight bytes"))
	if _, err := s.Ingest(fh); err != ErrFileTooLarge {
		t.Fatalf("expected ErrFileTooLarge, got %v", err)
	}
}

func TestIngestNilHeader(t *testing.T) {
	s := NewStore(t.TempDir())
	name, err := s.Ingest(nil)
	if err != nil || name != "" {
		t.Fatalf("nil header must be a no-op, got %q, %v", name, err)
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir)

	fh := makeFileHeader(t, "notes.pdf", "application/pdf", []byte("data"))
	name, err := s.Ingest(fh)
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}

	s.Remove(name)
	if _, err := os.Stat(filepath.Join(dir, name)); !os.IsNotExist(err) {
		t.Fatalf("file should be gone after remove")
	}

	// Second remove and empty-name remove must be no-ops.
	s.Remove(name)
	s.Remove("")
}

func TestStoredNameKeepsStemAndExtension(t *testing.T) {
	s := NewStore(t.TempDir())
	s.now = func() time.Time { return time.UnixMilli(42) }

	name := s.storedName("lecture-1.final.pdf")
	if !strings.HasPrefix(name, "lecture-1.final-42") || !strings.HasSuffix(name, ".pdf") {
		t.Fatalf("unexpected stored name %q", name)
	}
}
