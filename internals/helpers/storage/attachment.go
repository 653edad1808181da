package storage

import (
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DefaultMaxSize mirrors the original 5 MB multer limit.
const DefaultMaxSize = 5 << 20

// ErrFileTooLarge aborts the request before any lesson record is written.
var ErrFileTooLarge = errors.New("uploaded file exceeds the size limit")

// Store writes lesson attachments into one flat directory. Filenames are
// collision-resistant ({stem}-{ingestion millis}{ext}); removal is
// best-effort and idempotent.
type Store struct {
	Dir     string
	MaxSize int64

	// now is swapped in tests to pin the generated filename.
	now func() time.Time
}

func NewStore(dir string) *Store {
	return &Store{
		Dir:     dir,
		MaxSize: DefaultMaxSize,
		now:     time.Now,
	}
}

// Allowed reports whether the upload's declared type is on the allow-list:
// PDF and presentation formats only. A disallowed type is not an error; the
// caller treats it as "no file attached".
func Allowed(contentType string) bool {
	ct := strings.ToLower(contentType)
	return ct == "application/pdf" ||
		strings.Contains(ct, "powerpoint") ||
		strings.Contains(ct, "presentation")
}

// Ingest persists at most one uploaded file and returns its stored name.
// A nil header or a disallowed type yields ("", nil). A file over MaxSize
// yields ErrFileTooLarge.
func (s *Store) Ingest(fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", nil
	}
	if fh.Size > s.MaxSize {
		return "", ErrFileTooLarge
	}
	if !Allowed(fh.Header.Get("Content-Type")) {
		log.Printf("[WARN] rejected upload %q (%s), type not allowed", fh.Filename, fh.Header.Get("Content-Type"))
		return "", nil
	}

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", err
	}

	name := s.storedName(fh.Filename)
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.Dir, name))
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		s.Remove(name)
		return "", err
	}
	if err := dst.Close(); err != nil {
		s.Remove(name)
		return "", err
	}
	return name, nil
}

// Remove deletes a stored attachment. An empty name or an already-absent
// file is a no-op; other failures are only logged, matching the best-effort
// cleanup contract.
func (s *Store) Remove(name string) {
	if name == "" {
		return
	}
	// Stored names never carry path separators; strip any just in case.
	err := os.Remove(filepath.Join(s.Dir, filepath.Base(name)))
	if err != nil && !os.IsNotExist(err) {
		log.Printf("[WARN] failed to remove attachment %q: %v", name, err)
	}
}

// Path returns the on-disk location of a stored attachment.
func (s *Store) Path(name string) string {
	return filepath.Join(s.Dir, filepath.Base(name))
}

func (s *Store) storedName(original string) string {
	ext := filepath.Ext(original)
	stem := strings.TrimSuffix(filepath.Base(original), ext)
	return fmt.Sprintf("%s-%d%s", stem, s.now().UnixMilli(), ext)
}
