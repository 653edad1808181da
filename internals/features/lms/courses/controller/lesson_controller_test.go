package controller

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/Lin-myatAung/Supportive-And-Efficient-Learning-System/internals/helpers/storage"
)

// The validation paths below fail before any database call, so the
// controller runs against a nil DB; what matters is that a rejected request
// never leaves a file behind in the store.

func newLessonApp(store *storage.Store) *fiber.App {
	lc := NewLessonController(nil, store)
	app := fiber.New()
	app.Post("/api/courses/:id/lessons", lc.Add)
	return app
}

func lessonRequest(t *testing.T, target string, fields map[string]string, fileName, fileType string, content []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field %s: %v", k, err)
		}
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="lessonFile"; filename="`+fileName+`"`)
	h.Set("Content-Type", fileType)
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

	req := httptest.NewRequest("POST", target, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func assertStoreEmpty(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read store dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no files left in store, found %d", len(entries))
	}
}

func TestAddRemovesStoredFileOnMissingTitle(t *testing.T) {
	dir := t.TempDir()
	app := newLessonApp(storage.NewStore(dir))

	req := lessonRequest(t, "/api/courses/abc/lessons",
		map[string]string{"number": "1"},
		"notes.pdf", "application/pdf", []byte("%PDF-1.4 data"))
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}

	var body struct {
		Success bool   `json:"success"`
		Msg     string `json:"msg"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Success || body.Msg != "Missing lesson title or number." {
		t.Fatalf("unexpected envelope: %+v", body)
	}

	assertStoreEmpty(t, dir)
}

func TestAddRemovesStoredFileOnMissingNumber(t *testing.T) {
	dir := t.TempDir()
	app := newLessonApp(storage.NewStore(dir))

	req := lessonRequest(t, "/api/courses/abc/lessons",
		map[string]string{"title": "Intro"},
		"notes.pdf", "application/pdf", []byte("%PDF-1.4 data"))
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}

	assertStoreEmpty(t, dir)
}

func TestAddRejectsOversizedUploadBeforeAnyWrite(t *testing.T) {
	dir := t.TempDir()
	store := storage.NewStore(dir)
	store.MaxSize = 8
	app := newLessonApp(store)

	req := lessonRequest(t, "/api/courses/abc/lessons",
		map[string]string{"title": "Intro", "number": "1"},
		"big.pdf", "application/pdf", []byte("more than eight bytes"))
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}

	assertStoreEmpty(t, dir)
}

func TestAddSilentlyDropsDisallowedTypeThenValidates(t *testing.T) {
	dir := t.TempDir()
	app := newLessonApp(storage.NewStore(dir))

	// An image upload is silently ignored; the request still fails on the
	// missing title, and nothing is written.
	req := lessonRequest(t, "/api/courses/abc/lessons",
		map[string]string{"number": "1"},
		"photo.png", "image/png", []byte("not a pdf"))
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}

	assertStoreEmpty(t, dir)
}
