package handlers

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"worknestBack/internal/models"
)

func parseForm(t *testing.T, buf *bytes.Buffer, contentType string) *multipart.Form {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/", buf)
	req.Header.Set("Content-Type", contentType)
	if err := req.ParseMultipartForm(32 << 20); err != nil {
		t.Fatalf("ParseMultipartForm: %v", err)
	}
	return req.MultipartForm
}

func TestCollectImageFilesMergesKeys(t *testing.T) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, key := range []string{"images", "images[]", "images"} {
		part, err := w.CreateFormFile(key, "p.jpg")
		if err != nil {
			t.Fatalf("CreateFormFile: %v", err)
		}
		part.Write([]byte("x"))
	}
	w.Close()

	form := parseForm(t, &buf, w.FormDataContentType())
	files := collectImageFiles(form, "images", "images[]")
	if len(files) != 3 {
		t.Errorf("collected %d files, want 3", len(files))
	}

	if got := collectImageFiles(nil, "images"); got != nil {
		t.Errorf("nil form returned %v", got)
	}
}

func TestReadImageFileSizeBound(t *testing.T) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("images", "big.jpg")
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	part.Write(bytes.Repeat([]byte("a"), maxImageBytes+1))
	w.Close()

	form := parseForm(t, &buf, w.FormDataContentType())
	files := collectImageFiles(form, "images")
	if len(files) != 1 {
		t.Fatalf("collected %d files", len(files))
	}

	if _, err := readImageFile(files[0]); !errors.Is(err, models.ErrImageTooLarge) {
		t.Errorf("oversized file error = %v, want ErrImageTooLarge", err)
	}
}

func TestImageContentTypeFromExtension(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"photo.JPG", "image/jpeg"},
		{"photo.png", "image/png"},
		{"photo.webp", "image/webp"},
	}
	for _, tc := range tests {
		header := &multipart.FileHeader{Filename: tc.name}
		if got := imageContentType(header); got != tc.want {
			t.Errorf("%s: content type = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestRequestLang(t *testing.T) {
	tests := []struct {
		query  string
		header string
		want   string
	}{
		{"?lang=hi", "", "hi"},
		{"", "te-IN,te;q=0.9", "te"},
		{"?lang=te", "hi-IN", "te"},
		{"", "", "en"},
	}
	for _, tc := range tests {
		req := httptest.NewRequest(http.MethodGet, "/jobs"+tc.query, nil)
		if tc.header != "" {
			req.Header.Set("Accept-Language", tc.header)
		}
		if got := requestLang(req); got != tc.want {
			t.Errorf("query %q header %q: lang = %q, want %q", tc.query, tc.header, got, tc.want)
		}
	}
}
