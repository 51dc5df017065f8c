package handlers

import (
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"worknestBack/internal/models"
)

// maxImageBytes bounds a single listing photo upload.
const maxImageBytes = 5 << 20

// collectImageFiles gathers all uploaded files under the given form keys.
func collectImageFiles(form *multipart.Form, keys ...string) []*multipart.FileHeader {
	if form == nil {
		return nil
	}

	var result []*multipart.FileHeader
	for _, key := range keys {
		if headers, ok := form.File[key]; ok {
			result = append(result, headers...)
		}
	}
	return result
}

// readImageFile loads an uploaded image into memory, rejecting files over
// maxImageBytes.
func readImageFile(header *multipart.FileHeader) ([]byte, error) {
	if header.Size > maxImageBytes {
		return nil, models.ErrImageTooLarge
	}

	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImageBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > maxImageBytes {
		return nil, models.ErrImageTooLarge
	}
	return data, nil
}

// imageContentType maps an upload's extension to a MIME type, falling back
// to the header's own declaration.
func imageContentType(header *multipart.FileHeader) string {
	switch strings.ToLower(filepath.Ext(header.Filename)) {
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	case ".gif":
		return "image/gif"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	}
	if ct := header.Header.Get("Content-Type"); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
