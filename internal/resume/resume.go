package resume

import (
	"encoding/base64"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrTooLarge        = errors.New("file too large")
	ErrEmpty           = errors.New("file is empty")
)

const (
	MIMEPDF  = "application/pdf"
	MIMEDOC  = "application/msword"
	MIMEDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

var extensions = map[string]string{
	".pdf":  MIMEPDF,
	".doc":  MIMEDOC,
	".docx": MIMEDOCX,
}

// Upload is a validated resume as stored in the key-value store.
type Upload struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Size       int64     `json:"size"`
	MIME       string    `json:"mime"`
	UploadedAt time.Time `json:"uploaded_at"`
	Data       string    `json:"data"`
}

// DetectMIME returns the accepted MIME type for a file. The reported type
// wins when it is accepted; otherwise the extension of name decides.
func DetectMIME(name, reported string) (string, error) {
	reported = strings.ToLower(strings.TrimSpace(reported))
	for _, mime := range extensions {
		if reported == mime {
			return mime, nil
		}
	}
	if mime, ok := extensions[strings.ToLower(filepath.Ext(name))]; ok {
		return mime, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedType, name)
}

// CheckSize rejects empty files and files larger than maxBytes.
func CheckSize(size, maxBytes int64) error {
	if size <= 0 {
		return ErrEmpty
	}
	if size > maxBytes {
		return fmt.Errorf("%w: %d bytes, limit %d", ErrTooLarge, size, maxBytes)
	}
	return nil
}

// New validates a received file and shapes it for storage.
func New(name, mime string, data []byte, maxBytes int64, now time.Time) (Upload, error) {
	detected, err := DetectMIME(name, mime)
	if err != nil {
		return Upload{}, err
	}
	if err := CheckSize(int64(len(data)), maxBytes); err != nil {
		return Upload{}, err
	}

	return Upload{
		ID:         uuid.New(),
		Name:       name,
		Size:       int64(len(data)),
		MIME:       detected,
		UploadedAt: now,
		Data:       base64.StdEncoding.EncodeToString(data),
	}, nil
}

// Bytes decodes the stored file contents.
func (u Upload) Bytes() ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(u.Data)
	if err != nil {
		return nil, fmt.Errorf("decode resume: %w", err)
	}
	return data, nil
}

// Kind is the short display name of the file format.
func (u Upload) Kind() string {
	switch u.MIME {
	case MIMEPDF:
		return "PDF"
	case MIMEDOC:
		return "DOC"
	case MIMEDOCX:
		return "DOCX"
	}
	return u.MIME
}
