package search

import (
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/jonathan/healthjobfinder/internal/parsing"
)

// Media types accepted for resume uploads.
const (
	MIMEPlainText = "text/plain"
	MIMEPDF       = "application/pdf"
	MIMEDocx      = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

var resumeExtensions = map[string]string{
	".txt":  MIMEPlainText,
	".pdf":  MIMEPDF,
	".docx": MIMEDocx,
}

// Resume is an uploaded resume. Its bytes are read once, when the request is built.
type Resume struct {
	Name     string
	MIMEType string
	Open     func() (io.ReadCloser, error)
}

// ResumeFromFile returns a Resume backed by a file on disk.
func ResumeFromFile(path, mimeType string) *Resume {
	return &Resume{
		Name:     filepath.Base(path),
		MIMEType: mimeType,
		Open: func() (io.ReadCloser, error) {
			return os.Open(path)
		},
	}
}

// Read opens the resume, reads all of it and closes it again.
// It returns the bytes with the effective media type.
func (r *Resume) Read() ([]byte, string, error) {
	if r.Open == nil {
		return nil, "", &parsing.ParseError{Message: fmt.Sprintf("failed to read resume file %q", r.Name)}
	}

	rc, err := r.Open()
	if err != nil {
		return nil, "", &parsing.ParseError{Message: fmt.Sprintf("failed to read resume file %q", r.Name), Cause: err}
	}
	defer func() { _ = rc.Close() }()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, "", &parsing.ParseError{Message: fmt.Sprintf("failed to read resume file %q", r.Name), Cause: err}
	}

	return data, r.mediaType(data), nil
}

// mediaType prefers the declared type, then the file extension, then content sniffing.
func (r *Resume) mediaType(data []byte) string {
	if t := strings.TrimSpace(r.MIMEType); t != "" && t != "application/octet-stream" {
		return t
	}
	if t, ok := resumeExtensions[strings.ToLower(filepath.Ext(r.Name))]; ok {
		return t
	}
	return sniffMediaType(data)
}

// sniffMediaType detects the type from content, without parameters such as charset.
func sniffMediaType(data []byte) string {
	detected := mimetype.Detect(data).String()
	if t, _, err := mime.ParseMediaType(detected); err == nil {
		return t
	}
	return detected
}
