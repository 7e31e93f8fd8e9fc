// Package filestore keeps uploaded contract PDFs on the local filesystem.
package filestore

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/apperrors"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultMaxBytes is the upload size limit when none is configured (16 MiB).
const DefaultMaxBytes int64 = 16 << 20

const (
	allowedExtension = ".pdf"
	timestampLayout  = "20060102_150405"
)

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// StoredFile describes a file written to the upload directory.
type StoredFile struct {
	// Name is the sanitized original filename, used when the file is downloaded.
	Name string
	// Path is where the bytes live on disk.
	Path string
	Size int64
}

// PDFStore validates and persists PDF uploads under a single directory.
type PDFStore struct {
	dir      string
	maxBytes int64
	now      func() time.Time
}

// Option configures a PDFStore.
type Option func(*PDFStore)

// WithClock overrides the time source used for stored file names.
func WithClock(now func() time.Time) Option {
	return func(s *PDFStore) {
		s.now = now
	}
}

// NewPDFStore creates a store rooted at dir. A non-positive maxBytes selects DefaultMaxBytes.
func NewPDFStore(dir string, maxBytes int64, opts ...Option) *PDFStore {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	s := &PDFStore{dir: dir, maxBytes: maxBytes, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// MaxBytes returns the configured size limit.
func (s *PDFStore) MaxBytes() int64 {
	return s.maxBytes
}

// CheckName rejects filenames without a .pdf extension (case-insensitive).
func (s *PDFStore) CheckName(originalFilename string) error {
	if !strings.EqualFold(filepath.Ext(originalFilename), allowedExtension) {
		return apperrors.NewAppError(400, "Apenas arquivos PDF são permitidos", apperrors.ErrUnsupportedFileType)
	}
	return nil
}

// ReadUpload reads r fully, failing as soon as more than MaxBytes arrive.
// The size is measured on the bytes actually received.
func (s *PDFStore) ReadUpload(r io.Reader) ([]byte, error) {
	var buf bytes.Buffer
	n, err := io.Copy(&buf, io.LimitReader(r, s.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if n > s.maxBytes {
		return nil, s.tooLarge()
	}
	return buf.Bytes(), nil
}

// Store validates data and writes it as <timestamp>_<sanitized name>.
// Nothing is written when validation fails.
func (s *PDFStore) Store(data []byte, originalFilename string) (*StoredFile, error) {
	if err := s.CheckName(originalFilename); err != nil {
		return nil, err
	}
	if int64(len(data)) > s.maxBytes {
		return nil, s.tooLarge()
	}

	name := SanitizeFilename(originalFilename)
	if name == "" || strings.EqualFold(name, allowedExtension) {
		name = "contrato" + allowedExtension
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	prefix := s.now().Format(timestampLayout)
	path := filepath.Join(s.dir, prefix+"_"+name)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	for i := 1; errors.Is(err, os.ErrExist) && i < 100; i++ {
		ext := filepath.Ext(name)
		path = filepath.Join(s.dir, fmt.Sprintf("%s_%s_%d%s", prefix, strings.TrimSuffix(name, ext), i, ext))
		f, err = os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create upload file: %w", err)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(path)
		return nil, fmt.Errorf("failed to write upload file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("failed to close upload file: %w", err)
	}

	return &StoredFile{Name: name, Path: path, Size: int64(len(data))}, nil
}

// Remove deletes a stored file. A missing file is not an error.
func (s *PDFStore) Remove(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove upload file: %w", err)
	}
	return nil
}

// Exists reports whether path points to a regular file.
func (s *PDFStore) Exists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func (s *PDFStore) tooLarge() error {
	return apperrors.NewAppError(400, fmt.Sprintf("Arquivo muito grande. Máximo %dMB", s.maxBytes>>20), apperrors.ErrFileTooLarge)
}

// SanitizeFilename reduces a client-supplied name to a safe base name:
// ASCII letters, digits, dot, underscore and dash. Accents are folded to their
// base letter, whitespace and path separators become underscores, and leading
// dots and underscores are dropped.
func SanitizeFilename(name string) string {
	if folded, _, err := transform.String(transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn))), name); err == nil {
		name = folded
	}
	name = strings.NewReplacer("/", " ", "\\", " ").Replace(name)
	name = strings.Join(strings.Fields(name), "_")
	name = unsafeFilenameChars.ReplaceAllString(name, "")
	return strings.Trim(name, "._")
}
