package ingest

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
)

// Sentinel errors for document loading.
var (
	// ErrUnsupportedFormat is returned for files that are not plain text.
	// PDF and Office documents must be converted to text upstream.
	ErrUnsupportedFormat = errors.New("unsupported document format")

	// ErrEmptyDocument is returned when a document has no text.
	ErrEmptyDocument = errors.New("document is empty")

	// ErrDocumentTooLarge is returned when a document exceeds the size limit.
	ErrDocumentTooLarge = errors.New("document too large")

	// ErrInvalidEncoding is returned when a document is not valid UTF-8.
	ErrInvalidEncoding = errors.New("document is not valid UTF-8")
)

// StdinPath is the path that reads a document from standard input.
const StdinPath = "-"

const stdinName = "stdin"

// DefaultMaxBytes is used when no size limit is configured.
const DefaultMaxBytes = 1 << 20

// Document is a loaded FNOL text document.
type Document struct {
	Name string // Display name (file base name, or "stdin")
	Path string // Source path as given
	Text string // Normalized text
}

// Supported reports whether path has an extension fnol can read.
// Files without an extension are treated as plain text.
func Supported(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case "", ".txt", ".text":
		return nil
	case ".pdf", ".doc", ".docx", ".odt", ".rtf":
		return fmt.Errorf("%w: %s (convert to plain text first)", ErrUnsupportedFormat, ext)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}

// Read loads a document from path. The special path "-" reads stdin.
func Read(path string, maxBytes int64) (*Document, error) {
	if path == StdinPath {
		return ReadFrom(stdinName, os.Stdin, maxBytes)
	}
	if err := Supported(path); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open document: %w", err)
	}
	defer f.Close()

	doc, err := ReadFrom(filepath.Base(path), f, maxBytes)
	if err != nil {
		return nil, err
	}
	doc.Path = path
	return doc, nil
}

// ReadFrom loads a document from r, reading at most maxBytes.
// Line endings are normalized to "\n".
func ReadFrom(name string, r io.Reader, maxBytes int64) (*Document, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}

	data, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	if int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("%w: %s exceeds %s", ErrDocumentTooLarge, name, humanize.IBytes(uint64(maxBytes)))
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidEncoding, name)
	}

	text := normalizeNewlines(string(data))
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: %s", ErrEmptyDocument, name)
	}

	return &Document{Name: name, Path: name, Text: text}, nil
}

// normalizeNewlines converts CRLF and lone CR line endings to LF.
func normalizeNewlines(s string) string {
	if !strings.Contains(s, "\r") {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
