package corpus

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

var (
	// ErrUnreadable reports a corpus source that could not be read.
	ErrUnreadable = errors.New("corpus: unreadable source")

	// ErrEncoding reports corpus bytes that are not valid UTF-8.
	ErrEncoding = errors.New("corpus: unsupported encoding")
)

// Load reads the corpus file at path. See Read for validation and
// normalization; failures are reported through ErrUnreadable and
// ErrEncoding so callers can distinguish the kinds with errors.Is.
func Load(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}
	defer f.Close()

	text, err := Read(f)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return text, nil
}

// Read consumes r fully, validates that the bytes are UTF-8, and applies
// Unicode NFC normalization so visually identical corpora produce identical
// token sequences regardless of how their accents were composed.
func Read(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	if !utf8.Valid(data) {
		return "", ErrEncoding
	}
	return string(norm.NFC.Bytes(data)), nil
}
