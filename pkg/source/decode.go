// Package source turns files on disk into text ready for tag validation.
//
// It decodes bytes to UTF-8, decides whether a file is markup or Markdown,
// and for Markdown keeps only the embedded HTML. Line numbers of the
// returned text always match the line numbers of the file.
package source

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrDecode indicates the content could not be decoded to text.
var ErrDecode = errors.New("decode failed")

// ErrUnknownEncoding indicates an encoding name that is not recognized.
var ErrUnknownEncoding = errors.New("unknown encoding")

// DefaultEncoding is used when no encoding is configured.
const DefaultEncoding = "utf-8"

// Decode converts content to a UTF-8 string.
//
// A byte order mark always wins over the named encoding. Without one,
// content is decoded with the named encoding (any WHATWG label such as
// "windows-1252" or "shift_jis"). UTF-8 input must be valid UTF-8.
func Decode(content []byte, encoding string) (string, error) {
	name := strings.ToLower(strings.TrimSpace(encoding))
	if name == "" {
		name = DefaultEncoding
	}

	var fallback transform.Transformer = transform.Nop
	if name != "utf-8" && name != "utf8" {
		enc, err := htmlindex.Get(name)
		if err != nil {
			return "", fmt.Errorf("%w: %q", ErrUnknownEncoding, encoding)
		}
		fallback = enc.NewDecoder()
	}

	decoded, _, err := transform.Bytes(unicode.BOMOverride(fallback), content)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecode, err)
	}

	if !utf8.Valid(decoded) {
		return "", fmt.Errorf("%w: invalid %s byte sequence", ErrDecode, name)
	}

	return string(decoded), nil
}

// ValidateEncoding reports an error if encoding is not a known label.
func ValidateEncoding(encoding string) error {
	name := strings.ToLower(strings.TrimSpace(encoding))
	if name == "" || name == "utf-8" || name == "utf8" {
		return nil
	}
	if _, err := htmlindex.Get(name); err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownEncoding, encoding)
	}
	return nil
}
