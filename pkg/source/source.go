package source

import (
	"context"
	"fmt"

	"github.com/yaklabco/tagcheck/pkg/fsutil"
)

// Options controls how files are turned into text.
type Options struct {
	// Encoding is the WHATWG label used when a file has no byte order mark.
	// Empty means UTF-8.
	Encoding string

	// Markdown controls Markdown detection. Empty means auto.
	Markdown MarkdownMode
}

// Document is a file prepared for validation.
type Document struct {
	// Path is the file path.
	Path string

	// Kind is the detected document type.
	Kind Kind

	// Text is the decoded content. For Markdown only the HTML remains.
	Text string

	// Size is the file size in bytes.
	Size int64
}

// Load reads, decodes and prepares the file at path.
func Load(ctx context.Context, path string, opts Options) (*Document, error) {
	content, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, err
	}

	doc, err := Prepare(path, content, opts)
	if err != nil {
		return nil, err
	}
	doc.Size = info.Size

	return doc, nil
}

// Prepare decodes content read from path and applies Markdown extraction.
func Prepare(path string, content []byte, opts Options) (*Document, error) {
	decoded, err := Decode(content, opts.Encoding)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	kind := DetectKind(path, []byte(decoded), opts.Markdown)

	text := decoded
	if kind == KindMarkdown {
		text = string(ExtractHTML([]byte(decoded)))
	}

	return &Document{
		Path: path,
		Kind: kind,
		Text: text,
		Size: int64(len(content)),
	}, nil
}
