package source

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// ExtractHTML returns content with everything except raw HTML blanked out.
//
// HTML blocks and inline HTML are copied byte for byte to the same offsets.
// All other bytes become spaces, except newlines, which are kept so that
// line numbers in the result match the Markdown source. HTML inside code
// spans and fenced code blocks is not raw HTML and is dropped.
func ExtractHTML(content []byte) []byte {
	out := make([]byte, len(content))
	for i, b := range content {
		if b == '\n' {
			out[i] = '\n'
		} else {
			out[i] = ' '
		}
	}

	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	doc := md.Parser().Parse(text.NewReader(content))

	keep := func(seg text.Segment) {
		if seg.Start < 0 || seg.Stop > len(content) || seg.Start >= seg.Stop {
			return
		}
		copy(out[seg.Start:seg.Stop], content[seg.Start:seg.Stop])
	}

	keepAll := func(segs *text.Segments) {
		if segs == nil {
			return
		}
		for i := 0; i < segs.Len(); i++ {
			keep(segs.At(i))
		}
	}

	_ = ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch n := node.(type) {
		case *ast.HTMLBlock:
			keepAll(n.Lines())
			if n.HasClosure() {
				keep(n.ClosureLine)
			}
			return ast.WalkSkipChildren, nil
		case *ast.RawHTML:
			keepAll(n.Segments)
			return ast.WalkSkipChildren, nil
		}

		return ast.WalkContinue, nil
	})

	return out
}
