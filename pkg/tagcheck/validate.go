package tagcheck

// openTag is an entry on the nesting stack.
type openTag struct {
	name string
	line int
}

// Validate tokenizes text and checks its tag nesting.
//
// Diagnostics are returned in document order, followed by one KindUnclosed
// diagnostic per tag still open, outermost first. A nil slice means no
// defects were found.
func Validate(text string) []Diagnostic {
	return Check(Tokenize(text))
}

// Check runs the nesting validator over tokens.
//
// A closing tag that matches an open tag below the innermost one closes that
// tag and every tag opened after it, so a single misplaced closing tag does
// not leave its ancestors reported as unclosed.
func Check(tokens []Token) []Diagnostic {
	var (
		stack []openTag
		diags []Diagnostic
	)

	for _, tok := range tokens {
		if tok.IsDoctype() {
			continue
		}

		if !tok.Closing {
			if IsVoid(tok.Name) || tok.SelfClosing {
				continue
			}
			stack = append(stack, openTag{name: tok.Name, line: tok.Line})
			continue
		}

		if len(stack) == 0 {
			diags = append(diags, Diagnostic{
				Kind: KindUnexpectedClosing,
				Line: tok.Line,
				Name: tok.Name,
				Raw:  tok.Raw,
			})
			continue
		}

		top := stack[len(stack)-1]
		if top.name == tok.Name {
			stack = stack[:len(stack)-1]
			continue
		}

		diag := Diagnostic{
			Kind:         KindMismatchedClosing,
			Line:         tok.Line,
			Name:         tok.Name,
			Raw:          tok.Raw,
			ExpectedName: top.name,
			ExpectedLine: top.line,
		}

		if idx := lastIndexOf(stack, tok.Name); idx >= 0 {
			diag.Kind = KindMismatchedClosingNested
			stack = stack[:idx]
		}

		diags = append(diags, diag)
	}

	for _, open := range stack {
		diags = append(diags, Diagnostic{
			Kind: KindUnclosed,
			Line: open.line,
			Name: open.name,
		})
	}

	return diags
}

// lastIndexOf returns the index of the innermost entry named name, or -1.
func lastIndexOf(stack []openTag, name string) int {
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i].name == name {
			return i
		}
	}
	return -1
}
