package runner

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// pattern is one compiled ignore pattern. "**" may stand for zero
// directories, so a pattern compiles to every form with those segments
// dropped.
type pattern struct {
	forms    []glob.Glob
	baseOnly bool // pattern has no slash and also matches base names
}

func compilePattern(expr string) pattern {
	expr = filepath.ToSlash(expr)

	variants := []string{expr}
	for _, drop := range []func(string) (string, bool){
		func(s string) (string, bool) { return strings.CutPrefix(s, "**/") },
		func(s string) (string, bool) { return strings.CutSuffix(s, "/**") },
		func(s string) (string, bool) {
			return strings.Replace(s, "/**/", "/", 1), strings.Contains(s, "/**/")
		},
	} {
		for _, v := range variants {
			if shorter, ok := drop(v); ok {
				variants = append(variants, shorter)
			}
		}
	}

	p := pattern{baseOnly: !strings.Contains(expr, "/")}
	for _, v := range variants {
		if g, err := glob.Compile(v, '/'); err == nil {
			p.forms = append(p.forms, g)
		}
	}
	return p
}

func (p pattern) match(rel string) bool {
	for _, g := range p.forms {
		if g.Match(rel) || (p.baseOnly && g.Match(path.Base(rel))) {
			return true
		}
	}
	return false
}

// ignoreSet is the compiled form of Options.ExcludeGlobs.
type ignoreSet []pattern

func compileIgnore(exprs []string) ignoreSet {
	set := make(ignoreSet, 0, len(exprs))
	for _, expr := range exprs {
		set = append(set, compilePattern(expr))
	}
	return set
}

// excludes reports whether absPath, taken relative to workDir, matches
// any pattern.
func (s ignoreSet) excludes(absPath, workDir string) bool {
	if len(s) == 0 {
		return false
	}
	rel, err := filepath.Rel(workDir, absPath)
	if err != nil {
		rel = absPath
	}
	rel = filepath.ToSlash(rel)
	for _, p := range s {
		if p.match(rel) {
			return true
		}
	}
	return false
}

// MatchGlob reports whether the slash-separated name matches expr.
//
// Patterns use glob syntax where "*" stays within one directory and "**"
// spans any number of directories, including none: "dist/**" matches dist
// and everything under it, "**/vendor" matches vendor at any depth, and
// "docs/**/*.html" matches HTML files anywhere under docs. A pattern
// without a slash also matches the base name. Malformed patterns match
// nothing.
func MatchGlob(name, expr string) bool {
	return compilePattern(expr).match(filepath.ToSlash(name))
}
