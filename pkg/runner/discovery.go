package runner

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Discover finds the files to check under opts.Paths and returns them as
// sorted, deduplicated absolute paths.
//
// Directories are walked recursively, keeping files whose extension is in
// opts.Extensions and skipping hidden entries. A path naming a file is kept
// regardless of its extension, and a path that cannot be stat'ed is kept as
// is so the read error is reported against it.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	workDir := opts.WorkingDir
	if workDir == "" {
		workDir = "."
	}
	workDir, err := filepath.Abs(workDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	w := &walker{
		ctx:        ctx,
		workDir:    workDir,
		extensions: opts.effectiveExtensions(),
		ignore:     compileIgnore(opts.ExcludeGlobs),
		follow:     opts.FollowSymlinks,
		visited:    make(map[string]bool),
		seen:       make(map[string]bool),
	}

	for _, input := range opts.effectivePaths() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("discovery cancelled: %w", err)
		}

		abs := input
		if !filepath.IsAbs(abs) {
			abs = filepath.Join(workDir, abs)
		}
		abs = filepath.Clean(abs)

		if info, err := os.Stat(abs); err != nil || !info.IsDir() {
			if !w.ignore.excludes(abs, workDir) {
				w.add(abs)
			}
			continue
		}

		if err := w.walk(abs); err != nil {
			return nil, err
		}
	}

	slices.Sort(w.files)
	return w.files, nil
}

type walker struct {
	ctx        context.Context
	workDir    string
	extensions []string
	ignore     ignoreSet
	follow     bool

	visited map[string]bool // resolved directories already walked
	seen    map[string]bool
	files   []string
}

func (w *walker) add(path string) {
	if !w.seen[path] {
		w.seen[path] = true
		w.files = append(w.files, path)
	}
}

// walk adds the wanted files under root. Each resolved directory is walked
// once, which also ends symlink loops. A root that is itself a symlink is
// walked through its target.
func (w *walker) walk(root string) error {
	resolved, err := filepath.EvalSymlinks(root)
	if err != nil {
		resolved = root
	}
	if w.visited[resolved] {
		return nil
	}
	w.visited[resolved] = true

	if info, err := os.Lstat(root); err == nil && info.Mode()&fs.ModeSymlink != 0 {
		root = resolved
	}

	err = filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if ctxErr := w.ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			if errors.Is(err, fs.ErrPermission) {
				return nil
			}
			return err
		}
		if path == root {
			return nil
		}

		hidden := strings.HasPrefix(entry.Name(), ".")

		switch {
		case entry.IsDir():
			if hidden || w.ignore.excludes(path, w.workDir) {
				return filepath.SkipDir
			}
		case entry.Type()&fs.ModeSymlink != 0:
			return w.symlink(path, hidden)
		case !hidden && w.wanted(path):
			w.add(path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walk directory %s: %w", root, err)
	}
	return nil
}

// symlink handles a link found during a walk. Broken links are skipped;
// directory links are followed only when enabled, by walking the resolved
// target unless it was walked already.
func (w *walker) symlink(path string, hidden bool) error {
	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		return nil //nolint:nilerr // Broken symlinks are skipped.
	}
	info, err := os.Stat(target)
	if err != nil {
		return nil //nolint:nilerr // Unreadable symlink targets are skipped.
	}

	if info.IsDir() {
		if !w.follow || hidden {
			return nil
		}
		return w.walk(target)
	}

	if !hidden && w.wanted(path) {
		w.add(path)
	}
	return nil
}

// wanted reports whether a walked file has a checked extension and is not ignored.
func (w *walker) wanted(path string) bool {
	ext := filepath.Ext(path)
	return slices.ContainsFunc(w.extensions, func(e string) bool { return strings.EqualFold(e, ext) }) &&
		!w.ignore.excludes(path, w.workDir)
}
