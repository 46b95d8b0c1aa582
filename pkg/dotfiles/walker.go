package dotfiles

import (
	"os"
	"path/filepath"

	"github.com/tuck-sh/tuck/pkg/config"
	"github.com/tuck-sh/tuck/pkg/errors"
)

// Walker traverses a dotfile directory depth-first, yielding one Dotfile
// per discovered entry. Traversal is lazy: a directory's contents are read
// only when the directory itself is reached. Every call to Walk returns an
// independent cursor, so concurrent or repeated traversals don't share
// state.
//
// Usage follows the scanner pattern:
//
//	w, err := d.Walk(settings)
//	for w.Next() {
//	    entry := w.Dotfile()
//	    ...
//	}
//	if err := w.Err(); err != nil { ... }
type Walker struct {
	settings   config.Settings
	stack      []walkEntry
	current    Dotfile
	currentDir bool
	err        error
}

type walkEntry struct {
	path string
	dir  bool
}

// Walk creates a Walker rooted at the dotfile's path. Fails with
// NOT_A_DIRECTORY when the dotfile is not a directory, since it would not
// be walkable.
func (d Dotfile) Walk(s config.Settings) (*Walker, error) {
	info, err := os.Stat(d.Path)
	if err != nil || !info.IsDir() {
		return nil, errors.Newf(errors.ErrNotADirectory, "%q is not a directory", d.Path)
	}

	w := &Walker{settings: s}
	if err := w.push(d.Path); err != nil {
		return nil, err
	}
	return w, nil
}

// push reads a directory and stacks its entries in reverse lexical order,
// so they pop in lexical order.
func (w *Walker) push(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to read directory %q", dir)
	}

	for i := len(entries) - 1; i >= 0; i-- {
		w.stack = append(w.stack, walkEntry{
			path: filepath.Join(dir, entries[i].Name()),
			dir:  entries[i].IsDir(),
		})
	}
	return nil
}

// Next advances to the next entry. It returns false when the traversal is
// exhausted or an error occurred; check Err afterwards.
func (w *Walker) Next() bool {
	if w.err != nil || len(w.stack) == 0 {
		return false
	}

	entry := w.stack[len(w.stack)-1]
	w.stack = w.stack[:len(w.stack)-1]

	if entry.dir {
		if err := w.push(entry.path); err != nil {
			w.err = err
			return false
		}
	}

	dotfile, err := Resolve(w.settings, entry.path)
	if err != nil {
		w.err = err
		return false
	}

	w.current = dotfile
	w.currentDir = entry.dir
	return true
}

// Dotfile returns the entry the last call to Next advanced to.
func (w *Walker) Dotfile() Dotfile {
	return w.current
}

// IsDir reports whether the current entry is a directory, as observed
// when its parent was read. Saves callers a stat per entry.
func (w *Walker) IsDir() bool {
	return w.currentDir
}

// Err returns the first error encountered during traversal, if any.
func (w *Walker) Err() error {
	return w.err
}
