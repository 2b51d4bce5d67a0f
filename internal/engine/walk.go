package engine

import "path/filepath"

// entry is one filesystem entry discovered during traversal.
type entry struct {
	path  string
	isDir bool
}

// descendants lists everything beneath dir in deepest-first order: every
// entry appears before any of its ancestor directories. Renaming in this
// order keeps each entry's parent path valid, since a directory's own name
// only changes after all of its contents have been processed. Order among
// siblings follows the directory listing and carries no guarantee.
//
// Symlinks and special files are skipped; symlinked directories are not
// descended into.
func (e *Engine) descendants(dir string) ([]entry, error) {
	listing, err := e.fs.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var out []entry
	for _, de := range listing {
		child := filepath.Join(dir, de.Name())
		switch {
		case de.IsDir():
			sub, err := e.descendants(child)
			if err != nil {
				return nil, err
			}
			out = append(out, sub...)
			out = append(out, entry{path: child, isDir: true})
		case de.Type().IsRegular():
			out = append(out, entry{path: child, isDir: false})
		}
	}
	return out, nil
}
