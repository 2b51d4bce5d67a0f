package engine

import (
	"fmt"
	"path/filepath"

	"github.com/danieljhkim/frnm/internal/sanitize"
)

// renameOne renames a single entry to its sanitized candidate name.
//
// The sibling set is re-read immediately before the rename, not cached:
// earlier renames in the same run mutate the parent directory, and a stale
// listing would make the collision check wrong. A candidate equal to the
// current name is a silent no-op. A candidate matching an existing sibling
// is never renamed onto it; that is a collision, fatal or recorded as a
// skip depending on the request.
func (e *Engine) renameOne(path string, isDir bool, req *Request, result *Result) error {
	parent := filepath.Dir(path)
	oldName := filepath.Base(path)

	newName := sanitize.Candidate(oldName, isDir, req.Char)
	if newName == oldName {
		return nil
	}

	siblings, err := e.fs.ReadDir(parent)
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", parent, err)
	}
	for _, sibling := range siblings {
		if sibling.Name() == oldName {
			continue
		}
		if sibling.Name() == newName {
			err := fmt.Errorf("%w: %s already exists in %s", ErrCollision, newName, parent)
			if req.SuppressErrors {
				result.Skipped = append(result.Skipped, Skip{Path: path, Err: err})
				return nil
			}
			return err
		}
	}

	dest := filepath.Join(parent, newName)
	if err := e.fs.Rename(path, dest); err != nil {
		return fmt.Errorf("failed to rename %s: %w", path, err)
	}

	result.Renamed = append(result.Renamed, Rename{From: path, To: dest})
	fmt.Fprintf(e.out, "%s ===> %s\n", path, dest)
	return nil
}
