// Package engine provides the traversal and rename logic for frnm.
//
// The engine acts as the orchestration layer between the CLI and the
// filesystem. It validates the substitution character, resolves every input
// path to canonical form before the first rename, walks directory trees
// deepest-first, and renames each entry to its sanitized candidate name
// while guarding against collisions with untouched siblings.
//
// Key components:
//   - Engine: main orchestrator, the API surface called by the CLI
//   - Run: executes one rename run described by a Request
//   - descendants: deepest-first enumeration of a directory tree
//   - renameOne: single-entry rename with sibling collision check
package engine

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/danieljhkim/frnm/internal/fsops"
	"github.com/danieljhkim/frnm/internal/sanitize"
)

// Request describes one rename run.
type Request struct {
	// Char is the substitution character.
	Char string

	// Paths are the files and directories to rename, absolute or relative.
	Paths []string

	// Recursive renames a directory's descendants, deepest first, before
	// the directory itself.
	Recursive bool

	// SuppressErrors records missing paths and collisions in the Result
	// and continues with the remaining entries instead of aborting.
	SuppressErrors bool
}

// Rename records one successful rename.
type Rename struct {
	From string
	To   string
}

// Skip records an entry passed over because of a suppressed error.
type Skip struct {
	Path string
	Err  error
}

// Result reports what a run did.
type Result struct {
	Renamed []Rename
	Skipped []Skip
}

// Engine orchestrates path resolution, traversal, and renames.
// It holds no state across runs; the filesystem is the only shared resource.
type Engine struct {
	fs  fsops.FS
	out io.Writer
}

// New creates an Engine. A notice line is written to out for every rename
// performed; pass io.Discard to silence them.
func New(fs fsops.FS, out io.Writer) *Engine {
	return &Engine{fs: fs, out: out}
}

// Run executes a rename run. The substitution character is validated before
// any filesystem access, and every input path is resolved and checked before
// the first rename. The returned error is non-nil only when a non-suppressed
// failure aborted the run; suppressed failures are reported in the Result.
// Renames already performed before a failure are not rolled back.
func (e *Engine) Run(req *Request) (*Result, error) {
	if err := validateChar(req.Char); err != nil {
		return nil, err
	}

	result := &Result{}

	paths, err := e.resolveInputs(req, result)
	if err != nil {
		return nil, err
	}

	for _, path := range paths {
		if err := e.processPath(path, req, result); err != nil {
			return result, err
		}
	}

	return result, nil
}

// validateChar checks the substitution character: exactly one character,
// itself a member of the allowed set.
func validateChar(char string) error {
	if utf8.RuneCountInString(char) != 1 {
		return fmt.Errorf("%w: %q must be a single character", ErrInvalidChar, char)
	}
	if !sanitize.IsAllowed(char) {
		return fmt.Errorf("%w: %q is not in the allowed set %s", ErrInvalidChar, char, sanitize.Allowed)
	}
	return nil
}

// resolveInputs canonicalizes every requested path up front, before any
// rename. A missing path aborts the run, or is recorded and dropped when
// errors are suppressed.
func (e *Engine) resolveInputs(req *Request, result *Result) ([]string, error) {
	resolved := make([]string, 0, len(req.Paths))
	for _, p := range req.Paths {
		canonical, err := e.fs.Canonicalize(p)
		if err != nil {
			if os.IsNotExist(err) {
				err = fmt.Errorf("%w: %s", ErrNotFound, p)
			} else {
				err = fmt.Errorf("failed to resolve %s: %w", p, err)
			}
			if req.SuppressErrors {
				result.Skipped = append(result.Skipped, Skip{Path: p, Err: err})
				continue
			}
			return nil, err
		}
		resolved = append(resolved, canonical)
	}
	return resolved, nil
}

// processPath renames one resolved input. For a directory under a recursive
// request, every descendant is renamed before the directory itself: renaming
// the directory first would change the path of everything beneath it.
func (e *Engine) processPath(path string, req *Request, result *Result) error {
	info, err := e.fs.Stat(path)
	if err != nil {
		// Validated up front; the path vanished mid-run.
		err = fmt.Errorf("%w: %s", ErrNotFound, path)
		if req.SuppressErrors {
			result.Skipped = append(result.Skipped, Skip{Path: path, Err: err})
			return nil
		}
		return err
	}

	switch {
	case info.Mode().IsRegular():
		return e.renameOne(path, false, req, result)
	case info.IsDir():
		if req.Recursive {
			children, err := e.descendants(path)
			if err != nil {
				return fmt.Errorf("failed to walk %s: %w", path, err)
			}
			for _, child := range children {
				if err := e.renameOne(child.path, child.isDir, req, result); err != nil {
					return err
				}
			}
		}
		return e.renameOne(path, true, req, result)
	default:
		// Neither a regular file nor a directory.
		return nil
	}
}
