// Package patch rewrites the marked activity region of a document.
package patch

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Sentinel lines bounding the owned region. Everything between them,
// markers included, is replaced on every run.
const (
	StartMarker = "<!-- ACTIVITY:START -->"
	EndMarker   = "<!-- ACTIVITY:END -->"
)

// ErrMarkersNotFound reports a document without a usable marker pair.
// Distinct from the no-change outcome: a malformed document is a
// configuration error, not a reason to silently skip the write.
var ErrMarkersNotFound = errors.New("activity markers not found in document")

// Apply replaces the shortest span from StartMarker through EndMarker with
// block and reports whether the result differs from doc.
func Apply(doc, block string) (string, bool, error) {
	start := strings.Index(doc, StartMarker)
	if start < 0 {
		return "", false, ErrMarkersNotFound
	}
	end := strings.Index(doc[start:], EndMarker)
	if end < 0 {
		return "", false, ErrMarkersNotFound
	}
	end += start + len(EndMarker)

	out := doc[:start] + block + doc[end:]
	return out, out != doc, nil
}

// UpdateFile patches the file at path in place. No write happens when the
// patched content is byte-identical to the original.
func UpdateFile(path, block string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, fmt.Errorf("failed to stat document: %w", err)
	}
	doc, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("failed to read document: %w", err)
	}

	out, changed, err := Apply(string(doc), block)
	if err != nil {
		return false, fmt.Errorf("failed to patch %s: %w", path, err)
	}
	if !changed {
		return false, nil
	}
	if err := os.WriteFile(path, []byte(out), info.Mode().Perm()); err != nil {
		return false, fmt.Errorf("failed to write document: %w", err)
	}
	return true, nil
}
