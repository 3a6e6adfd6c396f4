// Package datapath resolves files under a fixed data root, for assets
// shipped alongside a deployment.
package datapath

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrNotFound    = errors.New("datapath: path does not exist")
	ErrOutsideRoot = errors.New("datapath: path escapes root")
)

// Dir resolves relative paths under one root directory.
type Dir struct {
	root string
}

// New returns a Dir rooted at root. The root itself is not checked
// until a lookup happens.
func New(root string) Dir {
	return Dir{root: filepath.Clean(root)}
}

// Root returns the configured root directory.
func (d Dir) Root() string {
	return d.root
}

// Path resolves rel under the root and verifies it exists on disk.
// Lookups that climb out of the root are refused.
func (d Dir) Path(rel string) (string, error) {
	full := filepath.Join(d.root, rel)
	if full != d.root && !strings.HasPrefix(full, d.root+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrOutsideRoot, rel)
	}
	if _, err := os.Stat(full); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, full)
		}
		return "", fmt.Errorf("datapath: stat %s: %w", full, err)
	}
	return full, nil
}
