package hostfs

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// DefaultRoot is the root of the running host.
const DefaultRoot = "/"

var ErrInvalidPath = errors.New("invalid host path")

// Path joins root with a relative path (no leading slash).
// Example: Path("/host", "etc/passwd") -> /host/etc/passwd
func Path(root, rel string) (string, error) {
	if root == "" {
		root = DefaultRoot
	}
	rel = strings.TrimPrefix(rel, "/")
	clean := filepath.Clean(rel)
	if clean == "." || clean == "" {
		return "", ErrInvalidPath
	}
	if strings.HasPrefix(clean, "..") {
		return "", ErrInvalidPath
	}
	return filepath.Join(root, clean), nil
}

// ReadFile reads rel beneath root.
func ReadFile(root, rel string) ([]byte, error) {
	p, err := Path(root, rel)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(p)
}
