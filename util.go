package mytar

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// memberPath resolves an archive member name to a path under dir. Leading
// separators are dropped; names that climb out of dir are refused.
func memberPath(dir, name string) (string, error) {
	rel := strings.TrimLeft(filepath.Clean(name), string(os.PathSeparator))
	if rel == "" || !filepath.IsLocal(rel) {
		return "", errors.Errorf("path leaves %s", dir)
	}
	return filepath.Join(dir, rel), nil
}
