package files

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/filetug/fileman/pkg/fsutils"
)

// Entry is a single row of a directory listing.
// It is rebuilt on every read and has no identity beyond its position.
type Entry struct {
	Name  string
	IsDir bool

	// Size is the length in bytes for files
	// and the number of children for directories.
	Size int64

	ModTime      time.Time
	ModifiedText string
}

// SizeText is what the Size column shows.
func (e Entry) SizeText() string {
	if e.IsDir {
		return fsutils.FormatItemCount(int(e.Size))
	}
	return fsutils.FormatSize(e.Size)
}

// IsHidden reports dot-files.
func (e Entry) IsHidden() bool {
	return isHidden(e.Name)
}

// FullName joins the entry name to its parent dir.
func (e Entry) FullName(dir string) string {
	return filepath.Join(dir, e.Name)
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
