package files

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/filetug/fileman/pkg/fsutils"
)

var osReadDir = os.ReadDir
var osStat = os.Stat

// Reader lists a directory of the local filesystem.
type Reader struct {
	ShowHidden bool

	// Now is used to render relative timestamps; defaults to time.Now.
	Now func() time.Time
}

var defaultReader = Reader{ShowHidden: true}

// ReadDir lists dir with hidden entries included.
func ReadDir(ctx context.Context, dir string) ([]Entry, error) {
	return defaultReader.ReadDir(ctx, dir)
}

// ReadDir returns the entries of dir, directories first.
// Only a failure to read dir itself is reported, per-entry metadata
// failures leave the entry with zero size and an unknown timestamp.
func (r Reader) ReadDir(ctx context.Context, dir string) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	children, err := osReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}
	now := time.Now()
	if r.Now != nil {
		now = r.Now()
	}
	entries := make([]Entry, 0, len(children))
	for _, child := range children {
		if !r.ShowHidden && isHidden(child.Name()) {
			continue
		}
		entries = append(entries, r.newEntry(dir, child, now))
	}
	SortDirsFirst(entries)
	return entries, nil
}

func (r Reader) newEntry(dir string, child os.DirEntry, now time.Time) Entry {
	entry := Entry{
		Name:  child.Name(),
		IsDir: child.IsDir() || isSymlinkToDir(dir, child),
	}
	var modTime time.Time
	if fi, err := child.Info(); err == nil && fi != nil {
		modTime = fi.ModTime()
		if !entry.IsDir {
			entry.Size = fi.Size()
		}
	}
	if entry.IsDir {
		entry.Size = int64(r.countChildren(filepath.Join(dir, entry.Name)))
	}
	entry.ModTime = modTime
	entry.ModifiedText = fsutils.FormatModTime(modTime, now)
	return entry
}

// countChildren returns 0 for directories that can not be read.
func (r Reader) countChildren(dir string) int {
	children, err := osReadDir(dir)
	if err != nil {
		return 0
	}
	if r.ShowHidden {
		return len(children)
	}
	var count int
	for _, child := range children {
		if !isHidden(child.Name()) {
			count++
		}
	}
	return count
}

func isSymlinkToDir(dir string, entry os.DirEntry) bool {
	if entry.Type()&os.ModeSymlink == 0 {
		return false
	}
	// os.Stat follows the link, entry.Info() would describe the link itself.
	info, err := osStat(filepath.Join(dir, entry.Name()))
	if err != nil {
		return false
	}
	return info.IsDir()
}

// SortDirsFirst moves directories ahead of files keeping the original order otherwise.
func SortDirsFirst(entries []Entry) {
	slices.SortStableFunc(entries, func(a, b Entry) int {
		switch {
		case a.IsDir == b.IsDir:
			return 0
		case a.IsDir:
			return -1
		default:
			return 1
		}
	})
}
