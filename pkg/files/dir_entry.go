package files

import (
	"os"
	"path/filepath"
)

// NewDirEntry creates an in-memory os.DirEntry. Options, when given,
// attach a FileInfo that is returned by Info().
func NewDirEntry(name string, isDir bool, o ...FileInfoOption) DirEntry {
	if parent, _ := filepath.Split(name); parent != "" {
		// It's OK to have panic here.
		panic("dir entry name can not have path: " + name)
	}
	dirEntry := DirEntry{
		name:  name,
		isDir: isDir,
	}
	if len(o) > 0 {
		dirEntry.info = NewFileInfo(dirEntry, o...)
	}
	return dirEntry
}

var _ os.DirEntry = (*DirEntry)(nil)

type DirEntry struct {
	name    string
	isDir   bool
	symlink bool
	info    *FileInfo
	infoErr error
}

// WithInfoErr makes Info() fail, as it does for entries removed after listing.
func (d DirEntry) WithInfoErr(err error) DirEntry {
	d.infoErr = err
	return d
}

// AsSymlink marks the entry as a symbolic link.
func (d DirEntry) AsSymlink() DirEntry {
	d.symlink = true
	return d
}

func (d DirEntry) Name() string { return d.name }
func (d DirEntry) IsDir() bool  { return d.isDir }
func (d DirEntry) Type() os.FileMode {
	switch {
	case d.symlink:
		return os.ModeSymlink
	case d.isDir:
		return os.ModeDir
	}
	return 0
}
func (d DirEntry) Info() (os.FileInfo, error) {
	if d.infoErr != nil {
		return nil, d.infoErr
	}
	if d.info == nil {
		return nil, nil
	}
	return d.info, nil
}
