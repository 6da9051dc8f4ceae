package browser

import (
	"context"
	"path/filepath"

	"github.com/filetug/fileman/pkg/files"
	"github.com/sirupsen/logrus"
)

// DirReader lists a directory, directories first.
type DirReader interface {
	ReadDir(ctx context.Context, dir string) ([]files.Entry, error)
}

// Browser owns the current directory and its freshly read entries.
// Every navigation re-reads the directory, nothing is cached between reads.
type Browser struct {
	reader  DirReader
	log     logrus.FieldLogger
	dir     string
	entries []files.Entry
	err     error

	onChange func(b *Browser)
}

type Option func(b *Browser)

func WithLogger(log logrus.FieldLogger) Option {
	return func(b *Browser) {
		b.log = log
	}
}

// OnChange registers a listener called after each rebuild of the listing.
// It is also called for the initial read done by New.
func OnChange(f func(b *Browser)) Option {
	return func(b *Browser) {
		b.onChange = f
	}
}

// New creates a browser positioned at startDir and reads it.
func New(reader DirReader, startDir string, options ...Option) *Browser {
	b := &Browser{
		reader: reader,
		log:    logrus.StandardLogger(),
	}
	for _, option := range options {
		option(b)
	}
	b.GoTo(startDir)
	return b
}

func (b *Browser) Dir() string            { return b.dir }
func (b *Browser) Entries() []files.Entry { return b.entries }

// Err is the failure of the last directory read, if any.
func (b *Browser) Err() error { return b.err }

// GoTo makes dir current. Relative paths are resolved against the current dir.
func (b *Browser) GoTo(dir string) {
	b.dir = b.resolve(dir)
	b.Refresh()
}

// Enter navigates into a listed directory. Files are ignored.
func (b *Browser) Enter(entry files.Entry) bool {
	if !entry.IsDir {
		return false
	}
	b.GoTo(b.EntryPath(entry))
	return true
}

// CanGoUp is false at the filesystem root.
func (b *Browser) CanGoUp() bool {
	return filepath.Dir(b.dir) != b.dir
}

// Up navigates to the parent directory.
func (b *Browser) Up() bool {
	if !b.CanGoUp() {
		return false
	}
	b.GoTo(filepath.Dir(b.dir))
	return true
}

// Refresh re-reads the current directory.
func (b *Browser) Refresh() {
	b.entries = nil
	b.err = nil
	entries, err := b.reader.ReadDir(context.Background(), b.dir)
	if err != nil {
		b.err = err
		b.log.WithError(err).WithField("dir", b.dir).Warn("failed to read directory")
	} else {
		b.entries = entries
		b.log.WithField("dir", b.dir).WithField("entries", len(entries)).Debug("directory read")
	}
	if b.onChange != nil {
		b.onChange(b)
	}
}

// EntryPath returns the absolute path of a listed entry.
func (b *Browser) EntryPath(entry files.Entry) string {
	return entry.FullName(b.dir)
}

func (b *Browser) resolve(dir string) string {
	if dir == "" {
		dir = "."
	}
	if !filepath.IsAbs(dir) && b.dir != "" {
		dir = filepath.Join(b.dir, dir)
	}
	if abs, err := filepath.Abs(dir); err == nil {
		return abs
	}
	return filepath.Clean(dir)
}
