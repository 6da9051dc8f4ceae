package browser

import (
	"path/filepath"
	"strings"
)

// Crumb is one component of the current path.
type Crumb struct {
	Title string
	Path  string // absolute path the crumb navigates to
}

// Crumbs splits the current dir into navigable components, root first.
func (b *Browser) Crumbs() []Crumb {
	return PathCrumbs(b.dir)
}

// PathCrumbs splits an absolute path into crumbs. On Windows the first
// crumb is the volume root, e.g. `C:\`.
func PathCrumbs(dir string) []Crumb {
	if dir == "" {
		return nil
	}
	dir = filepath.Clean(dir)
	sep := string(filepath.Separator)
	vol := filepath.VolumeName(dir)
	root := vol + sep
	crumbs := []Crumb{{Title: root, Path: root}}

	rest := strings.TrimPrefix(dir[len(vol):], sep)
	p := root
	for _, part := range strings.Split(rest, sep) {
		if part == "" {
			continue
		}
		p = filepath.Join(p, part)
		crumbs = append(crumbs, Crumb{Title: part, Path: p})
	}
	return crumbs
}
