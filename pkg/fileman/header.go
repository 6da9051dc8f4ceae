package fileman

import (
	"path/filepath"

	"github.com/filetug/fileman/pkg/browser"
	"github.com/filetug/fileman/pkg/sneatv/crumbs"
	"github.com/rivo/tview"
)

const upButtonWidth = 6

// header is the row above the listing: the Up button and the path breadcrumbs.
type header struct {
	*tview.Flex
	up     *tview.Button
	crumbs *crumbs.Breadcrumbs

	upVisible bool
}

func newHeader(onUp func(), onError func(error)) *header {
	h := &header{
		Flex: tview.NewFlex(),
		up:   tview.NewButton("⬆ Up").SetSelectedFunc(onUp),
		crumbs: crumbs.NewBreadcrumbs(
			crumbs.WithSeparator(string(filepath.Separator)),
			crumbs.WithSeparatorStartIndex(2),
			crumbs.WithErrorHandler(onError),
		),
	}
	h.crumbs.SetBorderPadding(0, 0, 1, 0)
	h.layout(false)
	return h
}

// layout rebuilds the row, the Up button is left out at the filesystem root.
func (h *header) layout(showUp bool) {
	h.upVisible = showUp
	h.Clear()
	if showUp {
		h.AddItem(h.up, upButtonWidth, 0, false)
	}
	h.AddItem(h.crumbs, 0, 1, false)
}

func (h *header) setPath(trail []browser.Crumb, canGoUp bool, goTo func(dir string)) {
	h.crumbs.Clear()
	for _, c := range trail {
		h.crumbs.Push(crumbs.NewBreadcrumb(c.Title, func() error {
			goTo(c.Path)
			return nil
		}))
	}
	if canGoUp != h.upVisible {
		h.layout(canGoUp)
	}
}
