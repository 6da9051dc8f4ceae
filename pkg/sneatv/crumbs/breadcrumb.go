package crumbs

import "github.com/gdamore/tcell/v2"

// Breadcrumb is a single clickable segment.
type Breadcrumb struct {
	title  string
	color  tcell.Color
	action func() error
}

func NewBreadcrumb(title string, action func() error) *Breadcrumb {
	return &Breadcrumb{title: title, action: action}
}

func (b *Breadcrumb) Title() string      { return b.title }
func (b *Breadcrumb) Color() tcell.Color { return b.color }

// WithColor overrides the default text color.
func (b *Breadcrumb) WithColor(color tcell.Color) *Breadcrumb {
	b.color = color
	return b
}

// Activate runs the action, a breadcrumb without one does nothing.
func (b *Breadcrumb) Activate() error {
	if b.action == nil {
		return nil
	}
	return b.action()
}
