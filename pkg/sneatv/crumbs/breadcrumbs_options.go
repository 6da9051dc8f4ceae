package crumbs

type Option func(bc *Breadcrumbs)

func WithSeparator(separator string) Option {
	return func(bc *Breadcrumbs) {
		bc.separator = separator
	}
}

// WithSeparatorStartIndex draws no separator before items with a lower index.
// Useful when the first item is a root like "/" that already ends with one.
func WithSeparatorStartIndex(i int) Option {
	return func(bc *Breadcrumbs) {
		bc.separatorStartIdx = i
	}
}

// WithErrorHandler receives errors returned by breadcrumb actions.
func WithErrorHandler(f func(error)) Option {
	return func(bc *Breadcrumbs) {
		bc.onError = f
	}
}
