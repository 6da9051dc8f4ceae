package crumbs

import (
	"errors"
	"testing"

	"github.com/filetug/fileman/pkg/sneatv/ttestutils"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"
)

func newPath(titles ...string) (*Breadcrumbs, *[]string) {
	var activated []string
	bc := NewBreadcrumbs()
	for _, title := range titles {
		bc.Push(NewBreadcrumb(title, func() error {
			activated = append(activated, title)
			return nil
		}))
	}
	return bc, &activated
}

func TestBreadcrumbs_Push_Clear(t *testing.T) {
	t.Parallel()
	bc, _ := newPath("Home", "Child")
	assert.Len(t, bc.Items(), 2)
	assert.True(t, bc.IsLastItemSelected())

	bc.Clear()
	assert.Empty(t, bc.Items())
	assert.NoError(t, bc.GoHome())
}

func TestBreadcrumbs_GoHome(t *testing.T) {
	t.Parallel()
	bc, activated := newPath("Home", "Child")
	assert.NoError(t, bc.GoHome())
	assert.Equal(t, []string{"Home"}, *activated)
}

func TestBreadcrumbs_FocusBlur(t *testing.T) {
	t.Parallel()
	bc, _ := newPath("A", "B", "C")

	bc.Focus(func(p tview.Primitive) {})
	assert.Equal(t, 1, bc.selectedItemIndex, "focus preselects the parent")

	bc.selectedItemIndex = 0
	bc.Focus(func(p tview.Primitive) {})
	assert.Equal(t, 0, bc.selectedItemIndex, "valid selection is kept")

	bc.Blur()
	assert.Equal(t, 2, bc.selectedItemIndex)

	single, _ := newPath("/")
	single.Focus(func(p tview.Primitive) {})
	assert.Equal(t, 0, single.selectedItemIndex)
}

func TestBreadcrumbs_Draw(t *testing.T) {
	t.Parallel()
	s := ttestutils.NewSimScreen(t, 30, 1)

	t.Run("default_separator", func(t *testing.T) {
		bc, _ := newPath("Home", "Child")
		bc.SetRect(0, 0, 30, 1)
		bc.Draw(s)
		s.Show()
		assert.Equal(t, "Home > Child", ttestutils.ReadText(s)[0])
	})

	t.Run("path_like", func(t *testing.T) {
		s.Clear()
		bc := NewBreadcrumbs(WithSeparator("/"), WithSeparatorStartIndex(2))
		for _, title := range []string{"/", "home", "user"} {
			bc.Push(NewBreadcrumb(title, nil))
		}
		bc.SetRect(0, 0, 30, 1)
		bc.Draw(s)
		s.Show()
		assert.Equal(t, "/home/user", ttestutils.ReadText(s)[0])
	})

	t.Run("truncated", func(t *testing.T) {
		s.Clear()
		bc, _ := newPath("verylongname", "next")
		bc.SetRect(0, 0, 5, 1)
		bc.Draw(s)
		s.Show()
		assert.Equal(t, "veryl", ttestutils.ReadText(s)[0])
	})

	t.Run("zero_width", func(t *testing.T) {
		bc, _ := newPath("A")
		bc.SetRect(0, 0, 0, 1)
		bc.Draw(s) // should return early
	})

	t.Run("focused_selection", func(t *testing.T) {
		s.Clear()
		bc, _ := newPath("A", "B")
		bc.Push(NewBreadcrumb("C", nil).WithColor(tcell.ColorRed))
		bc.SetRect(0, 0, 30, 1)
		bc.Focus(func(p tview.Primitive) {})
		bc.Draw(s)
		s.Show()
		_, style, _ := s.Get(4, 0) // "B"
		fg, bg, _ := style.Decompose()
		assert.Equal(t, tcell.ColorBlack, fg)
		assert.Equal(t, tcell.ColorYellow, bg)
	})
}

func TestBreadcrumbs_InputHandler(t *testing.T) {
	t.Parallel()
	bc, activated := newPath("Home", "Child", "Grandchild")
	next := tview.NewBox()
	prev := tview.NewBox()
	bc.SetNextFocusTarget(next)
	bc.SetPrevFocusTarget(prev)

	var focused tview.Primitive
	setFocus := func(p tview.Primitive) {
		focused = p
	}
	handler := bc.InputHandler()
	key := func(k tcell.Key) {
		handler(tcell.NewEventKey(k, 0, tcell.ModNone), setFocus)
	}

	key(tcell.KeyLeft)
	assert.Equal(t, 1, bc.selectedItemIndex)
	key(tcell.KeyLeft)
	key(tcell.KeyLeft)
	assert.Equal(t, 0, bc.selectedItemIndex, "stops at the first item")
	key(tcell.KeyRight)
	assert.Equal(t, 1, bc.selectedItemIndex)
	key(tcell.KeyEnd)
	key(tcell.KeyRight)
	assert.Equal(t, 2, bc.selectedItemIndex, "stops at the last item")
	key(tcell.KeyHome)
	key(tcell.KeyEnter)
	assert.Equal(t, []string{"Home"}, *activated)

	key(tcell.KeyTab)
	assert.Equal(t, next, focused)
	key(tcell.KeyBacktab)
	assert.Equal(t, prev, focused)
	focused = nil
	key(tcell.KeyDown)
	assert.Equal(t, next, focused)
	key(tcell.KeyUp)
	assert.Equal(t, prev, focused)

	key(tcell.KeyF1) // ignored
}

func TestBreadcrumbs_InputHandler_Empty(t *testing.T) {
	t.Parallel()
	bc := NewBreadcrumbs()
	handler := bc.InputHandler()
	handler(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), func(p tview.Primitive) {})
	handler(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), func(p tview.Primitive) {})
	assert.Equal(t, 0, bc.selectedItemIndex)
}

func TestBreadcrumbs_ActionError(t *testing.T) {
	t.Parallel()
	var got error
	expected := errors.New("permission denied")
	bc := NewBreadcrumbs(WithErrorHandler(func(err error) { got = err }))
	bc.Push(NewBreadcrumb("locked", func() error { return expected }))
	handler := bc.InputHandler()
	handler(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), func(p tview.Primitive) {})
	assert.Equal(t, expected, got)
}

func TestBreadcrumbs_MouseHandler(t *testing.T) {
	t.Parallel()
	// "Alpha > Beta > Gamma": Alpha 0-4, Beta 8-11, Gamma 15-19
	bc, activated := newPath("Alpha", "Beta", "Gamma")
	bc.SetRect(0, 0, 40, 1)
	handler := bc.MouseHandler()

	var focused tview.Primitive
	setFocus := func(p tview.Primitive) { focused = p }
	click := func(action tview.MouseAction, x, y int) bool {
		consumed, _ := handler(action, tcell.NewEventMouse(x, y, tcell.Button1, 0), setFocus)
		return consumed
	}

	t.Run("click_item", func(t *testing.T) {
		assert.True(t, click(tview.MouseLeftClick, 9, 0))
		assert.Equal(t, []string{"Beta"}, *activated)
		assert.Equal(t, 1, bc.selectedItemIndex)
	})

	t.Run("mouse_down_selects_only", func(t *testing.T) {
		assert.True(t, click(tview.MouseLeftDown, 16, 0))
		assert.Equal(t, 2, bc.selectedItemIndex)
		assert.Len(t, *activated, 1)
	})

	t.Run("click_separator_focuses", func(t *testing.T) {
		assert.True(t, click(tview.MouseLeftClick, 6, 0))
		assert.Equal(t, bc, focused)
		assert.Len(t, *activated, 1)
	})

	t.Run("outside", func(t *testing.T) {
		assert.False(t, click(tview.MouseLeftClick, 1, 3))
	})

	t.Run("other_action", func(t *testing.T) {
		assert.False(t, click(tview.MouseMove, 1, 0))
	})
}
