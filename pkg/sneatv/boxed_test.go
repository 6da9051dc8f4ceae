package sneatv

import (
	"testing"

	"github.com/filetug/fileman/pkg/sneatv/ttestutils"
	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"
)

func TestNewBoxed(t *testing.T) {
	t.Parallel()
	inner := tview.NewBox()
	boxed := NewBoxed(inner, WithFooter(func() string { return "footer" }))
	assert.NotNil(t, boxed)
	assert.Equal(t, "footer", boxed.footer())

	inner.SetRect(0, 0, 10, 5)
	x, y, width, height := inner.GetInnerRect()
	assert.Equal(t, []int{1, 1, 8, 3}, []int{x, y, width, height}, "content is padded inside the frame")
}

func TestBoxed_Draw(t *testing.T) {
	t.Parallel()
	screen := ttestutils.NewSimScreen(t, 20, 4)
	boxed := NewBoxed(tview.NewBox().SetTitle("src"), WithFooter(func() string { return "3 items" }))
	boxed.SetRect(0, 0, 20, 4)

	boxed.Blur()
	boxed.Draw(screen)
	screen.Show()
	lines := ttestutils.ReadText(screen)
	assert.Equal(t, "┌──────┤src├───────┐", lines[0])
	assert.Equal(t, "│                  │", lines[1])
	assert.Equal(t, "└────┤3 items├─────┘", lines[3])

	boxed.Focus(func(p tview.Primitive) {})
	boxed.Draw(screen)
	screen.Show()
	lines = ttestutils.ReadText(screen)
	assert.Equal(t, "╒══════╡src╞═══════╕", lines[0])
	assert.Equal(t, "╘════╡3 items╞═════╛", lines[3])
}

func TestBoxed_DrawTooSmall(t *testing.T) {
	t.Parallel()
	screen := ttestutils.NewSimScreen(t, 6, 3)
	boxed := NewBoxed(tview.NewBox().SetTitle("a long title"))
	boxed.SetRect(0, 0, 6, 3)
	boxed.Draw(screen)
	screen.Show()
	assert.Equal(t, "┌────┐", ttestutils.ReadText(screen)[0], "title that does not fit is left out")

	boxed.SetRect(0, 0, 1, 1)
	boxed.Draw(screen) // no room for a frame
}
