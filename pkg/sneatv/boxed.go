package sneatv

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

var (
	focusedStyle = tcell.StyleDefault.Foreground(tcell.ColorCornflowerBlue).Background(tcell.ColorBlack)
	blurredStyle = tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorBlack)
)

type BoxedContent interface {
	tview.Primitive
	GetTitle() string
	SetBorderPadding(top, bottom, left, right int) *tview.Box
}

type borderChars struct {
	horizontal, vertical    rune
	topLeft, topRight       rune
	bottomLeft, bottomRight rune
	labelStart, labelEnd    rune
}

var (
	focusedBorder = borderChars{'═', '│', '╒', '╕', '╘', '╛', '╡', '╞'}
	blurredBorder = borderChars{'─', '│', '┌', '┐', '└', '┘', '┤', '├'}
)

// Boxed frames its content. The title is centered on the top line, the footer
// on the bottom one, and a double line marks the focused box.
type Boxed struct {
	BoxedContent
	footer func() string
}

type BoxOption func(*Boxed)

// WithFooter sets a func evaluated on every draw.
func WithFooter(footer func() string) BoxOption {
	return func(b *Boxed) {
		b.footer = footer
	}
}

func NewBoxed(inner BoxedContent, o ...BoxOption) *Boxed {
	b := &Boxed{
		BoxedContent: inner,
	}
	for _, option := range o {
		option(b)
	}
	inner.SetBorderPadding(1, 1, 1, 1)
	return b
}

func (b *Boxed) Draw(screen tcell.Screen) {
	b.BoxedContent.Draw(screen)
	b.drawBorders(screen)
}

func (b *Boxed) drawBorders(screen tcell.Screen) {
	x, y, width, height := b.GetRect()
	if width < 2 || height < 2 {
		return
	}
	style, chars := blurredStyle, blurredBorder
	if b.HasFocus() {
		style, chars = focusedStyle, focusedBorder
	}
	right, bottom := x+width-1, y+height-1
	for i := x + 1; i < right; i++ {
		screen.SetContent(i, y, chars.horizontal, nil, style)
		screen.SetContent(i, bottom, chars.horizontal, nil, style)
	}
	for j := y + 1; j < bottom; j++ {
		screen.SetContent(x, j, chars.vertical, nil, style)
		screen.SetContent(right, j, chars.vertical, nil, style)
	}
	screen.SetContent(x, y, chars.topLeft, nil, style)
	screen.SetContent(right, y, chars.topRight, nil, style)
	screen.SetContent(x, bottom, chars.bottomLeft, nil, style)
	screen.SetContent(right, bottom, chars.bottomRight, nil, style)

	drawLabel(screen, b.GetTitle(), x, y, width, chars, style)
	if b.footer != nil {
		drawLabel(screen, b.footer(), x, bottom, width, chars, style)
	}
}

// drawLabel centers label on a border line between bracket chars.
// Labels that do not fit are left out.
func drawLabel(screen tcell.Screen, label string, x, y, width int, chars borderChars, style tcell.Style) {
	if label == "" {
		return
	}
	labelWidth := tview.TaggedStringWidth(label)
	if labelWidth > width-4 {
		return
	}
	start := x + (width-labelWidth)/2
	screen.SetContent(start-1, y, chars.labelStart, nil, style)
	tview.Print(screen, label, start, y, labelWidth, tview.AlignLeft, tcell.ColorGhostWhite)
	screen.SetContent(start+labelWidth, y, chars.labelEnd, nil, style)
}
