package crumbs

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/tview"
)

const defaultSeparator = " > "

var (
	itemStyle      = tcell.StyleDefault.Foreground(tcell.ColorLightSkyBlue)
	lastItemStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	selectedStyle  = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow)
	separatorStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// Breadcrumbs shows a path as a row of clickable segments.
type Breadcrumbs struct {
	*tview.Box
	items []*Breadcrumb

	selectedItemIndex int
	separator         string
	separatorStartIdx int

	nextFocusTarget tview.Primitive
	prevFocusTarget tview.Primitive

	onError func(error)
}

func NewBreadcrumbs(options ...Option) *Breadcrumbs {
	bc := &Breadcrumbs{
		Box:       tview.NewBox(),
		separator: defaultSeparator,
	}
	for _, option := range options {
		option(bc)
	}
	return bc
}

// Push appends an item and selects it.
func (bc *Breadcrumbs) Push(item *Breadcrumb) {
	bc.items = append(bc.items, item)
	bc.selectedItemIndex = len(bc.items) - 1
}

func (bc *Breadcrumbs) Clear() {
	bc.items = nil
	bc.selectedItemIndex = 0
}

func (bc *Breadcrumbs) Items() []*Breadcrumb {
	return bc.items
}

// GoHome activates the first item.
func (bc *Breadcrumbs) GoHome() error {
	if len(bc.items) == 0 {
		return nil
	}
	return bc.items[0].Activate()
}

func (bc *Breadcrumbs) SetNextFocusTarget(p tview.Primitive) {
	bc.nextFocusTarget = p
}

func (bc *Breadcrumbs) SetPrevFocusTarget(p tview.Primitive) {
	bc.prevFocusTarget = p
}

func (bc *Breadcrumbs) IsLastItemSelected() bool {
	return bc.selectedItemIndex == len(bc.items)-1
}

// Focus preselects the parent of the current item, the last item is where we already are.
func (bc *Breadcrumbs) Focus(delegate func(p tview.Primitive)) {
	if bc.selectedItemIndex < 0 || bc.selectedItemIndex >= len(bc.items)-1 {
		bc.selectedItemIndex = max(len(bc.items)-2, 0)
	}
	bc.Box.Focus(delegate)
}

func (bc *Breadcrumbs) Blur() {
	bc.selectedItemIndex = max(len(bc.items)-1, 0)
	bc.Box.Blur()
}

type span struct {
	start, end int // item label occupies [start, end)
	sepStart   int // separator drawn before the label, -1 when none
}

// layout places items starting at x. Items that start beyond maxX are left out.
func (bc *Breadcrumbs) layout(x, maxX int) []span {
	spans := make([]span, 0, len(bc.items))
	cursorX := x
	for i, item := range bc.items {
		if cursorX >= maxX {
			break
		}
		s := span{sepStart: -1}
		if i > 0 && i >= bc.separatorStartIdx {
			s.sepStart = cursorX
			cursorX += runewidth.StringWidth(bc.separator)
		}
		s.start = cursorX
		cursorX += runewidth.StringWidth(item.Title())
		s.end = cursorX
		spans = append(spans, s)
	}
	return spans
}

func (bc *Breadcrumbs) Draw(screen tcell.Screen) {
	bc.DrawForSubclass(screen, bc)
	x, y, width, height := bc.GetInnerRect()
	if width <= 0 || height <= 0 {
		return
	}
	maxX := x + width
	hasFocus := bc.HasFocus()
	for i, s := range bc.layout(x, maxX) {
		if s.sepStart >= 0 {
			printText(screen, bc.separator, s.sepStart, y, maxX, separatorStyle)
		}
		item := bc.items[i]
		style := itemStyle
		if color := item.Color(); color != tcell.ColorDefault {
			style = style.Foreground(color)
		}
		switch {
		case hasFocus && i == bc.selectedItemIndex:
			style = selectedStyle
		case i == len(bc.items)-1:
			style = lastItemStyle
		}
		printText(screen, item.Title(), s.start, y, maxX, style)
	}
}

func printText(screen tcell.Screen, text string, x, y, maxX int, style tcell.Style) {
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if x+w > maxX {
			return
		}
		screen.SetContent(x, y, r, nil, style)
		x += w
	}
}

func (bc *Breadcrumbs) activate(i int) {
	if i < 0 || i >= len(bc.items) {
		return
	}
	if err := bc.items[i].Activate(); err != nil && bc.onError != nil {
		bc.onError(err)
	}
}

func (bc *Breadcrumbs) InputHandler() func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
	return bc.WrapInputHandler(func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
		switch event.Key() {
		case tcell.KeyTab, tcell.KeyDown:
			setFocus(bc.nextFocusTarget)
			return
		case tcell.KeyBacktab, tcell.KeyUp:
			if bc.prevFocusTarget != nil {
				setFocus(bc.prevFocusTarget)
			}
			return
		}
		if len(bc.items) == 0 {
			return
		}
		switch event.Key() {
		case tcell.KeyLeft:
			if bc.selectedItemIndex > 0 {
				bc.selectedItemIndex--
			}
		case tcell.KeyRight:
			if bc.selectedItemIndex < len(bc.items)-1 {
				bc.selectedItemIndex++
			}
		case tcell.KeyHome:
			bc.selectedItemIndex = 0
		case tcell.KeyEnd:
			bc.selectedItemIndex = len(bc.items) - 1
		case tcell.KeyEnter:
			bc.activate(bc.selectedItemIndex)
		default:
		}
	})
}

func (bc *Breadcrumbs) MouseHandler() func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
	return bc.WrapMouseHandler(func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
		if action != tview.MouseLeftClick && action != tview.MouseLeftDown {
			return false, nil
		}
		x, y := event.Position()
		if !bc.InRect(x, y) {
			return false, nil
		}
		innerX, _, width, _ := bc.GetInnerRect()
		for i, s := range bc.layout(innerX, innerX+width) {
			if x >= s.start && x < s.end {
				bc.selectedItemIndex = i
				if action == tview.MouseLeftClick {
					bc.activate(i)
				}
				return true, nil
			}
		}
		if setFocus != nil {
			setFocus(bc)
		}
		return true, nil
	})
}
