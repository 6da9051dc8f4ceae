package fileman

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const helpText = `Enter - Open directory or file
Click - Open directory
Double click - Open file
⌫ Backspace, Alt+Up - Parent directory
Up on first row - Breadcrumbs
. - Show/hide hidden entries
F5, Ctrl+R - Refresh
Alt+~, Alt+H - Home directory
Alt+/ - Root directory
Alt+x - Exit
F1, Esc - Close this help`

func (nav *Navigator) showHelp() {
	modal, _ := nav.createHelpModal()
	nav.app.SetRoot(modal, true)
}

func (nav *Navigator) createHelpModal() (modal tview.Primitive, button *tview.Button) {
	closeHelp := func() {
		nav.app.SetRoot(nav, true)
		nav.app.SetFocus(nav.table)
	}
	closeOnKey := func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape || event.Key() == tcell.KeyF1 {
			closeHelp()
			return nil
		}
		return event
	}

	helpView := tview.NewTextView().
		SetText(helpText).
		SetTextAlign(tview.AlignLeft)
	helpView.SetBackgroundColor(tcell.ColorDarkBlue)

	button = tview.NewButton("Close").SetSelectedFunc(closeHelp)
	button.SetBackgroundColor(tcell.ColorDarkBlue)
	button.SetInputCapture(closeOnKey)

	helpFlex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(helpView, 0, 1, false).
		AddItem(button, 1, 0, true)
	helpFlex.SetBorder(true).
		SetTitle(" fileman - Help ").
		SetTitleAlign(tview.AlignCenter)
	helpFlex.SetBackgroundColor(tcell.ColorDarkBlue)

	modal = tview.NewGrid().
		SetColumns(0, 44, 0).
		SetRows(0, 14, 0).
		AddItem(helpFlex, 1, 1, 1, 1, 0, 0, true)
	return modal, button
}
