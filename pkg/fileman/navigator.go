package fileman

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/filetug/fileman/pkg/browser"
	"github.com/filetug/fileman/pkg/filekind"
	"github.com/filetug/fileman/pkg/files"
	"github.com/filetug/fileman/pkg/fsutils"
	"github.com/filetug/fileman/pkg/opener"
	"github.com/filetug/fileman/pkg/sneatv"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/sirupsen/logrus"
)

// FileOpener launches a file with the OS default handler.
type FileOpener interface {
	Open(ctx context.Context, path string) error
}

type Options struct {
	StartDir   string
	ShowHidden bool
	Mouse      bool
	Log        logrus.FieldLogger
	Opener     FileOpener
}

// Navigator is the single listing: header, entries table and bottom bar.
type Navigator struct {
	*tview.Flex
	app        App
	log        logrus.FieldLogger
	fileOpener FileOpener
	reader     *files.Reader
	browser    *browser.Browser

	header *header
	table  *tview.Table
	frame  *sneatv.Boxed
	rows   *EntryRows
	bottom *bottom

	shownDir    string
	clickedPath string
}

var osUserHomeDir = os.UserHomeDir

func NewNavigator(app App, o Options) *Navigator {
	log := o.Log
	if log == nil {
		log = logrus.StandardLogger()
	}
	nav := &Navigator{
		app:        app,
		log:        log,
		fileOpener: o.Opener,
		reader:     &files.Reader{ShowHidden: o.ShowHidden},
		rows:       &EntryRows{},
	}
	if nav.fileOpener == nil {
		nav.fileOpener = opener.New(log)
	}

	nav.header = newHeader(nav.up, nav.showError)

	nav.table = tview.NewTable().
		SetContent(nav.rows).
		SetFixed(1, 0).
		SetSelectable(true, false).
		SetSelectionChangedFunc(nav.selectionChanged)
	nav.table.SetSelectedStyle(Style.FocusedSelectedStyle)
	nav.table.SetInputCapture(nav.tableInputCapture)
	nav.table.SetMouseCapture(nav.tableMouseCapture)
	nav.table.SetFocusFunc(func() {
		nav.table.SetSelectedStyle(Style.FocusedSelectedStyle)
	})
	nav.table.SetBlurFunc(func() {
		nav.table.SetSelectedStyle(Style.BlurredSelectedStyle)
	})
	nav.header.crumbs.SetNextFocusTarget(nav.table)
	nav.frame = sneatv.NewBoxed(nav.table, sneatv.WithFooter(nav.footerText))

	nav.bottom = newBottom(nav)

	nav.Flex = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(nav.header, 1, 0, false).
		AddItem(nav.frame, 0, 1, true).
		AddItem(nav.bottom, 2, 0, false)
	nav.SetInputCapture(nav.inputCapture)

	nav.browser = browser.New(nav.reader, o.StartDir,
		browser.WithLogger(log),
		browser.OnChange(nav.render),
	)
	return nav
}

// SetupApp puts a navigator at the root of app.
func SetupApp(app App, o Options) *Navigator {
	nav := NewNavigator(app, o)
	app.EnableMouse(o.Mouse)
	app.SetRoot(nav, true)
	app.SetFocus(nav.table)
	return nav
}

// Dir is the directory currently listed.
func (nav *Navigator) Dir() string {
	return nav.browser.Dir()
}

// render rebuilds the view after every directory read.
func (nav *Navigator) render(b *browser.Browser) {
	selectName := nav.selectedName()
	if dir := b.Dir(); dir != nav.shownDir {
		selectName = ""
		if nav.shownDir != "" && filepath.Dir(nav.shownDir) == dir {
			// Coming up from a child, keep the cursor on it.
			selectName = filepath.Base(nav.shownDir)
		}
		nav.shownDir = dir
	}
	nav.clickedPath = ""
	nav.rows.set(b.Entries(), b.Err())
	nav.header.setPath(b.Crumbs(), b.CanGoUp(), nav.goTo)
	nav.table.ScrollToBeginning()
	nav.table.Select(nav.rowOf(selectName), 0)
}

// footerText is the number of listed entries, shown under the table.
func (nav *Navigator) footerText() string {
	if nav.rows.Err != nil {
		return ""
	}
	return fsutils.FormatItemCount(len(nav.rows.Entries))
}

func (nav *Navigator) selectedName() string {
	row, _ := nav.table.GetSelection()
	if entry, ok := nav.rows.EntryAt(row); ok {
		return entry.Name
	}
	return ""
}

// rowOf returns the table row of the named entry, or the first row.
func (nav *Navigator) rowOf(name string) int {
	if name != "" {
		for i, entry := range nav.rows.Entries {
			if entry.Name == name {
				return i + 1
			}
		}
	}
	return 1
}

func (nav *Navigator) selectionChanged(row, _ int) {
	entry, ok := nav.rows.EntryAt(row)
	if !ok {
		if nav.rows.Err != nil {
			nav.bottom.setError(nav.rows.Err)
		} else {
			nav.bottom.setStatus("")
		}
		return
	}
	nav.bottom.setStatus(describeEntry(entry))
}

func describeEntry(entry files.Entry) string {
	kind := "Directory"
	if !entry.IsDir {
		kind = filekind.Describe(entry.Name)
	}
	return fmt.Sprintf("%s: %s, %s", tview.Escape(entry.Name), kind, entry.SizeText())
}

func (nav *Navigator) goTo(dir string) {
	nav.browser.GoTo(dir)
}

func (nav *Navigator) up() {
	nav.browser.Up()
}

func (nav *Navigator) refresh() {
	nav.browser.Refresh()
}

func (nav *Navigator) goHome() {
	home, err := osUserHomeDir()
	if err != nil {
		nav.showError(fmt.Errorf("failed to get home directory: %w", err))
		return
	}
	nav.goTo(home)
}

func (nav *Navigator) goRoot() {
	dir := nav.browser.Dir()
	nav.goTo(filepath.VolumeName(dir) + string(filepath.Separator))
}

func (nav *Navigator) toggleHidden() {
	nav.reader.ShowHidden = !nav.reader.ShowHidden
	nav.log.WithField("show_hidden", nav.reader.ShowHidden).Debug("toggled hidden entries")
	nav.refresh()
}

func (nav *Navigator) exit() {
	nav.app.Stop()
}

// activate enters a directory or opens a file.
func (nav *Navigator) activate(entry files.Entry) {
	if entry.IsDir {
		nav.browser.Enter(entry)
		return
	}
	nav.open(entry)
}

func (nav *Navigator) activateSelected() {
	row, _ := nav.table.GetSelection()
	if entry, ok := nav.rows.EntryAt(row); ok {
		nav.activate(entry)
	}
}

func (nav *Navigator) open(entry files.Entry) {
	path := nav.browser.EntryPath(entry)
	if err := nav.fileOpener.Open(context.Background(), path); err != nil {
		nav.showError(err)
		return
	}
	nav.bottom.setStatus("Opened " + tview.Escape(path))
}

func (nav *Navigator) showError(err error) {
	nav.log.WithError(err).Error("action failed")
	nav.bottom.setError(err)
}

func (nav *Navigator) inputCapture(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyF1:
		nav.showHelp()
		return nil
	case tcell.KeyF5, tcell.KeyCtrlR:
		nav.refresh()
		return nil
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		nav.up()
		return nil
	case tcell.KeyUp:
		if event.Modifiers()&tcell.ModAlt != 0 {
			nav.up()
			return nil
		}
	case tcell.KeyRune:
		if event.Modifiers()&tcell.ModAlt != 0 {
			switch event.Rune() {
			case 'x', 'X':
				nav.exit()
				return nil
			case '~', 'h', 'H':
				nav.goHome()
				return nil
			case '/':
				nav.goRoot()
				return nil
			}
			return event
		}
		if event.Rune() == '.' {
			nav.toggleHidden()
			return nil
		}
	default:
	}
	return event
}

func (nav *Navigator) tableInputCapture(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyEnter:
		nav.activateSelected()
		return nil
	case tcell.KeyUp:
		if row, _ := nav.table.GetSelection(); row <= 1 {
			nav.app.SetFocus(nav.header.crumbs)
			return nil
		}
	default:
	}
	return event
}

// tableMouseCapture enters a directory on click and opens a file on double click.
func (nav *Navigator) tableMouseCapture(action tview.MouseAction, event *tcell.EventMouse) (tview.MouseAction, *tcell.EventMouse) {
	if action != tview.MouseLeftClick && action != tview.MouseLeftDoubleClick {
		return action, event
	}
	x, y := event.Position()
	if !nav.table.InRect(x, y) {
		return action, event
	}
	row, _ := nav.table.CellAt(x, y)
	entry, ok := nav.rows.EntryAt(row)
	if !ok {
		return action, event
	}
	path := nav.browser.EntryPath(entry)
	switch action {
	case tview.MouseLeftClick:
		if entry.IsDir {
			nav.browser.Enter(entry)
			return tview.MouseConsumed, nil
		}
		nav.clickedPath = path
	case tview.MouseLeftDoubleClick:
		// The first click of a double click on a directory already left it.
		if !entry.IsDir && nav.clickedPath == path {
			nav.table.Select(row, 0)
			nav.open(entry)
			return tview.MouseConsumed, nil
		}
	default:
	}
	return action, event
}
