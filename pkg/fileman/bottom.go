package fileman

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"
)

// MenuItem is a clickable hotkey hint in the bottom bar.
type MenuItem struct {
	Title   string
	HotKeys []string
	Action  func()
	region  string
}

// bottom shows the status of the selected entry above the hotkey menu.
type bottom struct {
	*tview.Flex
	status *tview.TextView
	menu   *tview.TextView

	keyMenuItems []MenuItem
	altMenuItems []MenuItem
}

func newBottom(nav *Navigator) *bottom {
	b := &bottom{
		Flex: tview.NewFlex().SetDirection(tview.FlexRow),
		status: tview.NewTextView().
			SetDynamicColors(true).
			SetTextColor(Style.StatusColor),
		menu: tview.NewTextView().
			SetDynamicColors(true).
			SetRegions(true).
			SetTextColor(Style.MenuColor),
	}
	b.menu.SetHighlightedFunc(b.highlighted)
	b.AddItem(b.status, 1, 0, false)
	b.AddItem(b.menu, 1, 0, false)

	b.keyMenuItems = b.getKeyMenuItems(nav)
	b.altMenuItems = b.getAltMenuItems(nav)
	b.render()
	return b
}

func (b *bottom) render() {
	var sb strings.Builder
	sb.WriteString(b.renderMenuItems(b.keyMenuItems))
	sb.WriteString(" | [DarkGray]Alt[-]+: ")
	sb.WriteString(b.renderMenuItems(b.altMenuItems))
	b.menu.SetText(sb.String())
}

func (b *bottom) renderMenuItems(menuItems []MenuItem) string {
	const separator = "┊"
	texts := make([]string, 0, len(menuItems))
	for _, mi := range menuItems {
		title := tview.Escape(mi.Title)
		for _, key := range mi.HotKeys {
			hotkeyText := fmt.Sprintf("[%s]%s[-]", Style.HotkeyColor.Name(), key)
			title = strings.Replace(title, key, hotkeyText, 1)
		}
		texts = append(texts, fmt.Sprintf(`["%s"]%s[""]`, mi.region, title))
	}
	return strings.Join(texts, separator)
}

// highlighted runs the action of a clicked menu item.
func (b *bottom) highlighted(added, _, _ []string) {
	if len(added) == 0 {
		return
	}
	region := added[0]
	// Clear the highlight so the same item can be clicked again.
	b.menu.Highlight()
	for _, items := range [][]MenuItem{b.keyMenuItems, b.altMenuItems} {
		for _, mi := range items {
			if mi.region == region && mi.Action != nil {
				mi.Action()
				return
			}
		}
	}
}

func (b *bottom) getKeyMenuItems(nav *Navigator) []MenuItem {
	return []MenuItem{
		{Title: "F1 Help", HotKeys: []string{"F1"}, Action: nav.showHelp, region: "help"},
		{Title: "Enter Open", HotKeys: []string{"Enter"}, Action: nav.activateSelected, region: "open"},
		{Title: "⌫ Up", HotKeys: []string{"⌫"}, Action: nav.up, region: "up"},
		{Title: ". Hidden", HotKeys: []string{"."}, Action: nav.toggleHidden, region: "hidden"},
		{Title: "F5 Refresh", HotKeys: []string{"F5"}, Action: nav.refresh, region: "refresh"},
	}
}

func (b *bottom) getAltMenuItems(nav *Navigator) []MenuItem {
	return []MenuItem{
		{Title: "Exit", HotKeys: []string{"x"}, Action: nav.exit, region: "exit"},
		{Title: "~Home", HotKeys: []string{"~"}, Action: nav.goHome, region: "home"},
		{Title: "/root", HotKeys: []string{"/"}, Action: nav.goRoot, region: "root"},
	}
}

func (b *bottom) setStatus(text string) {
	b.status.SetTextColor(Style.StatusColor)
	b.status.SetText(text)
}

func (b *bottom) setError(err error) {
	b.status.SetTextColor(Style.ErrorColor)
	b.status.SetText(tview.Escape(err.Error()))
}

// statusText returns the status line currently shown.
func (b *bottom) statusText() string {
	return b.status.GetText(true)
}
