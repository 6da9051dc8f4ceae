package fileman

import (
	"github.com/gdamore/tcell/v2"
)

type Styles struct {
	TableHeaderColor tcell.Color
	DirColor         tcell.Color
	FileColor        tcell.Color
	ErrorColor       tcell.Color
	EmptyColor       tcell.Color

	HotkeyColor tcell.Color
	MenuColor   tcell.Color
	StatusColor tcell.Color

	FocusedSelectedStyle tcell.Style
	BlurredSelectedStyle tcell.Style
}

var Style = Styles{
	TableHeaderColor: tcell.ColorWhiteSmoke,
	DirColor:         tcell.ColorLightSkyBlue,
	FileColor:        tcell.ColorWhiteSmoke,
	ErrorColor:       tcell.ColorOrangeRed,
	EmptyColor:       tcell.ColorGray,

	HotkeyColor: tcell.ColorWhite,
	MenuColor:   tcell.ColorSlateGray,
	StatusColor: tcell.ColorLightGray,

	FocusedSelectedStyle: tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorCornflowerBlue),
	BlurredSelectedStyle: tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkSlateGray),
}
