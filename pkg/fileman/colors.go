package fileman

import (
	"path/filepath"
	"strings"

	"github.com/filetug/fileman/pkg/files"
	"github.com/gdamore/tcell/v2"
)

var extColors = map[string]tcell.Color{
	"exe":  tcell.ColorRed,
	"go":   tcell.ColorAqua,
	"c":    tcell.ColorDodgerBlue,
	"h":    tcell.ColorDodgerBlue,
	"cpp":  tcell.ColorDodgerBlue,
	"js":   tcell.ColorYellow,
	"ts":   tcell.ColorDeepSkyBlue,
	"html": tcell.ColorOrangeRed,
	"css":  tcell.ColorViolet,
	"json": tcell.ColorGold,
	"yaml": tcell.ColorLightYellow,
	"yml":  tcell.ColorLightYellow,
	"toml": tcell.ColorLightYellow,
	"md":   tcell.ColorBisque,
	"py":   tcell.ColorLightGreen,
	"rs":   tcell.ColorOrange,
	"sh":   tcell.ColorGreen,
	"log":  tcell.ColorRosyBrown,
	"jpg":  tcell.ColorMediumPurple,
	"jpeg": tcell.ColorMediumPurple,
	"png":  tcell.ColorMediumPurple,
	"gif":  tcell.ColorMediumPurple,
	"mp4":  tcell.ColorLightSalmon,
	"zip":  tcell.ColorIndianRed,
	"gz":   tcell.ColorIndianRed,
	"pdf":  tcell.ColorTomato,
}

// colorByName picks a color by the lowercase file extension.
func colorByName(name string) tcell.Color {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if color, ok := extColors[ext]; ok {
		return color
	}
	return Style.FileColor
}

func entryColor(entry files.Entry) tcell.Color {
	if entry.IsDir {
		return Style.DirColor
	}
	return colorByName(entry.Name)
}
