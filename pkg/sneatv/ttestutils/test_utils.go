package ttestutils

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

// ReadLine reads a full line from the screen, blank cells become spaces.
func ReadLine(screen tcell.Screen, y, width int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		str, _, _ := screen.Get(x, y)
		if str == "" {
			b.WriteRune(' ')
			continue
		}
		b.WriteString(str)
	}
	return b.String()
}

// ReadText reads the screen line by line with trailing spaces removed.
func ReadText(screen tcell.Screen) []string {
	width, height := screen.Size()
	lines := make([]string, height)
	for y := range height {
		lines[y] = strings.TrimRight(ReadLine(screen, y, width), " ")
	}
	return lines
}

// NewSimScreen creates a UTF-8 simulation screen finalized at test cleanup.
func NewSimScreen(t *testing.T, width, height int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("failed to init simulation screen: %v", err)
	}
	s.SetSize(width, height)
	t.Cleanup(s.Fini)
	return s
}
