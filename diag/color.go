package diag

import (
	"io"
	"os"

	"github.com/gookit/color"
	"golang.org/x/term"
)

// Color functions used when printing severity labels
var levelColors = map[Level]func(a ...any) string{
	LevelDebug: color.Cyan.Sprint,
	LevelInfo:  color.Green.Sprint,
	LevelWarn:  color.Yellow.Sprint,
	LevelError: color.Red.Sprint,
	LevelFatal: color.FgLightRed.Sprint,
	LevelAny:   color.FgLightBlue.Sprint,
}

// colorLabel renders label in the level's color. Unrecognised levels share
// the LevelAny color.
func colorLabel(level Level, label string) string {
	sprint, ok := levelColors[level]
	if !ok {
		sprint = levelColors[LevelAny]
	}
	return sprint(label)
}

// isTerminal reports whether w is an interactive terminal. Buffers, pipes and
// files get plain output.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
