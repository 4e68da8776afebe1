package cli

import (
	"github.com/jlibs/phonenumber/internal/cli/ui"
)

// colorEnabled returns true if stderr is a terminal and color should be used.
func colorEnabled() bool {
	return ui.ColorEnabled()
}

// colorEnabledFd returns true if the given file descriptor supports color.
func colorEnabledFd(fd uintptr) bool {
	return ui.ColorEnabledFd(fd)
}

func bold(text string, color bool) string     { return ui.Paint(ui.StyleBold, text, color) }
func dim(text string, color bool) string      { return ui.Paint(ui.StyleDim, text, color) }
func cyan(text string, color bool) string     { return ui.Paint(ui.StyleCyan, text, color) }
func boldCyan(text string, color bool) string { return ui.Paint(ui.StyleBoldCyan, text, color) }
func green(text string, color bool) string    { return ui.Paint(ui.StyleCode, text, color) }
func red(text string, color bool) string      { return ui.Paint(ui.StyleError, text, color) }
