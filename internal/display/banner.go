package display

import (
	"fmt"
	"os"

	"github.com/backmassage/photopress/internal/term"
)

// PrintBanner prints the ASCII art banner; uses Cyan if colors are enabled.
func PrintBanner() {
	if term.Enabled() {
		fmt.Fprint(os.Stdout, term.Cyan)
	}
	fmt.Fprint(os.Stdout, ` ____  _           _
|  _ \| |__   ___ | |_ ___  _ __  _ __ ___  ___ ___
| |_) | '_ \ / _ \| __/ _ \| '_ \| '__/ _ \/ __/ __|
|  __/| | | | (_) | || (_) | |_) | | |  __/\__ \__ \
|_|   |_| |_|\___/ \__\___/| .__/|_|  \___||___/___/
                           |_|
`)
	if term.Enabled() {
		fmt.Fprintln(os.Stdout, term.NC)
	}
}
