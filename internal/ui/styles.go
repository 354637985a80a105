package ui

import (
	"fmt"

	"github.com/pterm/pterm"
)

func PrintTitle(format string, a ...interface{}) {
	style := pterm.NewStyle(pterm.FgCyan, pterm.Bold)

	text := fmt.Sprintf(format, a...)

	style.Printf("# %s   \n", text)
}

func Separator() {
	pterm.Println(pterm.Gray("---------------------------------------------------------"))
}
