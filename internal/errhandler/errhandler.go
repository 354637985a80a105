package errhandler

import (
	"errors"
	"os"
	"strings"
	"unicode"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"

	"bancoctl/internal/controller"
)

// Report renders an error the way the operator should see it. An
// interrupted or aborted prompt ends the run quietly, a validation
// problem is a warning (the form was kept, just retry), everything else
// is an error line.
func Report(err error) {
	if err == nil {
		return
	}

	if errors.Is(err, terminal.InterruptErr) ||
		errors.Is(err, huh.ErrUserAborted) ||
		strings.Contains(err.Error(), "interrupt") {
		pterm.Warning.Println("Operation cancelled")
		os.Exit(0)
	}

	var verr *controller.ValidationError
	if errors.As(err, &verr) {
		pterm.Warning.Println(capitalize(verr.Msg))
		return
	}

	pterm.Error.Println(capitalize(err.Error()))
}

func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
