package prompts

import (
	"github.com/charmbracelet/huh"
)

// PromptInput prompts for a text value. The initial value pre-fills the
// field, which is how edit flows show the record being changed.
func PromptInput(title, initial string, validator func(string) error) (string, error) {
	value := initial

	input := huh.NewInput().
		Title(title).
		Value(&value)

	if validator != nil {
		input.Validate(validator)
	}

	err := input.Run()
	return value, err
}

// PromptSelect prompts for one of the given options.
func PromptSelect[T comparable](title string, options []huh.Option[T]) (T, error) {
	var selected T

	err := huh.NewSelect[T]().
		Title(title).
		Options(options...).
		Value(&selected).
		Height(10).
		Run()

	return selected, err
}

// PromptConfirm prompts for a yes/no answer.
func PromptConfirm(title string, defaultValue bool) (bool, error) {
	confirm := defaultValue

	err := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&confirm).
		Run()

	return confirm, err
}
