package prompts

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"bancoctl/internal/model"
)

// PromptPersonRefSelect picks one person from the lightweight
// projection. The labels show the raw backend values, as the statement
// page always did.
func PromptPersonRefSelect(refs []model.PersonRef) (model.PersonRef, error) {
	byID := make(map[int64]model.PersonRef, len(refs))
	var options []huh.Option[int64]
	for _, ref := range refs {
		byID[ref.ID] = ref
		options = append(options, huh.NewOption(fmt.Sprintf("%s - %s", ref.Name, ref.CPF), ref.ID))
	}

	id, err := PromptSelect("Select the person:", options)
	if err != nil {
		return model.PersonRef{}, err
	}
	return byID[id], nil
}

// PromptAmount prompts for a strictly positive decimal amount, kept as
// the typed string so the controller owns the parse.
func PromptAmount(initial string) (string, error) {
	return PromptInput("Amount:", initial, func(s string) error {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return fmt.Errorf("the amount must be a number")
		}
		if v <= 0 {
			return fmt.Errorf("the amount must be greater than zero")
		}
		return nil
	})
}

// PromptMovementType picks between deposit and withdrawal, returning the
// wire code.
func PromptMovementType() (string, error) {
	options := []huh.Option[string]{
		huh.NewOption("Deposit", model.TypeDeposit),
		huh.NewOption("Withdraw", model.TypeWithdrawal),
	}
	return PromptSelect("Deposit or withdraw?", options)
}
