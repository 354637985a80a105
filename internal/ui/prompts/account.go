package prompts

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"bancoctl/internal/format"
	"bancoctl/internal/model"
)

// PromptOwnerSelect picks the person an account belongs to.
func PromptOwnerSelect(people []model.PersonWithAccounts) (model.PersonWithAccounts, error) {
	byID := make(map[int64]model.PersonWithAccounts, len(people))
	var options []huh.Option[int64]
	for _, p := range people {
		byID[p.ID] = p
		options = append(options, huh.NewOption(personLabel(p.Name, p.CPF), p.ID))
	}

	id, err := PromptSelect("Select the account owner:", options)
	if err != nil {
		return model.PersonWithAccounts{}, err
	}
	return byID[id], nil
}

// PromptNestedAccountSelect flattens the joined list and picks one
// account, returning its owner as well.
func PromptNestedAccountSelect(title string, people []model.PersonWithAccounts) (int64, model.NestedAccount, error) {
	type entry struct {
		personID int64
		account  model.NestedAccount
	}
	byAccountID := make(map[int64]entry)
	var options []huh.Option[int64]
	for _, p := range people {
		for _, acc := range p.Accounts {
			byAccountID[acc.ID] = entry{personID: p.ID, account: acc}
			label := fmt.Sprintf("%s - account %s", personLabel(p.Name, p.CPF), acc.Number)
			options = append(options, huh.NewOption(label, acc.ID))
		}
	}
	if len(options) == 0 {
		return 0, model.NestedAccount{}, fmt.Errorf("no accounts registered yet")
	}

	id, err := PromptSelect(title, options)
	if err != nil {
		return 0, model.NestedAccount{}, err
	}
	picked := byAccountID[id]
	return picked.personID, picked.account, nil
}

// PromptAccountNumber prompts for a digits-only account number.
func PromptAccountNumber(initial string) (string, error) {
	return PromptInput("Account number:", initial, func(s string) error {
		if s == "" {
			return fmt.Errorf("the account number is required")
		}
		for _, r := range s {
			if r < '0' || r > '9' {
				return fmt.Errorf("the account number must contain digits only")
			}
		}
		return nil
	})
}

// PromptAccountSelect picks one of the selected person's accounts,
// showing the current balance next to each number.
func PromptAccountSelect(accounts []model.Account) (model.Account, error) {
	byID := make(map[int64]model.Account, len(accounts))
	var options []huh.Option[int64]
	for _, acc := range accounts {
		byID[acc.ID] = acc
		label := fmt.Sprintf("Account %s - balance %s", acc.Number, format.Amount(acc.Balance))
		options = append(options, huh.NewOption(label, acc.ID))
	}

	id, err := PromptSelect("Select the account:", options)
	if err != nil {
		return model.Account{}, err
	}
	return byID[id], nil
}
