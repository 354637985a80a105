package prompts

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"bancoctl/internal/controller"
	"bancoctl/internal/format"
	"bancoctl/internal/model"
)

func personLabel(name, cpf string) string {
	return fmt.Sprintf("%s - %s", format.CapitalizeWords(name), format.MaskCPF(cpf))
}

// PromptPersonMode asks whether to register a new person or edit a
// listed one. It returns the chosen record and edit=false for a fresh
// registration.
func PromptPersonMode(people []model.Person) (model.Person, bool, error) {
	byID := make(map[int64]model.Person, len(people))
	options := []huh.Option[int64]{huh.NewOption("New registration", int64(0))}
	for _, p := range people {
		byID[p.ID] = p
		options = append(options, huh.NewOption(personLabel(p.Name, p.CPF), p.ID))
	}

	id, err := PromptSelect("Register a new person or edit an existing one?", options)
	if err != nil {
		return model.Person{}, false, err
	}
	if id == 0 {
		return model.Person{}, false, nil
	}
	return byID[id], true, nil
}

// PromptPersonSelect picks one person from the list.
func PromptPersonSelect(title string, people []model.Person) (model.Person, error) {
	byID := make(map[int64]model.Person, len(people))
	var options []huh.Option[int64]
	for _, p := range people {
		byID[p.ID] = p
		options = append(options, huh.NewOption(personLabel(p.Name, p.CPF), p.ID))
	}

	id, err := PromptSelect(title, options)
	if err != nil {
		return model.Person{}, err
	}
	return byID[id], nil
}

// PromptPersonForm walks through the three person fields. The CPF input
// accepts masked or bare digits and re-masks as the controller would
// display it.
func PromptPersonForm(f controller.PersonForm) (controller.PersonForm, error) {
	name, err := PromptInput("Name:", f.Name, func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("the name is required")
		}
		return nil
	})
	if err != nil {
		return f, err
	}

	cpf, err := PromptInput("CPF:", f.CPF, func(s string) error {
		if len(format.UnmaskCPF(s)) != 11 {
			return fmt.Errorf("the CPF must have exactly 11 digits")
		}
		return nil
	})
	if err != nil {
		return f, err
	}

	address, err := PromptInput("Address:", f.Address, func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("the address is required")
		}
		return nil
	})
	if err != nil {
		return f, err
	}

	f.Name = format.CapitalizeWords(name)
	f.CPF = format.MaskCPF(cpf)
	f.Address = address
	return f, nil
}
