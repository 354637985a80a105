package controller

import (
	"context"
	"strings"

	"bancoctl/internal/format"
	"bancoctl/internal/model"
)

// PersonGateway is the slice of the backend client the person controller
// consumes.
type PersonGateway interface {
	ListPeople(ctx context.Context) ([]model.Person, error)
	CreatePerson(ctx context.Context, p model.Person) error
	UpdatePerson(ctx context.Context, p model.Person) error
	DeletePerson(ctx context.Context, id int64) error
}

// PersonForm mirrors the register/edit form. CPF is held masked for
// display; Save strips the mask before anything touches the wire.
type PersonForm struct {
	ID      int64
	Name    string
	CPF     string
	Address string
}

// Person drives the person page: one list, one create/edit form and one
// pending edit/remove selection pair. All mutations re-fetch the list so
// the view always reflects server truth.
type Person struct {
	gw      PersonGateway
	confirm Confirmer

	people   []model.Person
	form     PersonForm
	editID   int64
	removeID int64
}

func NewPerson(gw PersonGateway, confirm Confirmer) *Person {
	return &Person{gw: gw, confirm: confirm}
}

func (c *Person) People() []model.Person { return c.people }

func (c *Person) Form() PersonForm { return c.form }

func (c *Person) EditingID() int64 { return c.editID }

// Load replaces the list with the backend's truth. On failure the prior
// list stays in place and the error is reported to the caller.
func (c *Person) Load(ctx context.Context) error {
	people, err := c.gw.ListPeople(ctx)
	if err != nil {
		return err
	}
	c.people = people
	return nil
}

// SelectForEdit copies one record into the form, applying the display
// projections, and clears any pending removal.
func (c *Person) SelectForEdit(p model.Person) {
	c.form = PersonForm{
		ID:      p.ID,
		Name:    format.CapitalizeWords(p.Name),
		CPF:     format.MaskCPF(p.CPF),
		Address: p.Address,
	}
	c.editID = p.ID
	c.removeID = 0
}

// SelectForCreate returns the form and both selections to the blank
// create state.
func (c *Person) SelectForCreate() {
	c.form = PersonForm{}
	c.editID = 0
	c.removeID = 0
}

// SetForm replaces the editable fields. The edit selection decides
// whether Save creates or updates, so the ID cannot be set from outside.
func (c *Person) SetForm(f PersonForm) {
	f.ID = c.editID
	c.form = f
}

// Save strips the CPF mask, validates and hands the record to the
// backend. Validation failures never reach the gateway; remote failures
// leave the form as typed so the operator can retry.
func (c *Person) Save(ctx context.Context) error {
	cpf := format.UnmaskCPF(c.form.CPF)

	if strings.TrimSpace(c.form.Name) == "" || cpf == "" || strings.TrimSpace(c.form.Address) == "" {
		return &ValidationError{Msg: "name, CPF and address are all required"}
	}
	if len(cpf) != 11 {
		return &ValidationError{Msg: "CPF must have exactly 11 digits"}
	}

	record := model.Person{
		ID:      c.form.ID,
		Name:    format.CapitalizeWords(c.form.Name),
		CPF:     cpf,
		Address: c.form.Address,
	}

	var err error
	if record.ID != 0 {
		err = c.gw.UpdatePerson(ctx, record)
	} else {
		err = c.gw.CreatePerson(ctx, record)
	}
	if err != nil {
		return err
	}

	c.SelectForCreate()
	return c.Load(ctx)
}

// Remove deletes one person after interactive confirmation. A decline is
// a no-op and reports removed=false. Removing the person currently being
// edited also resets the form to create mode.
func (c *Person) Remove(ctx context.Context, id int64) (removed bool, err error) {
	c.removeID = id
	ok, err := c.confirm("Are you sure you want to remove this person?")
	if err != nil {
		return false, err
	}
	if !ok {
		c.removeID = 0
		return false, nil
	}

	if err := c.gw.DeletePerson(ctx, id); err != nil {
		return false, err
	}

	c.removeID = 0
	if c.editID == id {
		c.SelectForCreate()
	}
	return true, c.Load(ctx)
}
