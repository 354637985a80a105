package controller

import (
	"context"

	"bancoctl/internal/model"
)

// AccountGateway is the slice of the backend client the account
// controller consumes.
type AccountGateway interface {
	ListPeopleWithAccounts(ctx context.Context) ([]model.PersonWithAccounts, error)
	CreateAccount(ctx context.Context, personID int64, number string) error
	UpdateAccount(ctx context.Context, accountID int64, number string) error
	DeleteAccount(ctx context.Context, accountID int64) error
}

// AccountForm mirrors the account register/edit form. The owning person
// is immutable after creation, so edits only ever carry the number.
type AccountForm struct {
	PersonID int64
	Number   string
}

// Account drives the account page over the joined person+accounts list.
// Saving always reloads the whole list; removal filters the nested
// collections locally instead (the id is known and removal is
// idempotent, while the server may normalize saved fields).
type Account struct {
	gw      AccountGateway
	confirm Confirmer

	people []model.PersonWithAccounts
	form   AccountForm
	editID int64
}

func NewAccount(gw AccountGateway, confirm Confirmer) *Account {
	return &Account{gw: gw, confirm: confirm}
}

func (c *Account) People() []model.PersonWithAccounts { return c.people }

func (c *Account) Form() AccountForm { return c.form }

func (c *Account) EditingID() int64 { return c.editID }

// Load replaces the joined list with the backend's truth.
func (c *Account) Load(ctx context.Context) error {
	people, err := c.gw.ListPeopleWithAccounts(ctx)
	if err != nil {
		return err
	}
	c.people = people
	return nil
}

// SelectForEdit scopes the form to one existing account of one person.
func (c *Account) SelectForEdit(personID int64, acc model.NestedAccount) {
	c.form = AccountForm{PersonID: personID, Number: acc.Number}
	c.editID = acc.ID
}

// SelectForCreate returns the form to the blank create state.
func (c *Account) SelectForCreate() {
	c.form = AccountForm{}
	c.editID = 0
}

func (c *Account) SetForm(f AccountForm) {
	c.form = f
}

// Save validates and hands the account to the backend: update-by-id with
// the number only when editing, create-under-person otherwise. Success
// resets the form and reloads the list; failure preserves the form.
func (c *Account) Save(ctx context.Context) error {
	if c.form.PersonID == 0 {
		return &ValidationError{Msg: "select the account owner first"}
	}
	if !digitsOnly(c.form.Number) {
		return &ValidationError{Msg: "the account number must contain digits only"}
	}

	var err error
	if c.editID != 0 {
		err = c.gw.UpdateAccount(ctx, c.editID, c.form.Number)
	} else {
		err = c.gw.CreateAccount(ctx, c.form.PersonID, c.form.Number)
	}
	if err != nil {
		return err
	}

	c.SelectForCreate()
	return c.Load(ctx)
}

// Remove deletes one account after interactive confirmation and filters
// it out of every person's nested collection without re-fetching. If the
// removed account was being edited the form resets to create mode.
func (c *Account) Remove(ctx context.Context, accountID int64) (removed bool, err error) {
	ok, err := c.confirm("Are you sure you want to remove this account?")
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	if err := c.gw.DeleteAccount(ctx, accountID); err != nil {
		return false, err
	}

	for i := range c.people {
		kept := make([]model.NestedAccount, 0, len(c.people[i].Accounts))
		for _, acc := range c.people[i].Accounts {
			if acc.ID != accountID {
				kept = append(kept, acc)
			}
		}
		c.people[i].Accounts = kept
	}

	if c.editID == accountID {
		c.SelectForCreate()
	}
	return true, nil
}
