package controller

import (
	"context"
	"math"
	"strconv"
	"strings"

	"bancoctl/internal/model"
)

// MovementGateway is the slice of the backend client the movement
// controller consumes.
type MovementGateway interface {
	ListPeopleRefs(ctx context.Context) ([]model.PersonRef, error)
	ListAccountsByPerson(ctx context.Context, personID int64) ([]model.Account, error)
	ListMovements(ctx context.Context, accountID int64) ([]model.Movement, error)
	CreateMovement(ctx context.Context, accountID int64, amount float64, movementType string) error
}

// selectionState tags the cascading person→account selection. The tag
// gates every transition, so an account selection without a person is
// unrepresentable.
type selectionState int

const (
	noPersonSelected selectionState = iota
	personSelected
	accountSelected
)

// MovementForm holds the two free-standing fields of the movement form.
// The amount stays a string until Save parses it.
type MovementForm struct {
	Amount string
	Type   string
}

// Movement drives the statement page: a two-level cascading selection,
// the derived statement and balance, and the append-only movement form.
type Movement struct {
	gw MovementGateway

	people    []model.PersonRef
	accounts  []model.Account
	statement []model.Movement
	balance   float64
	form      MovementForm

	state     selectionState
	personID  int64
	accountID int64
}

func NewMovement(gw MovementGateway) *Movement {
	return &Movement{gw: gw}
}

func (c *Movement) People() []model.PersonRef { return c.people }

func (c *Movement) Accounts() []model.Account { return c.accounts }

func (c *Movement) Form() MovementForm { return c.form }

func (c *Movement) HasPerson() bool { return c.state != noPersonSelected }

func (c *Movement) HasAccount() bool { return c.state == accountSelected }

func (c *Movement) SelectedAccountID() int64 { return c.accountID }

// Statement is the derived view of the current selection: newest-first
// movements plus the balance taken from the newest movement's embedded
// account snapshot, zero when empty.
func (c *Movement) Statement() model.Statement {
	return model.Statement{Movements: c.statement, Balance: c.balance}
}

func (c *Movement) SetForm(f MovementForm) {
	c.form = f
}

// Load fetches the lightweight people projection for the first select.
func (c *Movement) Load(ctx context.Context) error {
	refs, err := c.gw.ListPeopleRefs(ctx)
	if err != nil {
		return err
	}
	c.people = refs
	return nil
}

// SelectPerson resets everything downstream of the person before any new
// data arrives, then fetches that person's accounts.
func (c *Movement) SelectPerson(ctx context.Context, personID int64) error {
	c.state = personSelected
	c.personID = personID
	c.accountID = 0
	c.accounts = nil
	c.statement = nil
	c.balance = 0
	c.form = MovementForm{}

	accounts, err := c.gw.ListAccountsByPerson(ctx, personID)
	if err != nil {
		return err
	}
	c.accounts = accounts
	return nil
}

// SelectAccount fetches the statement for one of the selected person's
// accounts. It is only reachable once a person is selected.
func (c *Movement) SelectAccount(ctx context.Context, accountID int64) error {
	if c.state == noPersonSelected {
		return &ValidationError{Msg: "select a person first"}
	}
	if err := c.refreshStatement(ctx, accountID); err != nil {
		return err
	}
	c.state = accountSelected
	c.accountID = accountID
	return nil
}

// Save validates and appends one movement, re-fetches the statement for
// the current account and clears only the amount and type, preserving
// the account selection.
func (c *Movement) Save(ctx context.Context) error {
	if c.state != accountSelected {
		return &ValidationError{Msg: "select a person and an account first"}
	}
	if strings.TrimSpace(c.form.Amount) == "" || c.form.Type == "" {
		return &ValidationError{Msg: "amount and type are both required"}
	}
	if c.form.Type != model.TypeDeposit && c.form.Type != model.TypeWithdrawal {
		return &ValidationError{Msg: "type must be a deposit or a withdrawal"}
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(c.form.Amount), 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return &ValidationError{Msg: "the amount must be a number"}
	}
	if amount <= 0 {
		return &ValidationError{Msg: "the amount must be greater than zero"}
	}

	if err := c.gw.CreateMovement(ctx, c.accountID, amount, c.form.Type); err != nil {
		return err
	}

	if err := c.refreshStatement(ctx, c.accountID); err != nil {
		return err
	}
	c.form = MovementForm{}
	return nil
}

// refreshStatement replaces the statement and re-derives the balance
// from the newest movement's embedded account snapshot. The cached entry
// in the accounts list is refreshed from the same snapshot so the next
// account prompt shows the current balance.
func (c *Movement) refreshStatement(ctx context.Context, accountID int64) error {
	movements, err := c.gw.ListMovements(ctx, accountID)
	if err != nil {
		return err
	}
	c.statement = movements

	if len(movements) == 0 {
		c.balance = 0
		return nil
	}

	c.balance = movements[0].Account.Balance
	for i := range c.accounts {
		if c.accounts[i].ID == accountID {
			c.accounts[i].Balance = c.balance
		}
	}
	return nil
}
