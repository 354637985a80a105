package controller

import (
	"context"
	"fmt"

	"bancoctl/internal/model"
)

// fakeGateway satisfies all three controller gateway interfaces. It
// records every call so tests can assert that validation failures never
// reach the network layer.
type fakeGateway struct {
	people             []model.Person
	peopleWithAccounts []model.PersonWithAccounts
	refs               []model.PersonRef
	accountsByPerson   map[int64][]model.Account
	movementsByAccount map[int64][]model.Movement

	err   error
	calls []string

	lastPerson model.Person
}

func (f *fakeGateway) record(call string) { f.calls = append(f.calls, call) }

func (f *fakeGateway) ListPeople(ctx context.Context) ([]model.Person, error) {
	f.record("ListPeople")
	if f.err != nil {
		return nil, f.err
	}
	return f.people, nil
}

func (f *fakeGateway) CreatePerson(ctx context.Context, p model.Person) error {
	f.record("CreatePerson")
	f.lastPerson = p
	return f.err
}

func (f *fakeGateway) UpdatePerson(ctx context.Context, p model.Person) error {
	f.record(fmt.Sprintf("UpdatePerson:%d", p.ID))
	f.lastPerson = p
	return f.err
}

func (f *fakeGateway) DeletePerson(ctx context.Context, id int64) error {
	f.record(fmt.Sprintf("DeletePerson:%d", id))
	return f.err
}

func (f *fakeGateway) ListPeopleWithAccounts(ctx context.Context) ([]model.PersonWithAccounts, error) {
	f.record("ListPeopleWithAccounts")
	if f.err != nil {
		return nil, f.err
	}
	return f.peopleWithAccounts, nil
}

func (f *fakeGateway) CreateAccount(ctx context.Context, personID int64, number string) error {
	f.record(fmt.Sprintf("CreateAccount:%d:%s", personID, number))
	return f.err
}

func (f *fakeGateway) UpdateAccount(ctx context.Context, accountID int64, number string) error {
	f.record(fmt.Sprintf("UpdateAccount:%d:%s", accountID, number))
	return f.err
}

func (f *fakeGateway) DeleteAccount(ctx context.Context, accountID int64) error {
	f.record(fmt.Sprintf("DeleteAccount:%d", accountID))
	return f.err
}

func (f *fakeGateway) ListPeopleRefs(ctx context.Context) ([]model.PersonRef, error) {
	f.record("ListPeopleRefs")
	if f.err != nil {
		return nil, f.err
	}
	return f.refs, nil
}

func (f *fakeGateway) ListAccountsByPerson(ctx context.Context, personID int64) ([]model.Account, error) {
	f.record(fmt.Sprintf("ListAccountsByPerson:%d", personID))
	if f.err != nil {
		return nil, f.err
	}
	return f.accountsByPerson[personID], nil
}

func (f *fakeGateway) ListMovements(ctx context.Context, accountID int64) ([]model.Movement, error) {
	f.record(fmt.Sprintf("ListMovements:%d", accountID))
	if f.err != nil {
		return nil, f.err
	}
	return f.movementsByAccount[accountID], nil
}

func (f *fakeGateway) CreateMovement(ctx context.Context, accountID int64, amount float64, movementType string) error {
	f.record(fmt.Sprintf("CreateMovement:%d:%v:%s", accountID, amount, movementType))
	return f.err
}

func (f *fakeGateway) networkCalls() int { return len(f.calls) }

func acceptAll(string) (bool, error) { return true, nil }

func declineAll(string) (bool, error) { return false, nil }
