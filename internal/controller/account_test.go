package controller

import (
	"context"
	"errors"
	"testing"

	"bancoctl/internal/model"
)

func joinedList() []model.PersonWithAccounts {
	return []model.PersonWithAccounts{
		{ID: 1, Name: "joão silva", CPF: "12345678901", Accounts: []model.NestedAccount{
			{ID: 10, Number: "1001"},
			{ID: 11, Number: "1002"},
		}},
		{ID: 2, Name: "maria souza", CPF: "98765432109", Accounts: nil},
	}
}

func TestAccountSaveValidation(t *testing.T) {
	cases := []struct {
		name string
		form AccountForm
	}{
		{"no person", AccountForm{Number: "1001"}},
		{"empty number", AccountForm{PersonID: 1}},
		{"non-digit number", AccountForm{PersonID: 1, Number: "10a1"}},
		{"masked number", AccountForm{PersonID: 1, Number: "10-01"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gw := &fakeGateway{}
			ctrl := NewAccount(gw, acceptAll)
			ctrl.SetForm(tc.form)

			err := ctrl.Save(context.Background())
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
			if gw.networkCalls() != 0 {
				t.Errorf("validation failure reached the gateway: %v", gw.calls)
			}
		})
	}
}

func TestAccountSaveCreateThenReload(t *testing.T) {
	gw := &fakeGateway{peopleWithAccounts: joinedList()}
	ctrl := NewAccount(gw, acceptAll)
	ctrl.SetForm(AccountForm{PersonID: 2, Number: "2001"})

	if err := ctrl.Save(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gw.calls[0] != "CreateAccount:2:2001" || gw.calls[1] != "ListPeopleWithAccounts" {
		t.Errorf("expected create then reload, got %v", gw.calls)
	}
	if ctrl.Form() != (AccountForm{}) {
		t.Errorf("form not reset: %+v", ctrl.Form())
	}
}

func TestAccountSaveUpdateSendsNumberOnly(t *testing.T) {
	gw := &fakeGateway{peopleWithAccounts: joinedList()}
	ctrl := NewAccount(gw, acceptAll)
	ctrl.SelectForEdit(1, model.NestedAccount{ID: 10, Number: "1001"})
	ctrl.SetForm(AccountForm{PersonID: 1, Number: "1005"})

	if err := ctrl.Save(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gw.calls[0] != "UpdateAccount:10:1005" {
		t.Errorf("expected UpdateAccount:10:1005, got %v", gw.calls)
	}
}

func TestAccountRemoveFiltersLocally(t *testing.T) {
	gw := &fakeGateway{peopleWithAccounts: joinedList()}
	ctrl := NewAccount(gw, acceptAll)
	if err := ctrl.Load(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	gw.calls = nil

	removed, err := ctrl.Remove(context.Background(), 10)
	if err != nil || !removed {
		t.Fatalf("remove failed: removed=%v err=%v", removed, err)
	}
	if len(gw.calls) != 1 || gw.calls[0] != "DeleteAccount:10" {
		t.Errorf("remove must not re-fetch the list, got %v", gw.calls)
	}
	for _, p := range ctrl.People() {
		for _, acc := range p.Accounts {
			if acc.ID == 10 {
				t.Error("removed account still present in the in-memory list")
			}
		}
	}
	if len(ctrl.People()[0].Accounts) != 1 {
		t.Errorf("sibling account was lost: %+v", ctrl.People()[0].Accounts)
	}
}

func TestAccountRemoveEditedResetsForm(t *testing.T) {
	gw := &fakeGateway{peopleWithAccounts: joinedList()}
	ctrl := NewAccount(gw, acceptAll)
	if err := ctrl.Load(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctrl.SelectForEdit(1, model.NestedAccount{ID: 11, Number: "1002"})

	removed, err := ctrl.Remove(context.Background(), 11)
	if err != nil || !removed {
		t.Fatalf("remove failed: removed=%v err=%v", removed, err)
	}
	if ctrl.Form() != (AccountForm{}) || ctrl.EditingID() != 0 {
		t.Errorf("form not reset after removing the edited account: %+v", ctrl.Form())
	}
}

func TestAccountRemoveDeclinedLeavesListUntouched(t *testing.T) {
	gw := &fakeGateway{peopleWithAccounts: joinedList()}
	ctrl := NewAccount(gw, declineAll)
	if err := ctrl.Load(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	gw.calls = nil

	removed, err := ctrl.Remove(context.Background(), 10)
	if err != nil || removed {
		t.Fatalf("decline must be a no-op: removed=%v err=%v", removed, err)
	}
	if gw.networkCalls() != 0 {
		t.Errorf("declined confirmation reached the gateway: %v", gw.calls)
	}
	if len(ctrl.People()[0].Accounts) != 2 {
		t.Errorf("list changed on decline: %+v", ctrl.People()[0].Accounts)
	}
}

func TestAccountRemoveFailureLeavesStateUntouched(t *testing.T) {
	gw := &fakeGateway{peopleWithAccounts: joinedList()}
	ctrl := NewAccount(gw, acceptAll)
	if err := ctrl.Load(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	gw.err = errors.New("backend down")

	removed, err := ctrl.Remove(context.Background(), 10)
	if err == nil || removed {
		t.Fatalf("expected failure: removed=%v err=%v", removed, err)
	}
	if len(ctrl.People()[0].Accounts) != 2 {
		t.Errorf("list changed after failed delete: %+v", ctrl.People()[0].Accounts)
	}
}
