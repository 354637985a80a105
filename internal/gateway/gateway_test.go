package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"bancoctl/internal/model"
)

func personFixture() model.Person {
	return model.Person{ID: 3, Name: "João Silva", CPF: "12345678901", Address: "Rua A"}
}

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return NewClient(srv.URL, 5*time.Second), srv
}

func TestListPeople(t *testing.T) {
	var gotMethod, gotPath string
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		w.Write([]byte(`[{"id":1,"nome":"joão silva","cpf":"12345678901","endereco":"rua a"}]`))
	})
	defer srv.Close()

	people, err := client.ListPeople(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotMethod != http.MethodGet || gotPath != "/pessoas" {
		t.Errorf("request was %s %s, want GET /pessoas", gotMethod, gotPath)
	}
	if len(people) != 1 || people[0].Name != "joão silva" || people[0].CPF != "12345678901" {
		t.Errorf("unexpected decode result: %+v", people)
	}
}

func TestUpdatePersonPath(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody map[string]any
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusOK)
	})
	defer srv.Close()

	p := personFixture()
	if err := client.UpdatePerson(context.Background(), p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotMethod != http.MethodPut || gotPath != "/pessoas/3" {
		t.Errorf("request was %s %s, want PUT /pessoas/3", gotMethod, gotPath)
	}
	if gotBody["cpf"] != "12345678901" || gotBody["nome"] != "João Silva" {
		t.Errorf("unexpected payload: %v", gotBody)
	}
}

func TestCreateAccountCarriesOwnerInQuery(t *testing.T) {
	var gotURL string
	var gotBody map[string]any
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotURL = r.URL.String()
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusCreated)
	})
	defer srv.Close()

	if err := client.CreateAccount(context.Background(), 7, "4455"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotURL != "/contas/cadastro?pessoa_id=7" {
		t.Errorf("request URL = %q, want /contas/cadastro?pessoa_id=7", gotURL)
	}
	if gotBody["numeroConta"] != "4455" {
		t.Errorf("payload = %v, want numeroConta 4455", gotBody)
	}
	if _, hasBalance := gotBody["saldo"]; hasBalance {
		t.Error("payload must not carry a balance field")
	}
}

func TestCreateMovementPayload(t *testing.T) {
	var gotBody map[string]any
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/movimentacoes/cadastro" {
			t.Errorf("path = %q", r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusCreated)
	})
	defer srv.Close()

	if err := client.CreateMovement(context.Background(), 9, 100.5, "DEPOSITO"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	conta, ok := gotBody["conta"].(map[string]any)
	if !ok || conta["id"] != float64(9) {
		t.Errorf("payload conta = %v, want {id: 9}", gotBody["conta"])
	}
	if gotBody["valor"] != 100.5 || gotBody["tipo"] != "DEPOSITO" {
		t.Errorf("payload = %v", gotBody)
	}
}

func TestListMovementsDecodesSnapshot(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/movimentacoes/conta/4" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte(`[{"id":10,"conta":{"id":4,"saldo":350.75},"valor":100.5,"tipo":"DEPOSITO","data":"2026-03-15T10:30:00"}]`))
	})
	defer srv.Close()

	movements, err := client.ListMovements(context.Background(), 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(movements) != 1 || movements[0].Account.Balance != 350.75 {
		t.Errorf("unexpected decode result: %+v", movements)
	}
}

func TestRemoteErrorCarriesBackendMessage(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"saldo insuficiente"}`))
	})
	defer srv.Close()

	err := client.CreateMovement(context.Background(), 1, 10, "RETIRADA")
	var remoteErr *RemoteError
	if !errors.As(err, &remoteErr) {
		t.Fatalf("expected *RemoteError, got %T (%v)", err, err)
	}
	if remoteErr.Status != http.StatusBadRequest || remoteErr.Message != "saldo insuficiente" {
		t.Errorf("unexpected remote error: %+v", remoteErr)
	}
	if !strings.Contains(err.Error(), "record the movement") || !strings.Contains(err.Error(), "saldo insuficiente") {
		t.Errorf("user-facing text = %q", err.Error())
	}
}

func TestRemoteErrorOnTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := NewClient(srv.URL, time.Second)
	srv.Close() // connection refused from here on

	_, err := client.ListPeople(context.Background())
	var remoteErr *RemoteError
	if !errors.As(err, &remoteErr) {
		t.Fatalf("expected *RemoteError, got %T (%v)", err, err)
	}
	if remoteErr.Status != 0 {
		t.Errorf("transport errors must not carry an HTTP status, got %d", remoteErr.Status)
	}
}
