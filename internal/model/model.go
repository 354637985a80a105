package model

// Movement type codes as the backend expects them on the wire.
const (
	TypeDeposit    = "DEPOSITO"
	TypeWithdrawal = "RETIRADA"
)

// Person is the customer record. The ID is server-assigned and stays 0
// until the first save. CPF travels unmasked; masking is display-only.
type Person struct {
	ID      int64  `json:"id,omitempty"`
	Name    string `json:"nome"`
	CPF     string `json:"cpf"`
	Address string `json:"endereco"`
}

// PersonRef is the lightweight projection used by the movement page's
// person select.
type PersonRef struct {
	ID   int64  `json:"id"`
	Name string `json:"nome"`
	CPF  string `json:"cpf"`
}

// NestedAccount is the short account shape embedded in the joined
// person+accounts listing. The backend uses "numero" here but
// "numeroConta" everywhere else.
type NestedAccount struct {
	ID     int64  `json:"id"`
	Number string `json:"numero"`
}

// PersonWithAccounts is one row of the joined listing: a person plus an
// ordered, possibly empty, collection of their accounts.
type PersonWithAccounts struct {
	ID       int64           `json:"id"`
	Name     string          `json:"nome"`
	CPF      string          `json:"cpf"`
	Address  string          `json:"endereco,omitempty"`
	Accounts []NestedAccount `json:"contas"`
}

// Account is the flat per-person account shape with the server-derived
// balance. The balance is never editable client-side.
type Account struct {
	ID      int64   `json:"id"`
	Number  string  `json:"numeroConta"`
	Balance float64 `json:"saldo"`
}

// AccountSnapshot is the account state embedded in each movement row.
type AccountSnapshot struct {
	ID      int64   `json:"id"`
	Balance float64 `json:"saldo"`
}

// Movement is one append-only deposit or withdrawal event. The amount is
// always sent positive; Type carries the direction. Date is
// server-assigned.
type Movement struct {
	ID      int64           `json:"id"`
	Account AccountSnapshot `json:"conta"`
	Amount  float64         `json:"valor"`
	Type    string          `json:"tipo"`
	Date    string          `json:"data"`
}

// Statement pairs the newest-first movement list of one account with the
// balance derived from it. It is never persisted client-side.
type Statement struct {
	Movements []Movement
	Balance   float64
}
