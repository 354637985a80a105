package app

import (
	"time"

	"bancoctl/internal/config"
	"bancoctl/internal/controller"
	"bancoctl/internal/gateway"
)

// App bundles the backend client and the three page controllers. Each
// controller owns its state exclusively; they share nothing but the
// gateway.
type App struct {
	Gateway  *gateway.Client
	Person   *controller.Person
	Account  *controller.Account
	Movement *controller.Movement
}

// NewApp wires config to the backend client and the controllers. The
// confirm function is injected so the command layer and tests can supply
// their own prompt.
func NewApp(cfg *config.Config, confirm controller.Confirmer) *App {
	timeout := time.Duration(cfg.Backend.TimeoutSeconds) * time.Second
	client := gateway.NewClient(cfg.Backend.BaseURL, timeout)

	return &App{
		Gateway:  client,
		Person:   controller.NewPerson(client, confirm),
		Account:  controller.NewAccount(client, confirm),
		Movement: controller.NewMovement(client),
	}
}
