package app

import (
	"github.com/contaflow/contaflow/internal/config"
	"github.com/contaflow/contaflow/internal/service"
	"github.com/contaflow/contaflow/internal/store"
)

// App bundles the wired application: one backend client, one shared
// response cache, one service layer on top.
type App struct {
	Service *service.Service
	Store   *store.Client
}

func NewApp(cfg *config.Config) *App {
	client := store.NewClient(cfg.API.BaseURL, cfg.API.Timeout, store.NewCache())

	return &App{
		Service: service.NewService(client, cfg),
		Store:   client,
	}
}
