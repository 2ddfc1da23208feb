// backend/internal/platform/di/container.go
package di

import (
	"context"

	httpin "pumpblink/internal/adapters/in/http"
	usecase "pumpblink/internal/application/usecase"
	"pumpblink/internal/infra/config"
	"pumpblink/internal/infra/icon"
	"pumpblink/internal/infra/pumpfun"
	solanainfra "pumpblink/internal/infra/solana"
)

// Container wires infra, usecases and router dependencies. Everything inside
// is read-mostly after construction; requests share only the pooled RPC
// connection.
type Container struct {
	Config   *config.Config
	Provider *solanainfra.Provider

	TokenCreateUC *usecase.TokenCreateUsecase
}

func NewContainer(ctx context.Context) (*Container, error) {
	_ = ctx // nothing here needs boot-time I/O yet

	cfg := config.Load()
	provider := solanainfra.NewProvider(cfg.SolanaRPCURL)
	protocol := pumpfun.NewClient(provider, cfg.PumpIPFSURL)
	icons := icon.NewFetcher()

	uc := usecase.NewTokenCreateUsecase(provider, provider, icons, protocol)

	return &Container{
		Config:        cfg,
		Provider:      provider,
		TokenCreateUC: uc,
	}, nil
}

func (c *Container) RouterDeps() httpin.RouterDeps {
	return httpin.RouterDeps{
		TokenCreateUC: c.TokenCreateUC,
		ActionIconURL: c.Config.ActionIconURL,
	}
}

func (c *Container) Close() {}
