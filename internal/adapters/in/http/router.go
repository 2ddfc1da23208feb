// backend/internal/adapters/in/http/router.go
package httpin

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"pumpblink/internal/adapters/in/http/handlers"
	"pumpblink/internal/adapters/in/http/middleware"
	usecase "pumpblink/internal/application/usecase"
)

// RouterDeps collects the dependencies injected from the DI container.
type RouterDeps struct {
	TokenCreateUC *usecase.TokenCreateUsecase
	ActionIconURL string
}

// NewRouter wires the action endpoints. OPTIONS mirrors GET per the Actions
// CORS convention, so discovery clients can preflight and read the
// descriptor in one shape.
func NewRouter(deps RouterDeps) http.Handler {
	h := handlers.NewActionHandler(deps.TokenCreateUC, deps.ActionIconURL)

	r := chi.NewRouter()
	r.Use(middleware.Recover)
	r.Use(middleware.ActionHeaders)
	r.Get("/api/pumpfun", h.Get)
	r.Options("/api/pumpfun", h.Get)
	r.Post("/api/pumpfun", h.Post)
	return r
}
