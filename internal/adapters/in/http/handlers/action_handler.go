// backend/internal/adapters/in/http/handlers/action_handler.go
package handlers

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/blocto/solana-go-sdk/types"

	usecase "pumpblink/internal/application/usecase"
	tokendom "pumpblink/internal/domain/token"
)

const (
	unknownErrorMessage    = "An unknown error occurred"
	fallbackMessage        = "Cannot create token. Make sure your parameters are valid."
	invalidAccountMessage  = `Invalid "account" provided`
	missingParamsMessage   = "Missing required query parameters"
	tokenPageURLPrefix     = "https://pump.fun/"
	iconURLPattern         = "https?://.*"
)

// ActionHandler serves the pump.fun token-creation action: GET advertises
// the descriptor, POST builds the transaction bundle. Stateless; every
// request is independent.
type ActionHandler struct {
	uc      *usecase.TokenCreateUsecase
	iconURL string // descriptor icon, not the token icon
}

func NewActionHandler(uc *usecase.TokenCreateUsecase, iconURL string) *ActionHandler {
	return &ActionHandler{uc: uc, iconURL: iconURL}
}

// Get serves the action descriptor. OPTIONS is routed here too, per the
// Actions CORS convention.
func (h *ActionHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.descriptor(baseHref(r)))
}

// descriptor is structurally identical for every request from the same
// origin; only the origin-derived href prefix varies.
func (h *ActionHandler) descriptor(baseHref string) ActionGetResponse {
	return ActionGetResponse{
		Type:        "action",
		Title:       "PumpFun Token Generator",
		Icon:        h.iconURL,
		Description: "Create a PumpFun token with blinks!",
		Label:       "Pump Fun",
		Links: &ActionLinks{
			Actions: []LinkedAction{
				{
					Label: "Create PumpFun Token",
					Href:  baseHref + "?name={name}&ticker={ticker}&description={description}&iconUrl={iconUrl}&buyAmount={buyAmount}",
					Parameters: []ActionParameter{
						{Name: "name", Label: "Name of the token", Required: true},
						{Name: "ticker", Label: "Ticker of the token", Required: true},
						{Name: "description", Label: "Description of the token", Required: true},
						{Name: "iconUrl", Label: "URL of the token icon", Pattern: iconURLPattern, Required: true},
						{Name: "buyAmount", Label: "Initial buy amount (Optional)", Required: false},
					},
				},
			},
		},
	}
}

// Post validates the request, attempts the creation bundle and falls back to
// the minimal bundle on any build failure. A 200 response always carries a
// signable transaction.
func (h *ActionHandler) Post(w http.ResponseWriter, r *http.Request) {
	var body ActionPostRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeText(w, http.StatusBadRequest, unknownErrorMessage)
		return
	}

	req, err := tokendom.ParseCreateRequest(body.Account, r.URL.Query())
	if err != nil {
		switch {
		case errors.Is(err, tokendom.ErrInvalidAccount):
			writeText(w, http.StatusBadRequest, invalidAccountMessage)
		case errors.Is(err, tokendom.ErrMissingParameters):
			writeText(w, http.StatusBadRequest, missingParamsMessage)
		default:
			writeText(w, http.StatusBadRequest, unknownErrorMessage)
		}
		return
	}

	if res, err := h.uc.BuildCreate(r.Context(), req); err != nil {
		log.Printf("[action] build failed, serving fallback: %v", err)
	} else if payload, encErr := encodePostResponse(res.Tx, tokenPageURLPrefix+res.Mint); encErr != nil {
		log.Printf("[action] encode failed, serving fallback: %v", encErr)
	} else {
		writeJSON(w, http.StatusOK, payload)
		return
	}

	fb, err := h.uc.BuildFallback(r.Context(), req.Account)
	if err != nil {
		log.Printf("[action] fallback build failed: %v", err)
		writeText(w, http.StatusBadRequest, unknownErrorMessage)
		return
	}
	payload, err := encodePostResponse(fb, fallbackMessage)
	if err != nil {
		log.Printf("[action] fallback encode failed: %v", err)
		writeText(w, http.StatusBadRequest, unknownErrorMessage)
		return
	}
	writeJSON(w, http.StatusOK, payload)
}

func encodePostResponse(tx types.Transaction, message string) (ActionPostResponse, error) {
	raw, err := tx.Serialize()
	if err != nil {
		return ActionPostResponse{}, err
	}
	return ActionPostResponse{
		Transaction: base64.StdEncoding.EncodeToString(raw),
		Message:     message,
	}, nil
}

// baseHref reconstructs the externally visible URL of this endpoint from the
// request, honoring the proxy protocol header.
func baseHref(r *http.Request) string {
	scheme := "https"
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	} else if r.TLS == nil {
		scheme = "http"
	}
	return scheme + "://" + r.Host + r.URL.Path
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeText(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(msg))
}
