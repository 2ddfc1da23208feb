// backend/internal/adapters/in/http/handlers/action_types.go
package handlers

// Wire types of the Solana Actions protocol — the subset this service speaks.

// ActionGetResponse is the descriptor advertised to discovery clients.
type ActionGetResponse struct {
	Type        string       `json:"type"`
	Title       string       `json:"title"`
	Icon        string       `json:"icon"`
	Description string       `json:"description"`
	Label       string       `json:"label"`
	Links       *ActionLinks `json:"links,omitempty"`
}

type ActionLinks struct {
	Actions []LinkedAction `json:"actions"`
}

// LinkedAction is one templated action a client can invoke.
type LinkedAction struct {
	Label      string            `json:"label"`
	Href       string            `json:"href"`
	Parameters []ActionParameter `json:"parameters,omitempty"`
}

type ActionParameter struct {
	Name     string `json:"name"`
	Label    string `json:"label,omitempty"`
	Required bool   `json:"required"`
	Pattern  string `json:"pattern,omitempty"`
}

// ActionPostRequest is the POST body: the requester's wallet address.
type ActionPostRequest struct {
	Account string `json:"account"`
}

// ActionPostResponse always carries a signable transaction when served with
// HTTP 200, on the happy path and the fallback path alike.
type ActionPostResponse struct {
	Transaction string `json:"transaction"` // base64 wire encoding
	Message     string `json:"message,omitempty"`
}
