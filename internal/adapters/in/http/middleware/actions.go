// backend/internal/adapters/in/http/middleware/actions.go
package middleware

import "net/http"

// Protocol identification and CORS headers required by Actions clients.
// Computed once at process start; identical on every response, so no
// synchronization is needed.
const (
	actionVersion = "2.1.3"

	// mainnet genesis-hash chain id
	blockchainIDs = "solana:5eykt4UsFv8P8NJdTREpY1vzqKqZKvdp"
)

var actionHeaders = map[string]string{
	"Access-Control-Allow-Origin":   "*",
	"Access-Control-Allow-Methods":  "GET,POST,PUT,OPTIONS",
	"Access-Control-Allow-Headers":  "Content-Type, Authorization, Content-Encoding, Accept-Encoding, X-Accept-Action-Version, X-Accept-Blockchain-Ids",
	"Access-Control-Expose-Headers": "X-Action-Version, X-Blockchain-Ids",
	"X-Action-Version":              actionVersion,
	"X-Blockchain-Ids":              blockchainIDs,
}

// ActionHeaders applies the Actions protocol headers to every response.
func ActionHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for k, v := range actionHeaders {
			w.Header().Set(k, v)
		}
		next.ServeHTTP(w, r)
	})
}
