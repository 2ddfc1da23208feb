// internal/domain/token/request.go
package token

import (
	"errors"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/mr-tron/base58"
)

// LamportsPerSOL is the number of lamports in one SOL.
const LamportsPerSOL = 1_000_000_000

const solDecimals = 9

var (
	ErrInvalidAccount    = errors.New("token: invalid account")
	ErrMissingParameters = errors.New("token: missing required query parameters")
)

// CreateRequest is a validated token-creation request. It lives for a single
// POST and is discarded once the response has been produced.
type CreateRequest struct {
	Account     string // requester wallet address, base58
	Name        string
	Ticker      string
	Description string
	IconURL     string
	BuyLamports uint64 // initial buy in lamports, 0 = create only
}

// ParseCreateRequest validates the raw account string and the action query
// parameters and returns a populated request. No network I/O happens here.
func ParseCreateRequest(account string, q url.Values) (*CreateRequest, error) {
	acc := strings.TrimSpace(account)
	raw, err := base58.Decode(acc)
	if err != nil || len(raw) != 32 {
		return nil, ErrInvalidAccount
	}

	name := strings.TrimSpace(q.Get("name"))
	ticker := strings.TrimSpace(q.Get("ticker"))
	description := strings.TrimSpace(q.Get("description"))
	iconURL := strings.TrimSpace(q.Get("iconUrl"))
	if name == "" || ticker == "" || description == "" || iconURL == "" {
		return nil, ErrMissingParameters
	}

	return &CreateRequest{
		Account:     acc,
		Name:        name,
		Ticker:      ticker,
		Description: description,
		IconURL:     iconURL,
		BuyLamports: ParseSolAmount(q.Get("buyAmount")),
	}, nil
}

// ParseSolAmount converts a decimal SOL amount ("0.5", "2") into lamports.
// Absent, malformed or negative input yields 0, matching the action contract
// where buyAmount is optional. The conversion is pure integer arithmetic:
// going through float64 would lose precision near the 9-decimal lamport
// boundary. Fractional digits beyond the lamport resolution are dropped.
func ParseSolAmount(s string) uint64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	intPart, fracPart, _ := strings.Cut(s, ".")
	if intPart == "" {
		intPart = "0"
	}
	whole, err := strconv.ParseUint(intPart, 10, 64)
	if err != nil {
		return 0
	}

	var frac uint64
	if fracPart != "" {
		digits := fracPart
		if len(digits) > solDecimals {
			digits = digits[:solDecimals]
		}
		f, err := strconv.ParseUint(digits, 10, 64)
		if err != nil {
			return 0
		}
		for i := len(digits); i < solDecimals; i++ {
			f *= 10
		}
		frac = f
	}

	if whole > (math.MaxUint64-frac)/LamportsPerSOL {
		return 0
	}
	return whole*LamportsPerSOL + frac
}
