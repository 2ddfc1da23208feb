// internal/domain/token/request_test.go
package token

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 32 zero bytes in base58: a syntactically valid account.
const validAccount = "11111111111111111111111111111111"

func validQuery() url.Values {
	return url.Values{
		"name":        {"My Token"},
		"ticker":      {"MTK"},
		"description": {"a token"},
		"iconUrl":     {"https://example.com/a.png"},
	}
}

func TestParseCreateRequest(t *testing.T) {
	q := validQuery()
	q.Set("buyAmount", "0.5")

	req, err := ParseCreateRequest(validAccount, q)
	require.NoError(t, err)
	assert.Equal(t, validAccount, req.Account)
	assert.Equal(t, "My Token", req.Name)
	assert.Equal(t, "MTK", req.Ticker)
	assert.Equal(t, "a token", req.Description)
	assert.Equal(t, "https://example.com/a.png", req.IconURL)
	assert.Equal(t, uint64(500_000_000), req.BuyLamports)
}

func TestParseCreateRequestInvalidAccount(t *testing.T) {
	for _, account := range []string{"not-a-key", "", "abc", "0OIl"} {
		_, err := ParseCreateRequest(account, validQuery())
		assert.ErrorIs(t, err, ErrInvalidAccount, "account=%q", account)
	}
}

func TestParseCreateRequestMissingParameters(t *testing.T) {
	for _, missing := range []string{"name", "ticker", "description", "iconUrl"} {
		q := validQuery()
		q.Del(missing)
		_, err := ParseCreateRequest(validAccount, q)
		assert.ErrorIs(t, err, ErrMissingParameters, "missing=%s", missing)
	}
}

func TestParseCreateRequestBuyAmountOptional(t *testing.T) {
	req, err := ParseCreateRequest(validAccount, validQuery())
	require.NoError(t, err)
	assert.Zero(t, req.BuyLamports)
}

func TestParseSolAmount(t *testing.T) {
	cases := []struct {
		in   string
		want uint64
	}{
		{"", 0},
		{"0", 0},
		{"1", 1_000_000_000},
		{"2", 2_000_000_000},
		{"0.5", 500_000_000},
		{"0.000000001", 1},
		{"2.000000001", 2_000_000_001},
		{"1.5", 1_500_000_000},
		{"0.0000000005", 0}, // below lamport resolution
		{"-1", 0},
		{"abc", 0},
		{"1e3", 0},
		{" 3 ", 3_000_000_000},
		{".25", 250_000_000},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ParseSolAmount(tc.in), "input=%q", tc.in)
	}
}
