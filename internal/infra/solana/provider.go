// internal/infra/solana/provider.go
package solana

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/blocto/solana-go-sdk/client"
	"github.com/blocto/solana-go-sdk/rpc"
	"github.com/blocto/solana-go-sdk/types"

	usecase "pumpblink/internal/application/usecase"
)

var ErrNotConfigured = errors.New("solana: provider not configured")

// Provider wraps the shared RPC connection plus a disposable identity for
// provider-side needs. The identity is generated at boot, never holds funds
// and never signs user transactions.
type Provider struct {
	RPC      *client.Client
	Identity types.Account

	Timeout time.Duration // per-call RPC timeout
}

var (
	_ usecase.ChainPort         = (*Provider)(nil)
	_ usecase.MintGeneratorPort = (*Provider)(nil)
)

// NewProvider creates a provider. Endpoint resolution order:
// 1) rpcURL argument
// 2) SOLANA_RPC_URL env
// 3) mainnet default
func NewProvider(rpcURL string) *Provider {
	u := strings.TrimSpace(rpcURL)
	if u == "" {
		u = strings.TrimSpace(os.Getenv("SOLANA_RPC_URL"))
	}
	if u == "" {
		u = rpc.MainnetRPCEndpoint
	}

	p := &Provider{
		RPC:      client.NewClient(u),
		Identity: types.NewAccount(),
		Timeout:  20 * time.Second,
	}

	log.Printf("[solana] provider ready endpoint=%s identity=%s", u, maskShort(p.Identity.PublicKey.ToBase58()))
	return p
}

// LatestBlockhash fetches a fresh blockhash at finalized commitment. Every
// bundle gets its own; nothing is cached across requests.
func (p *Provider) LatestBlockhash(ctx context.Context) (string, error) {
	if p == nil || p.RPC == nil {
		return "", ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()

	res, err := p.RPC.GetLatestBlockhashWithConfig(ctx, client.GetLatestBlockhashConfig{
		Commitment: rpc.CommitmentFinalized,
	})
	if err != nil {
		return "", fmt.Errorf("solana: GetLatestBlockhash: %w", err)
	}
	if res.Blockhash == "" {
		return "", errors.New("solana: empty blockhash in RPC response")
	}
	return res.Blockhash, nil
}

// NewEphemeralMint returns a fresh keypair whose public half becomes the new
// token's on-chain address. One per build attempt, never reused, never
// persisted.
func (p *Provider) NewEphemeralMint() types.Account {
	return types.NewAccount()
}

// AccountData reads raw account data at finalized commitment.
func (p *Provider) AccountData(ctx context.Context, address string) ([]byte, error) {
	if p == nil || p.RPC == nil {
		return nil, ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()

	info, err := p.RPC.GetAccountInfoWithConfig(ctx, address, client.GetAccountInfoConfig{
		Commitment: rpc.CommitmentFinalized,
	})
	if err != nil {
		return nil, fmt.Errorf("solana: GetAccountInfo %s: %w", maskShort(address), err)
	}
	return info.Data, nil
}

func maskShort(s string) string {
	t := strings.TrimSpace(s)
	if len(t) <= 10 {
		return t
	}
	return t[:4] + "***" + t[len(t)-4:]
}
