// internal/application/usecase/ports.go
package usecase

import (
	"context"

	"github.com/blocto/solana-go-sdk/common"
	"github.com/blocto/solana-go-sdk/types"

	tokendom "pumpblink/internal/domain/token"
)

// ChainPort reads cluster state from a Solana RPC node.
type ChainPort interface {
	// LatestBlockhash returns a fresh blockhash at finalized commitment.
	LatestBlockhash(ctx context.Context) (string, error)
}

// MintGeneratorPort hands out fresh one-shot mint keypairs. Implementations
// must never return the same keypair twice.
type MintGeneratorPort interface {
	NewEphemeralMint() types.Account
}

// IconFetcherPort retrieves the binary resource behind an arbitrary URL.
type IconFetcherPort interface {
	Fetch(ctx context.Context, url string) (data []byte, filename string, err error)
}

// ProtocolPort is the boundary to the pump.fun program: metadata pinning,
// curve state and instruction construction.
type ProtocolPort interface {
	// UploadMetadata pins the token metadata and returns its URI.
	// Single attempt, no retry.
	UploadMetadata(ctx context.Context, meta tokendom.Metadata) (metadataURI string, err error)

	// GlobalState reads the protocol's global account at finalized
	// commitment. Needed only when an initial buy is requested.
	GlobalState(ctx context.Context) (*GlobalState, error)

	// CreateInstruction builds the token-creation instruction. The mint must
	// co-sign the resulting transaction.
	CreateInstruction(creator common.PublicKey, name, symbol, metadataURI string, mint common.PublicKey) (types.Instruction, error)

	// BuyInstruction builds the initial-purchase instruction. cost is the
	// curve-implied token amount, maxCost the slippage-adjusted bound.
	BuyInstruction(buyer, mint, feeRecipient common.PublicKey, cost, maxCost uint64) (types.Instruction, error)
}

// GlobalState mirrors the pump.fun global account fields the builder needs.
// Fetched fresh per request, never cached.
type GlobalState struct {
	FeeRecipient                common.PublicKey
	InitialVirtualTokenReserves uint64
	InitialVirtualSolReserves   uint64
	InitialRealTokenReserves    uint64
	TokenTotalSupply            uint64
	FeeBasisPoints              uint64
}
