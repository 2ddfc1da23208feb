// internal/application/usecase/token_create.go
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/blocto/solana-go-sdk/common"
	"github.com/blocto/solana-go-sdk/program/system"
	"github.com/blocto/solana-go-sdk/types"

	tokendom "pumpblink/internal/domain/token"
)

// Build failures recovered by the fallback path. Each wraps the underlying
// cause with %v so the taxonomy stays matchable via errors.Is.
var (
	ErrIconFetch        = errors.New("token_create: icon fetch failed")
	ErrMetadataUpload   = errors.New("token_create: metadata upload failed")
	ErrGlobalState      = errors.New("token_create: global state fetch failed")
	ErrInstructionBuild = errors.New("token_create: instruction build failed")
	ErrBlockhash        = errors.New("token_create: blockhash fetch failed")
)

const (
	// Slippage tolerance applied to the initial buy cost. 500 bp = 5%.
	slippageBasisPoints = 500

	// Nominal self-transfer amount in the fallback bundle. Anti-abuse only,
	// not a charge tied to the failed attempt.
	fallbackLamports = 1000
)

// TokenCreateUsecase composes the token-creation transaction bundle. It is
// stateless: every call generates its own mint identity and fetches its own
// blockhash, so requests may run fully in parallel.
type TokenCreateUsecase struct {
	chain    ChainPort
	mints    MintGeneratorPort
	icons    IconFetcherPort
	protocol ProtocolPort
}

func NewTokenCreateUsecase(chain ChainPort, mints MintGeneratorPort, icons IconFetcherPort, protocol ProtocolPort) *TokenCreateUsecase {
	return &TokenCreateUsecase{
		chain:    chain,
		mints:    mints,
		icons:    icons,
		protocol: protocol,
	}
}

// BuildResult carries the new token address and the partially signed bundle.
type BuildResult struct {
	Mint string // base58 public key of the new token
	Tx   types.Transaction
}

// BuildCreate assembles the creation bundle for a validated request:
// creation instruction first, optional initial-buy instruction second, fee
// payer = requester, fresh finalized blockhash, mint signature attached.
// Any step's failure aborts the whole attempt; no partial bundle escapes.
func (u *TokenCreateUsecase) BuildCreate(ctx context.Context, req *tokendom.CreateRequest) (*BuildResult, error) {
	creator := common.PublicKeyFromString(req.Account)
	mint := u.mints.NewEphemeralMint()

	iconBytes, iconName, err := u.icons.Fetch(ctx, req.IconURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIconFetch, err)
	}

	metadataURI, err := u.protocol.UploadMetadata(ctx, tokendom.Metadata{
		Name:        req.Name,
		Symbol:      req.Ticker,
		Description: req.Description,
		Icon:        iconBytes,
		IconName:    iconName,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMetadataUpload, err)
	}

	createIx, err := u.protocol.CreateInstruction(creator, req.Name, req.Ticker, metadataURI, mint.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInstructionBuild, err)
	}
	ins := []types.Instruction{createIx}

	if req.BuyLamports > 0 {
		global, err := u.protocol.GlobalState(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrGlobalState, err)
		}
		cost := global.InitialBuyPrice(req.BuyLamports)
		maxCost := WithSlippage(cost, slippageBasisPoints)

		buyIx, err := u.protocol.BuyInstruction(creator, mint.PublicKey, global.FeeRecipient, cost, maxCost)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInstructionBuild, err)
		}
		ins = append(ins, buyIx)
	}

	blockhash, err := u.chain.LatestBlockhash(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBlockhash, err)
	}

	tx, err := types.NewTransaction(types.NewTransactionParam{
		Message: types.NewMessage(types.NewMessageParam{
			FeePayer:        creator,
			RecentBlockhash: blockhash,
			Instructions:    ins,
		}),
		// The mint co-signs because the transaction brings its address into
		// existence. The requester's signature slot stays empty for the
		// wallet to fill client-side.
		Signers: []types.Account{mint},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInstructionBuild, err)
	}

	log.Printf("[token_create] built create bundle mint=%s instructions=%d buyLamports=%d",
		mint.PublicKey.ToBase58(), len(ins), req.BuyLamports)

	return &BuildResult{Mint: mint.PublicKey.ToBase58(), Tx: tx}, nil
}

// BuildFallback builds the deterministic minimal bundle served when
// BuildCreate fails: the requester transfers a nominal amount to itself.
// No server-side signatures are attached. A blockhash failure here is fatal
// for the request; there is no second-level fallback.
func (u *TokenCreateUsecase) BuildFallback(ctx context.Context, account string) (types.Transaction, error) {
	owner := common.PublicKeyFromString(account)

	blockhash, err := u.chain.LatestBlockhash(ctx)
	if err != nil {
		return types.Transaction{}, fmt.Errorf("%w: %v", ErrBlockhash, err)
	}

	tx, err := types.NewTransaction(types.NewTransactionParam{
		Message: types.NewMessage(types.NewMessageParam{
			FeePayer:        owner,
			RecentBlockhash: blockhash,
			Instructions: []types.Instruction{
				system.Transfer(system.TransferParam{
					From:   owner,
					To:     owner,
					Amount: fallbackLamports,
				}),
			},
		}),
	})
	if err != nil {
		return types.Transaction{}, fmt.Errorf("%w: %v", ErrInstructionBuild, err)
	}

	log.Printf("[token_create] built fallback bundle account=%s", account)
	return tx, nil
}
