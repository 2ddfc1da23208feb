// internal/infra/pumpfun/global.go
package pumpfun

import (
	"context"
	"errors"
	"fmt"

	"github.com/blocto/solana-go-sdk/common"
	"github.com/near/borsh-go"

	usecase "pumpblink/internal/application/usecase"
)

var (
	ErrGlobalAccountTooShort       = errors.New("pumpfun: global account data too short")
	ErrGlobalAccountNotInitialized = errors.New("pumpfun: global account not initialized")
)

const anchorDiscriminatorLen = 8

// globalAccount is the borsh layout of the program's global state behind the
// 8-byte anchor discriminator. Later program upgrades append fields; decoding
// tolerates trailing bytes.
type globalAccount struct {
	Initialized                 bool
	Authority                   common.PublicKey
	FeeRecipient                common.PublicKey
	InitialVirtualTokenReserves uint64
	InitialVirtualSolReserves   uint64
	InitialRealTokenReserves    uint64
	TokenTotalSupply            uint64
	FeeBasisPoints              uint64
}

// GlobalState reads the global account at finalized commitment. Fetched
// fresh per request; the curve parameters are small and the read is cheap.
func (c *Client) GlobalState(ctx context.Context) (*usecase.GlobalState, error) {
	addr, err := globalPDA()
	if err != nil {
		return nil, err
	}

	data, err := c.accounts.AccountData(ctx, addr.ToBase58())
	if err != nil {
		return nil, fmt.Errorf("pumpfun: read global account: %w", err)
	}

	return decodeGlobalAccount(data)
}

func decodeGlobalAccount(data []byte) (*usecase.GlobalState, error) {
	if len(data) <= anchorDiscriminatorLen {
		return nil, ErrGlobalAccountTooShort
	}

	var g globalAccount
	if err := borsh.Deserialize(&g, data[anchorDiscriminatorLen:]); err != nil {
		return nil, fmt.Errorf("pumpfun: decode global account: %w", err)
	}
	if !g.Initialized {
		return nil, ErrGlobalAccountNotInitialized
	}

	return &usecase.GlobalState{
		FeeRecipient:                g.FeeRecipient,
		InitialVirtualTokenReserves: g.InitialVirtualTokenReserves,
		InitialVirtualSolReserves:   g.InitialVirtualSolReserves,
		InitialRealTokenReserves:    g.InitialRealTokenReserves,
		TokenTotalSupply:            g.TokenTotalSupply,
		FeeBasisPoints:              g.FeeBasisPoints,
	}, nil
}
