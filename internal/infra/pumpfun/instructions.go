// internal/infra/pumpfun/instructions.go
package pumpfun

import (
	"fmt"

	"github.com/blocto/solana-go-sdk/common"
	"github.com/blocto/solana-go-sdk/program/metaplex/token_metadata"
	"github.com/blocto/solana-go-sdk/types"
	"github.com/near/borsh-go"
)

// The program publishes no Go SDK, so instructions are assembled by hand:
// explicit account metas plus borsh-encoded args behind the anchor
// discriminator.

type createArgs struct {
	Name    string
	Symbol  string
	URI     string
	Creator common.PublicKey
}

type buyArgs struct {
	Amount     uint64
	MaxSolCost uint64
}

// CreateInstruction builds the `create` instruction. The mint is a required
// signer; the creator pays fees and becomes the curve's creator.
//
// Account order follows the program IDL:
// mint(sw), mint_authority, bonding_curve(w), associated_bonding_curve(w),
// global, mpl_token_metadata, metadata(w), user(sw), system_program,
// token_program, associated_token_program, rent, event_authority, program.
func (c *Client) CreateInstruction(creator common.PublicKey, name, symbol, metadataURI string, mint common.PublicKey) (types.Instruction, error) {
	global, err := globalPDA()
	if err != nil {
		return types.Instruction{}, err
	}
	mintAuthority, err := mintAuthorityPDA()
	if err != nil {
		return types.Instruction{}, err
	}
	bondingCurve, err := bondingCurvePDA(mint)
	if err != nil {
		return types.Instruction{}, err
	}
	associatedBondingCurve, _, err := common.FindAssociatedTokenAddress(bondingCurve, mint)
	if err != nil {
		return types.Instruction{}, fmt.Errorf("pumpfun: derive curve ATA: %w", err)
	}
	metadata, err := token_metadata.GetTokenMetaPubkey(mint)
	if err != nil {
		return types.Instruction{}, fmt.Errorf("pumpfun: derive metadata PDA: %w", err)
	}
	eventAuthority, err := eventAuthorityPDA()
	if err != nil {
		return types.Instruction{}, err
	}

	args, err := borsh.Serialize(createArgs{
		Name:    name,
		Symbol:  symbol,
		URI:     metadataURI,
		Creator: creator,
	})
	if err != nil {
		return types.Instruction{}, fmt.Errorf("pumpfun: encode create args: %w", err)
	}

	data := make([]byte, 0, len(createDiscriminator)+len(args))
	data = append(data, createDiscriminator...)
	data = append(data, args...)

	return types.Instruction{
		ProgramID: ProgramID,
		Accounts: []types.AccountMeta{
			{PubKey: mint, IsSigner: true, IsWritable: true},
			{PubKey: mintAuthority, IsSigner: false, IsWritable: false},
			{PubKey: bondingCurve, IsSigner: false, IsWritable: true},
			{PubKey: associatedBondingCurve, IsSigner: false, IsWritable: true},
			{PubKey: global, IsSigner: false, IsWritable: false},
			{PubKey: common.MetaplexTokenMetaProgramID, IsSigner: false, IsWritable: false},
			{PubKey: metadata, IsSigner: false, IsWritable: true},
			{PubKey: creator, IsSigner: true, IsWritable: true},
			{PubKey: common.SystemProgramID, IsSigner: false, IsWritable: false},
			{PubKey: common.TokenProgramID, IsSigner: false, IsWritable: false},
			{PubKey: common.SPLAssociatedTokenAccountProgramID, IsSigner: false, IsWritable: false},
			{PubKey: common.SysVarRentPubkey, IsSigner: false, IsWritable: false},
			{PubKey: eventAuthority, IsSigner: false, IsWritable: false},
			{PubKey: ProgramID, IsSigner: false, IsWritable: false},
		},
		Data: data,
	}, nil
}

// BuyInstruction builds the `buy` instruction against a token's bonding
// curve. amount is the token amount, maxSolCost the slippage-adjusted lamport
// bound.
//
// Account order follows the program IDL:
// global, fee_recipient(w), mint, bonding_curve(w),
// associated_bonding_curve(w), associated_user(w), user(sw), system_program,
// token_program, creator_vault(w), event_authority, program.
func (c *Client) BuyInstruction(buyer, mint, feeRecipient common.PublicKey, amount, maxSolCost uint64) (types.Instruction, error) {
	global, err := globalPDA()
	if err != nil {
		return types.Instruction{}, err
	}
	bondingCurve, err := bondingCurvePDA(mint)
	if err != nil {
		return types.Instruction{}, err
	}
	associatedBondingCurve, _, err := common.FindAssociatedTokenAddress(bondingCurve, mint)
	if err != nil {
		return types.Instruction{}, fmt.Errorf("pumpfun: derive curve ATA: %w", err)
	}
	associatedUser, _, err := common.FindAssociatedTokenAddress(buyer, mint)
	if err != nil {
		return types.Instruction{}, fmt.Errorf("pumpfun: derive buyer ATA: %w", err)
	}
	// For an initial buy the buyer is the creator, so the vault is keyed by
	// the buyer's address.
	creatorVault, err := creatorVaultPDA(buyer)
	if err != nil {
		return types.Instruction{}, err
	}
	eventAuthority, err := eventAuthorityPDA()
	if err != nil {
		return types.Instruction{}, err
	}

	args, err := borsh.Serialize(buyArgs{
		Amount:     amount,
		MaxSolCost: maxSolCost,
	})
	if err != nil {
		return types.Instruction{}, fmt.Errorf("pumpfun: encode buy args: %w", err)
	}

	data := make([]byte, 0, len(buyDiscriminator)+len(args))
	data = append(data, buyDiscriminator...)
	data = append(data, args...)

	return types.Instruction{
		ProgramID: ProgramID,
		Accounts: []types.AccountMeta{
			{PubKey: global, IsSigner: false, IsWritable: false},
			{PubKey: feeRecipient, IsSigner: false, IsWritable: true},
			{PubKey: mint, IsSigner: false, IsWritable: false},
			{PubKey: bondingCurve, IsSigner: false, IsWritable: true},
			{PubKey: associatedBondingCurve, IsSigner: false, IsWritable: true},
			{PubKey: associatedUser, IsSigner: false, IsWritable: true},
			{PubKey: buyer, IsSigner: true, IsWritable: true},
			{PubKey: common.SystemProgramID, IsSigner: false, IsWritable: false},
			{PubKey: common.TokenProgramID, IsSigner: false, IsWritable: false},
			{PubKey: creatorVault, IsSigner: false, IsWritable: true},
			{PubKey: eventAuthority, IsSigner: false, IsWritable: false},
			{PubKey: ProgramID, IsSigner: false, IsWritable: false},
		},
		Data: data,
	}, nil
}
