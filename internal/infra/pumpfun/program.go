// internal/infra/pumpfun/program.go
package pumpfun

import (
	"fmt"

	"github.com/blocto/solana-go-sdk/common"
)

// Pump.fun bonding-curve program.
const ProgramIDBase58 = "6EF8rrecthR9DBKrkiG4ak5Z2oFGNLMXbUyzPKwmWuCN"

var ProgramID = common.PublicKeyFromString(ProgramIDBase58)

// Anchor instruction discriminators: sha256("global:<name>")[:8].
var (
	createDiscriminator = []byte{24, 30, 200, 40, 5, 28, 7, 119}
	buyDiscriminator    = []byte{102, 6, 61, 18, 1, 218, 235, 234}
)

// PDAs owned by the program.

func globalPDA() (common.PublicKey, error) {
	pda, _, err := common.FindProgramAddress([][]byte{[]byte("global")}, ProgramID)
	if err != nil {
		return common.PublicKey{}, fmt.Errorf("pumpfun: derive global PDA: %w", err)
	}
	return pda, nil
}

func mintAuthorityPDA() (common.PublicKey, error) {
	pda, _, err := common.FindProgramAddress([][]byte{[]byte("mint-authority")}, ProgramID)
	if err != nil {
		return common.PublicKey{}, fmt.Errorf("pumpfun: derive mint-authority PDA: %w", err)
	}
	return pda, nil
}

func bondingCurvePDA(mint common.PublicKey) (common.PublicKey, error) {
	pda, _, err := common.FindProgramAddress([][]byte{[]byte("bonding-curve"), mint.Bytes()}, ProgramID)
	if err != nil {
		return common.PublicKey{}, fmt.Errorf("pumpfun: derive bonding-curve PDA: %w", err)
	}
	return pda, nil
}

func creatorVaultPDA(creator common.PublicKey) (common.PublicKey, error) {
	pda, _, err := common.FindProgramAddress([][]byte{[]byte("creator-vault"), creator.Bytes()}, ProgramID)
	if err != nil {
		return common.PublicKey{}, fmt.Errorf("pumpfun: derive creator-vault PDA: %w", err)
	}
	return pda, nil
}

func eventAuthorityPDA() (common.PublicKey, error) {
	pda, _, err := common.FindProgramAddress([][]byte{[]byte("__event_authority")}, ProgramID)
	if err != nil {
		return common.PublicKey{}, fmt.Errorf("pumpfun: derive event-authority PDA: %w", err)
	}
	return pda, nil
}
