// internal/application/usecase/curve.go
package usecase

import "math/big"

// InitialBuyPrice returns the token amount the bonding curve yields for the
// given lamport spend before any trades have occurred. The virtual reserve
// product exceeds uint64, so the intermediate math runs on big.Int.
func (g *GlobalState) InitialBuyPrice(lamports uint64) uint64 {
	if lamports == 0 {
		return 0
	}

	sol := new(big.Int).SetUint64(g.InitialVirtualSolReserves)
	tokens := new(big.Int).SetUint64(g.InitialVirtualTokenReserves)

	n := new(big.Int).Mul(sol, tokens)
	i := new(big.Int).Add(sol, new(big.Int).SetUint64(lamports))
	r := new(big.Int).Add(new(big.Int).Quo(n, i), big.NewInt(1))
	s := new(big.Int).Sub(tokens, r)
	if s.Sign() < 0 {
		return 0
	}

	out := s.Uint64()
	if out > g.InitialRealTokenReserves {
		return g.InitialRealTokenReserves
	}
	return out
}

// WithSlippage adds a tolerance expressed in basis points to an estimated
// cost. Integer arithmetic; the fractional part of the tolerance is floored.
func WithSlippage(amount, basisPoints uint64) uint64 {
	return amount + amount*basisPoints/10_000
}
