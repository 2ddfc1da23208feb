// internal/application/usecase/curve_test.go
package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithSlippage(t *testing.T) {
	// 500 bp = 5%, floored integer arithmetic.
	assert.Equal(t, uint64(1_050_000), WithSlippage(1_000_000, 500))
	assert.Equal(t, uint64(1048), WithSlippage(999, 500))
	assert.Equal(t, uint64(0), WithSlippage(0, 500))
	assert.Equal(t, uint64(100), WithSlippage(100, 0))
}

func TestInitialBuyPrice(t *testing.T) {
	g := &GlobalState{
		InitialVirtualSolReserves:   100,
		InitialVirtualTokenReserves: 1000,
		InitialRealTokenReserves:    800,
	}

	// n = 100*1000, i = 100+100, r = n/i + 1 = 501, s = 1000-501 = 499.
	assert.Equal(t, uint64(499), g.InitialBuyPrice(100))
	assert.Equal(t, uint64(0), g.InitialBuyPrice(0))

	// Output is capped by the real token reserves.
	capped := &GlobalState{
		InitialVirtualSolReserves:   100,
		InitialVirtualTokenReserves: 1000,
		InitialRealTokenReserves:    400,
	}
	assert.Equal(t, uint64(400), capped.InitialBuyPrice(100))
}

func TestInitialBuyPriceMainnetScale(t *testing.T) {
	// Reserve product exceeds uint64; must not overflow.
	g := &GlobalState{
		InitialVirtualSolReserves:   30_000_000_000,
		InitialVirtualTokenReserves: 1_073_000_000_000_000,
		InitialRealTokenReserves:    793_100_000_000_000,
	}

	out := g.InitialBuyPrice(1_000_000_000) // 1 SOL
	assert.Greater(t, out, uint64(0))
	assert.Less(t, out, g.InitialVirtualTokenReserves)

	// Spending more never yields fewer tokens.
	assert.GreaterOrEqual(t, g.InitialBuyPrice(2_000_000_000), out)
}
