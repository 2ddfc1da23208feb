// internal/application/usecase/token_create_test.go
package usecase

import (
	"context"
	"crypto/ed25519"
	"errors"
	"testing"

	"github.com/blocto/solana-go-sdk/common"
	"github.com/blocto/solana-go-sdk/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tokendom "pumpblink/internal/domain/token"
)

// 32 zero bytes in base58: decodes to a valid blockhash for serialization.
const testBlockhash = "11111111111111111111111111111111"

var (
	fakeProgramID = common.PublicKeyFromString("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA")

	errBoom = errors.New("boom")
)

type fakeChain struct {
	hash string
	err  error
}

func (f *fakeChain) LatestBlockhash(ctx context.Context) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.hash, nil
}

type fakeMints struct{}

func (fakeMints) NewEphemeralMint() types.Account { return types.NewAccount() }

type fakeIcons struct {
	data []byte
	err  error
}

func (f *fakeIcons) Fetch(ctx context.Context, url string) ([]byte, string, error) {
	if f.err != nil {
		return nil, "", f.err
	}
	return f.data, "a.png", nil
}

type fakeProtocol struct {
	uploadErr error
	globalErr error
	createErr error
	buyErr    error

	global *GlobalState

	gotMeta    tokendom.Metadata
	gotURI     string
	gotCost    uint64
	gotMaxCost uint64

	globalCalls int
}

func (f *fakeProtocol) UploadMetadata(ctx context.Context, meta tokendom.Metadata) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	f.gotMeta = meta
	return "https://ipfs.example/meta.json", nil
}

func (f *fakeProtocol) GlobalState(ctx context.Context) (*GlobalState, error) {
	f.globalCalls++
	if f.globalErr != nil {
		return nil, f.globalErr
	}
	return f.global, nil
}

func (f *fakeProtocol) CreateInstruction(creator common.PublicKey, name, symbol, metadataURI string, mint common.PublicKey) (types.Instruction, error) {
	if f.createErr != nil {
		return types.Instruction{}, f.createErr
	}
	f.gotURI = metadataURI
	return types.Instruction{
		ProgramID: fakeProgramID,
		Accounts: []types.AccountMeta{
			{PubKey: mint, IsSigner: true, IsWritable: true},
			{PubKey: creator, IsSigner: true, IsWritable: true},
		},
		Data: []byte{1},
	}, nil
}

func (f *fakeProtocol) BuyInstruction(buyer, mint, feeRecipient common.PublicKey, cost, maxCost uint64) (types.Instruction, error) {
	if f.buyErr != nil {
		return types.Instruction{}, f.buyErr
	}
	f.gotCost = cost
	f.gotMaxCost = maxCost
	return types.Instruction{
		ProgramID: fakeProgramID,
		Accounts: []types.AccountMeta{
			{PubKey: buyer, IsSigner: true, IsWritable: true},
		},
		Data: []byte{2},
	}, nil
}

func newTestUsecase(chain *fakeChain, icons *fakeIcons, protocol *fakeProtocol) *TokenCreateUsecase {
	return NewTokenCreateUsecase(chain, fakeMints{}, icons, protocol)
}

func testRequest(buyLamports uint64) (*tokendom.CreateRequest, types.Account) {
	creator := types.NewAccount()
	return &tokendom.CreateRequest{
		Account:     creator.PublicKey.ToBase58(),
		Name:        "My Token",
		Ticker:      "MTK",
		Description: "a token",
		IconURL:     "https://example.com/a.png",
		BuyLamports: buyLamports,
	}, creator
}

func signatureFor(t *testing.T, tx types.Transaction, pub common.PublicKey) []byte {
	t.Helper()
	for i, acc := range tx.Message.Accounts {
		if acc == pub {
			require.Less(t, i, len(tx.Signatures))
			return tx.Signatures[i]
		}
	}
	t.Fatalf("account %s not in message", pub.ToBase58())
	return nil
}

func isZeroSig(sig []byte) bool {
	for _, b := range sig {
		if b != 0 {
			return false
		}
	}
	return true
}

func TestBuildCreateWithoutBuy(t *testing.T) {
	protocol := &fakeProtocol{}
	uc := newTestUsecase(&fakeChain{hash: testBlockhash}, &fakeIcons{data: []byte{0x89, 'P', 'N', 'G'}}, protocol)
	req, creator := testRequest(0)

	res, err := uc.BuildCreate(context.Background(), req)
	require.NoError(t, err)
	require.NotEmpty(t, res.Mint)

	msg := res.Tx.Message
	assert.Len(t, msg.Instructions, 1)
	assert.Equal(t, creator.PublicKey, msg.Accounts[0], "fee payer must be the requester")
	assert.Equal(t, testBlockhash, msg.RecentBlockHash)

	// Metadata flowed from request to upload.
	assert.Equal(t, "My Token", protocol.gotMeta.Name)
	assert.Equal(t, "MTK", protocol.gotMeta.Symbol)
	assert.Equal(t, "https://ipfs.example/meta.json", protocol.gotURI)

	// No buy requested: global state is never queried.
	assert.Zero(t, protocol.globalCalls)

	// The mint co-signed; the requester's slot is left for the wallet.
	mintPub := common.PublicKeyFromString(res.Mint)
	msgData, err := msg.Serialize()
	require.NoError(t, err)
	mintSig := signatureFor(t, res.Tx, mintPub)
	assert.True(t, ed25519.Verify(ed25519.PublicKey(mintPub.Bytes()), msgData, mintSig))
	assert.True(t, isZeroSig(signatureFor(t, res.Tx, creator.PublicKey)))
}

func TestBuildCreateWithBuy(t *testing.T) {
	protocol := &fakeProtocol{
		global: &GlobalState{
			FeeRecipient:                types.NewAccount().PublicKey,
			InitialVirtualSolReserves:   100,
			InitialVirtualTokenReserves: 1000,
			InitialRealTokenReserves:    800,
		},
	}
	uc := newTestUsecase(&fakeChain{hash: testBlockhash}, &fakeIcons{data: []byte{1}}, protocol)
	req, _ := testRequest(100)

	res, err := uc.BuildCreate(context.Background(), req)
	require.NoError(t, err)

	// Creation first, purchase second.
	require.Len(t, res.Tx.Message.Instructions, 2)
	assert.Equal(t, []byte{1}, res.Tx.Message.Instructions[0].Data)
	assert.Equal(t, []byte{2}, res.Tx.Message.Instructions[1].Data)

	// cost = curve output, maxCost = cost + 5% (floored).
	assert.Equal(t, uint64(499), protocol.gotCost)
	assert.Equal(t, uint64(523), protocol.gotMaxCost)
}

func TestBuildCreateDistinctMints(t *testing.T) {
	uc := newTestUsecase(&fakeChain{hash: testBlockhash}, &fakeIcons{data: []byte{1}}, &fakeProtocol{})

	req1, _ := testRequest(0)
	req2, _ := testRequest(0)
	res1, err := uc.BuildCreate(context.Background(), req1)
	require.NoError(t, err)
	res2, err := uc.BuildCreate(context.Background(), req2)
	require.NoError(t, err)

	assert.NotEqual(t, res1.Mint, res2.Mint)
}

func TestBuildCreateFailures(t *testing.T) {
	cases := []struct {
		name     string
		icons    *fakeIcons
		protocol *fakeProtocol
		chain    *fakeChain
		buy      uint64
		want     error
	}{
		{"icon fetch", &fakeIcons{err: errBoom}, &fakeProtocol{}, &fakeChain{hash: testBlockhash}, 0, ErrIconFetch},
		{"metadata upload", &fakeIcons{data: []byte{1}}, &fakeProtocol{uploadErr: errBoom}, &fakeChain{hash: testBlockhash}, 0, ErrMetadataUpload},
		{"create instruction", &fakeIcons{data: []byte{1}}, &fakeProtocol{createErr: errBoom}, &fakeChain{hash: testBlockhash}, 0, ErrInstructionBuild},
		{"global state", &fakeIcons{data: []byte{1}}, &fakeProtocol{globalErr: errBoom}, &fakeChain{hash: testBlockhash}, 100, ErrGlobalState},
		{"buy instruction", &fakeIcons{data: []byte{1}}, &fakeProtocol{buyErr: errBoom, global: &GlobalState{InitialVirtualSolReserves: 1, InitialVirtualTokenReserves: 10, InitialRealTokenReserves: 5}}, &fakeChain{hash: testBlockhash}, 100, ErrInstructionBuild},
		{"blockhash", &fakeIcons{data: []byte{1}}, &fakeProtocol{}, &fakeChain{err: errBoom}, 0, ErrBlockhash},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := newTestUsecase(tc.chain, tc.icons, tc.protocol)
			req, _ := testRequest(tc.buy)
			_, err := uc.BuildCreate(context.Background(), req)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestBuildFallback(t *testing.T) {
	uc := newTestUsecase(&fakeChain{hash: testBlockhash}, &fakeIcons{}, &fakeProtocol{})
	owner := types.NewAccount()

	tx, err := uc.BuildFallback(context.Background(), owner.PublicKey.ToBase58())
	require.NoError(t, err)

	msg := tx.Message
	require.Len(t, msg.Instructions, 1)
	assert.Equal(t, owner.PublicKey, msg.Accounts[0], "fee payer must be the requester")
	assert.Equal(t, testBlockhash, msg.RecentBlockHash)

	// System transfer of the nominal 1000 lamports to self.
	ix := msg.Instructions[0]
	assert.Equal(t, common.SystemProgramID, msg.Accounts[ix.ProgramIDIndex])
	assert.Equal(t, []byte{2, 0, 0, 0, 232, 3, 0, 0, 0, 0, 0, 0}, ix.Data)

	// No server-side signatures.
	for _, sig := range tx.Signatures {
		assert.True(t, isZeroSig(sig))
	}
}

func TestBuildFallbackBlockhashFatal(t *testing.T) {
	uc := newTestUsecase(&fakeChain{err: errBoom}, &fakeIcons{}, &fakeProtocol{})
	_, err := uc.BuildFallback(context.Background(), types.NewAccount().PublicKey.ToBase58())
	assert.ErrorIs(t, err, ErrBlockhash)
}
