package signer_test

import (
	"errors"
	"math/big"
	"testing"

	"github.com/gabapcia/bridgerelay/internal/bridge"
	"github.com/gabapcia/bridgerelay/internal/infra/secretstore/local"
	"github.com/gabapcia/bridgerelay/internal/keystore"
	keystoremocks "github.com/gabapcia/bridgerelay/internal/keystore/mocks"
	"github.com/gabapcia/bridgerelay/internal/signer"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Well-known development key (first ganache/hardhat account).
const devKey = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

var devAddress = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")

func transfer(seed byte) bridge.Transaction {
	return bridge.Transaction{
		Token:         common.BytesToAddress([]byte{0xaa, seed}),
		User:          common.BytesToAddress([]byte{0xbb, seed}),
		Amount:        big.NewInt(1_000_000_000_000_000_000),
		TransactionID: common.BytesToHash([]byte{0xcc, seed}),
		SourceChainID: 1337,
		TargetChainID: 1338,
		Nonce:         big.NewInt(int64(seed)),
	}
}

func TestSigner_SignTransaction(t *testing.T) {
	t.Run("signs the personal message hash", func(t *testing.T) {
		s, err := signer.NewFromHex(devKey)
		require.NoError(t, err)

		tx := transfer(1)
		sig, err := s.SignTransaction(t.Context(), tx)
		require.NoError(t, err)

		require.Len(t, sig, crypto.SignatureLength)
		assert.Contains(t, []byte{27, 28}, sig[crypto.RecoveryIDOffset])

		recovered, err := signer.Recover(tx, sig)
		require.NoError(t, err)
		assert.Equal(t, devAddress, recovered)
	})

	t.Run("is deterministic", func(t *testing.T) {
		s, err := signer.NewFromHex(devKey)
		require.NoError(t, err)

		first, err := s.SignTransaction(t.Context(), transfer(1))
		require.NoError(t, err)
		second, err := s.SignTransaction(t.Context(), transfer(1))
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("rejects invalid key material", func(t *testing.T) {
		_, err := signer.NewFromHex("0x1234")
		assert.ErrorIs(t, err, keystore.ErrInvalidKey)
	})
}

func TestSigner_SignTransactions(t *testing.T) {
	t.Run("preserves input order", func(t *testing.T) {
		s, err := signer.NewFromHex(devKey)
		require.NoError(t, err)

		txs := []bridge.Transaction{transfer(1), transfer(2), transfer(3)}
		sigs, err := s.SignTransactions(t.Context(), txs)
		require.NoError(t, err)
		require.Len(t, sigs, len(txs))

		for i, tx := range txs {
			single, err := s.SignTransaction(t.Context(), tx)
			require.NoError(t, err)
			assert.Equal(t, single, sigs[i])
		}
	})

	t.Run("empty input yields no signatures", func(t *testing.T) {
		s, err := signer.NewFromHex(devKey)
		require.NoError(t, err)

		sigs, err := s.SignTransactions(t.Context(), nil)
		require.NoError(t, err)
		assert.Empty(t, sigs)
	})
}

func TestSigner_NewFromStore(t *testing.T) {
	t.Run("resolves the key once", func(t *testing.T) {
		store := keystoremocks.NewStore(t)
		store.EXPECT().GetKey(mock.Anything, "relayer").Return(devKey, nil).Once()

		s := signer.NewFromStore(store, "relayer")

		addr, err := s.Address(t.Context())
		require.NoError(t, err)
		assert.Equal(t, devAddress, addr)

		_, err = s.SignTransaction(t.Context(), transfer(1))
		require.NoError(t, err)
	})

	t.Run("retries after a failed lookup", func(t *testing.T) {
		boom := errors.New("vault sealed")

		store := keystoremocks.NewStore(t)
		store.EXPECT().GetKey(mock.Anything, "relayer").Return("", boom).Once()
		store.EXPECT().GetKey(mock.Anything, "relayer").Return(devKey, nil).Once()

		s := signer.NewFromStore(store, "relayer")

		_, err := s.SignTransaction(t.Context(), transfer(1))
		assert.ErrorIs(t, err, boom)

		_, err = s.SignTransaction(t.Context(), transfer(1))
		assert.NoError(t, err)
	})

	t.Run("surfaces unknown key ids", func(t *testing.T) {
		s := signer.NewFromStore(local.New(nil), "relayer")

		_, err := s.Address(t.Context())
		assert.ErrorIs(t, err, keystore.ErrKeyNotFound)
	})

	t.Run("surfaces malformed stored keys", func(t *testing.T) {
		s := signer.NewFromStore(local.New(map[string]string{"relayer": "not-hex"}), "relayer")

		_, err := s.SignTransaction(t.Context(), transfer(1))
		assert.ErrorIs(t, err, keystore.ErrInvalidKey)
	})
}

func TestSigner_SignEthTx(t *testing.T) {
	t.Run("signs for the given chain", func(t *testing.T) {
		s, err := signer.NewFromHex(devKey)
		require.NoError(t, err)

		chainID := big.NewInt(1338)
		tx := types.NewTx(&types.LegacyTx{
			Nonce:    7,
			GasPrice: big.NewInt(1_000_000_000),
			Gas:      21_000,
			To:       &common.Address{},
			Value:    big.NewInt(0),
		})

		signed, err := s.SignEthTx(t.Context(), tx, chainID)
		require.NoError(t, err)

		from, err := types.Sender(types.LatestSignerForChainID(chainID), signed)
		require.NoError(t, err)
		assert.Equal(t, devAddress, from)
		assert.Equal(t, chainID.Uint64(), signed.ChainId().Uint64())
	})
}

func TestRecover(t *testing.T) {
	t.Run("rejects short signatures", func(t *testing.T) {
		_, err := signer.Recover(transfer(1), []byte{1, 2, 3})
		assert.ErrorIs(t, err, signer.ErrInvalidSignature)
	})

	t.Run("does not modify the input", func(t *testing.T) {
		s, err := signer.NewFromHex(devKey)
		require.NoError(t, err)

		sig, err := s.SignTransaction(t.Context(), transfer(1))
		require.NoError(t, err)
		v := sig[crypto.RecoveryIDOffset]

		_, err = signer.Recover(transfer(1), sig)
		require.NoError(t, err)
		assert.Equal(t, v, sig[crypto.RecoveryIDOffset])
	})

	t.Run("detects a different transaction", func(t *testing.T) {
		s, err := signer.NewFromHex(devKey)
		require.NoError(t, err)

		sig, err := s.SignTransaction(t.Context(), transfer(1))
		require.NoError(t, err)

		recovered, err := signer.Recover(transfer(2), sig)
		require.NoError(t, err)
		assert.NotEqual(t, devAddress, recovered)
	})
}
