package bridge

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testToken  = common.HexToAddress("0xe78A0F7E598Cc8b0Bb87894B0F60dD2a88d6a8Ab")
	testUser   = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	testTxHash = common.HexToHash("0x9f2c4a3c1d6f0b8e7a5d4c3b2a1908f7e6d5c4b3a29180f7e6d5c4b3a2918011")
)

func oneEther() *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)
}

func lockedEvent() ChainEvent {
	return ChainEvent{
		Kind:            EventTokensLocked,
		BlockNumber:     120,
		TransactionHash: testTxHash,
		LogIndex:        3,
		SourceChainID:   1337,
		TargetChainID:   1338,
		Token:           testToken,
		User:            testUser,
		Amount:          oneEther(),
		Nonce:           big.NewInt(7),
	}
}

func TestFromLockedEvent(t *testing.T) {
	t.Run("copies every field from a lock event", func(t *testing.T) {
		tx, err := FromLockedEvent(lockedEvent())
		require.NoError(t, err)

		assert.Equal(t, testToken, tx.Token)
		assert.Equal(t, testUser, tx.User)
		assert.Zero(t, oneEther().Cmp(tx.Amount))
		assert.Equal(t, testTxHash, tx.TransactionID)
		assert.Equal(t, uint64(1337), tx.SourceChainID)
		assert.Equal(t, uint64(1338), tx.TargetChainID)
		assert.Zero(t, big.NewInt(7).Cmp(tx.Nonce))
	})

	t.Run("is deterministic", func(t *testing.T) {
		first, err := FromLockedEvent(lockedEvent())
		require.NoError(t, err)
		second, err := FromLockedEvent(lockedEvent())
		require.NoError(t, err)

		assert.True(t, first.Equal(second))
		assert.Equal(t, BuildMessageHash(first), BuildMessageHash(second))
	})

	t.Run("does not alias the event's integers", func(t *testing.T) {
		event := lockedEvent()
		tx, err := FromLockedEvent(event)
		require.NoError(t, err)

		event.Amount.SetInt64(1)
		assert.Zero(t, oneEther().Cmp(tx.Amount))
	})

	t.Run("rejects other event kinds", func(t *testing.T) {
		for _, kind := range []EventKind{EventTokensMinted, EventTokensUnlocked} {
			event := lockedEvent()
			event.Kind = kind

			_, err := FromLockedEvent(event)
			assert.ErrorIs(t, err, ErrWrongEventKind)
		}
	})

	t.Run("rejects malformed lock events", func(t *testing.T) {
		noAmount := lockedEvent()
		noAmount.Amount = nil

		noNonce := lockedEvent()
		noNonce.Nonce = nil

		noHash := lockedEvent()
		noHash.TransactionHash = common.Hash{}

		noTarget := lockedEvent()
		noTarget.TargetChainID = 0

		for _, event := range []ChainEvent{noAmount, noNonce, noHash, noTarget} {
			_, err := FromLockedEvent(event)
			assert.ErrorIs(t, err, ErrMalformedEvent)
		}
	})
}

func TestBuildMessageHash(t *testing.T) {
	tx, err := FromLockedEvent(lockedEvent())
	require.NoError(t, err)

	t.Run("hashes the packed tuple", func(t *testing.T) {
		packed := make([]byte, 0, 20+20+32+32+32)
		packed = append(packed, testToken.Bytes()...)
		packed = append(packed, testUser.Bytes()...)
		packed = append(packed, common.LeftPadBytes(oneEther().Bytes(), 32)...)
		packed = append(packed, testTxHash.Bytes()...)
		packed = append(packed, common.LeftPadBytes(big.NewInt(1338).Bytes(), 32)...)

		assert.Equal(t, crypto.Keccak256Hash(packed), BuildMessageHash(tx))
	})

	t.Run("is sensitive to field order", func(t *testing.T) {
		swapped := tx.Clone()
		swapped.Token, swapped.User = tx.User, tx.Token

		assert.NotEqual(t, BuildMessageHash(tx), BuildMessageHash(swapped))
	})

	t.Run("ignores fields outside the signed tuple", func(t *testing.T) {
		other := tx.Clone()
		other.SourceChainID = 1
		other.Nonce = big.NewInt(99)

		assert.Equal(t, BuildMessageHash(tx), BuildMessageHash(other))
	})

	t.Run("does not mutate the amount", func(t *testing.T) {
		before := new(big.Int).Set(tx.Amount)
		_ = BuildMessageHash(tx)
		assert.Zero(t, before.Cmp(tx.Amount))
	})
}

func TestBuildSettlementPayload(t *testing.T) {
	tx, err := FromLockedEvent(lockedEvent())
	require.NoError(t, err)

	signatures := [][]byte{
		append(make([]byte, 64), 27),
		append(make([]byte, 64), 28),
	}
	signatures[1][0] = 0xff

	payload, err := BuildSettlementPayload(tx, signatures)
	require.NoError(t, err)

	method := contractABI.Methods[methodCompleteTransfer]
	assert.Equal(t, method.ID, payload[:4])

	values, err := method.Inputs.Unpack(payload[4:])
	require.NoError(t, err)
	require.Len(t, values, 5)

	assert.Equal(t, testToken, values[0])
	assert.Equal(t, testUser, values[1])
	assert.Zero(t, oneEther().Cmp(values[2].(*big.Int)))
	assert.Equal(t, [32]byte(testTxHash), values[3])
	assert.Equal(t, signatures, values[4])
}

func TestParseLog(t *testing.T) {
	newLog := func(t *testing.T, kind EventKind, args ...any) types.Log {
		t.Helper()

		event := contractABI.Events[string(kind)]
		data, err := event.Inputs.NonIndexed().Pack(args...)
		require.NoError(t, err)

		return types.Log{
			Topics: []common.Hash{
				event.ID,
				common.BytesToHash(testToken.Bytes()),
				common.BytesToHash(testUser.Bytes()),
			},
			Data:        data,
			BlockNumber: 120,
			TxHash:      testTxHash,
			Index:       3,
		}
	}

	t.Run("decodes TokensLocked", func(t *testing.T) {
		log := newLog(t, EventTokensLocked, oneEther(), big.NewInt(1338), big.NewInt(7))

		event, err := ParseLog(log, 1337)
		require.NoError(t, err)

		expected := lockedEvent()
		assert.Equal(t, expected.Kind, event.Kind)
		assert.Equal(t, expected.BlockNumber, event.BlockNumber)
		assert.Equal(t, expected.TransactionHash, event.TransactionHash)
		assert.Equal(t, expected.LogIndex, event.LogIndex)
		assert.Equal(t, expected.Token, event.Token)
		assert.Equal(t, expected.User, event.User)
		assert.Equal(t, uint64(1337), event.SourceChainID)
		assert.Equal(t, uint64(1338), event.TargetChainID)
		assert.Zero(t, expected.Amount.Cmp(event.Amount))
		assert.Zero(t, expected.Nonce.Cmp(event.Nonce))
	})

	t.Run("decodes confirmation events on the observing chain", func(t *testing.T) {
		for _, kind := range []EventKind{EventTokensMinted, EventTokensUnlocked} {
			log := newLog(t, kind, oneEther(), big.NewInt(7))

			event, err := ParseLog(log, 1338)
			require.NoError(t, err)
			assert.Equal(t, kind, event.Kind)
			assert.Equal(t, uint64(1338), event.SourceChainID)
			assert.Equal(t, uint64(1338), event.TargetChainID)
		}
	})

	t.Run("rejects unknown topics", func(t *testing.T) {
		_, err := ParseLog(types.Log{Topics: []common.Hash{crypto.Keccak256Hash([]byte("Transfer(address,address,uint256)"))}}, 1337)
		assert.ErrorIs(t, err, ErrUnknownEvent)

		_, err = ParseLog(types.Log{}, 1337)
		assert.ErrorIs(t, err, ErrUnknownEvent)
	})

	t.Run("rejects truncated data", func(t *testing.T) {
		log := newLog(t, EventTokensLocked, oneEther(), big.NewInt(1338), big.NewInt(7))
		log.Data = log.Data[:40]

		_, err := ParseLog(log, 1337)
		assert.ErrorIs(t, err, ErrMalformedEvent)
	})
}

func TestEventTopics(t *testing.T) {
	topics := EventTopics()
	require.Len(t, topics, 1)
	assert.Len(t, topics[0], len(EventKinds))
	assert.Equal(t, contractABI.Events["TokensLocked"].ID, topics[0][0])
}

func TestProcessedQuery(t *testing.T) {
	input, err := PackProcessedQuery(testTxHash)
	require.NoError(t, err)
	assert.Equal(t, contractABI.Methods[methodProcessed].ID, input[:4])

	output, err := contractABI.Methods[methodProcessed].Outputs.Pack(true)
	require.NoError(t, err)

	processed, err := UnpackProcessedResult(output)
	require.NoError(t, err)
	assert.True(t, processed)
}
