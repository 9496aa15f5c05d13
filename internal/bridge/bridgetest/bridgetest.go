// Package bridgetest builds bridge contract logs for tests.
package bridgetest

import (
	"math/big"

	"github.com/gabapcia/bridgerelay/internal/bridge"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Log encodes event as the log the bridge contract at address would emit.
// TargetChainID is only encoded for TokensLocked. It panics on values the
// ABI cannot encode.
func Log(address common.Address, event bridge.ChainEvent) types.Log {
	abiEvent, ok := bridge.ABI().Events[string(event.Kind)]
	if !ok {
		panic("bridgetest: unknown event kind " + string(event.Kind))
	}

	args := []any{event.Amount}
	if event.Kind == bridge.EventTokensLocked {
		args = append(args, new(big.Int).SetUint64(event.TargetChainID))
	}
	args = append(args, event.Nonce)

	data, err := abiEvent.Inputs.NonIndexed().Pack(args...)
	if err != nil {
		panic("bridgetest: " + err.Error())
	}

	return types.Log{
		Address: address,
		Topics: []common.Hash{
			abiEvent.ID,
			common.BytesToHash(event.Token.Bytes()),
			common.BytesToHash(event.User.Bytes()),
		},
		Data:        data,
		BlockNumber: event.BlockNumber,
		TxHash:      event.TransactionHash,
		Index:       event.LogIndex,
	}
}

// Locked returns a TokensLocked event of one token unit (18 decimals) from
// sourceChainID to targetChainID at block, with a transaction hash and nonce
// derived from seed.
func Locked(sourceChainID, targetChainID, block uint64, seed byte) bridge.ChainEvent {
	return bridge.ChainEvent{
		Kind:            bridge.EventTokensLocked,
		BlockNumber:     block,
		TransactionHash: common.BytesToHash([]byte{0xcc, seed}),
		SourceChainID:   sourceChainID,
		TargetChainID:   targetChainID,
		Token:           common.HexToAddress("0x00000000000000000000000000000000000000aa"),
		User:            common.HexToAddress("0x00000000000000000000000000000000000000bb"),
		Amount:          new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil),
		Nonce:           big.NewInt(int64(seed)),
	}
}
