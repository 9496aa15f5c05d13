package bridge

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

const (
	methodCompleteTransfer = "completeBridgeTransfer"
	methodProcessed        = "processedTransactions"
)

// contractJSON is the subset of the bridge contract ABI the relayer touches.
const contractJSON = `[
  {"type":"event","name":"TokensLocked","anonymous":false,"inputs":[
    {"name":"token","type":"address","indexed":true},
    {"name":"user","type":"address","indexed":true},
    {"name":"amount","type":"uint256","indexed":false},
    {"name":"targetChainId","type":"uint256","indexed":false},
    {"name":"nonce","type":"uint256","indexed":false}]},
  {"type":"event","name":"TokensMinted","anonymous":false,"inputs":[
    {"name":"token","type":"address","indexed":true},
    {"name":"user","type":"address","indexed":true},
    {"name":"amount","type":"uint256","indexed":false},
    {"name":"nonce","type":"uint256","indexed":false}]},
  {"type":"event","name":"TokensUnlocked","anonymous":false,"inputs":[
    {"name":"token","type":"address","indexed":true},
    {"name":"user","type":"address","indexed":true},
    {"name":"amount","type":"uint256","indexed":false},
    {"name":"nonce","type":"uint256","indexed":false}]},
  {"type":"function","name":"completeBridgeTransfer","stateMutability":"nonpayable","inputs":[
    {"name":"token","type":"address"},
    {"name":"user","type":"address"},
    {"name":"amount","type":"uint256"},
    {"name":"transactionId","type":"bytes32"},
    {"name":"signatures","type":"bytes[]"}],"outputs":[]},
  {"type":"function","name":"processedTransactions","stateMutability":"view","inputs":[
    {"name":"","type":"bytes32"}],"outputs":[{"name":"","type":"bool"}]}
]`

var contractABI = mustParseABI(contractJSON)

func mustParseABI(raw string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		panic(fmt.Sprintf("bridge: invalid contract ABI: %v", err))
	}
	return parsed
}

// ABI returns the parsed bridge contract ABI.
func ABI() abi.ABI {
	return contractABI
}

// EventTopics returns the topic filter matching every bridge event kind, in
// the shape expected by ethereum.FilterQuery.Topics.
func EventTopics() [][]common.Hash {
	ids := make([]common.Hash, 0, len(EventKinds))
	for _, kind := range EventKinds {
		ids = append(ids, contractABI.Events[string(kind)].ID)
	}
	return [][]common.Hash{ids}
}

// ParseLog decodes a bridge contract log observed on chainID.
// Logs whose first topic is not a bridge event return ErrUnknownEvent.
func ParseLog(log types.Log, chainID uint64) (ChainEvent, error) {
	if len(log.Topics) == 0 {
		return ChainEvent{}, ErrUnknownEvent
	}

	event, err := contractABI.EventByID(log.Topics[0])
	if err != nil {
		return ChainEvent{}, fmt.Errorf("%w: topic %s", ErrUnknownEvent, log.Topics[0].Hex())
	}

	values := make(map[string]any)
	if err := contractABI.UnpackIntoMap(values, event.Name, log.Data); err != nil {
		return ChainEvent{}, fmt.Errorf("%w: unpack %s data: %w", ErrMalformedEvent, event.Name, err)
	}

	var indexed abi.Arguments
	for _, arg := range event.Inputs {
		if arg.Indexed {
			indexed = append(indexed, arg)
		}
	}

	if err := abi.ParseTopicsIntoMap(values, indexed, log.Topics[1:]); err != nil {
		return ChainEvent{}, fmt.Errorf("%w: parse %s topics: %w", ErrMalformedEvent, event.Name, err)
	}

	out := ChainEvent{
		Kind:            EventKind(event.Name),
		BlockNumber:     log.BlockNumber,
		TransactionHash: log.TxHash,
		LogIndex:        log.Index,
		SourceChainID:   chainID,
		TargetChainID:   chainID,
	}

	var ok bool
	if out.Token, ok = values["token"].(common.Address); !ok {
		return ChainEvent{}, fmt.Errorf("%w: %s without token", ErrMalformedEvent, event.Name)
	}
	if out.User, ok = values["user"].(common.Address); !ok {
		return ChainEvent{}, fmt.Errorf("%w: %s without user", ErrMalformedEvent, event.Name)
	}
	if out.Amount, ok = values["amount"].(*big.Int); !ok {
		return ChainEvent{}, fmt.Errorf("%w: %s without amount", ErrMalformedEvent, event.Name)
	}
	if out.Nonce, ok = values["nonce"].(*big.Int); !ok {
		return ChainEvent{}, fmt.Errorf("%w: %s without nonce", ErrMalformedEvent, event.Name)
	}

	if out.Kind == EventTokensLocked {
		target, ok := values["targetChainId"].(*big.Int)
		if !ok || !target.IsUint64() {
			return ChainEvent{}, fmt.Errorf("%w: TokensLocked with invalid targetChainId", ErrMalformedEvent)
		}
		out.TargetChainID = target.Uint64()
	}

	return out, nil
}

// PackProcessedQuery encodes a processedTransactions(transactionId) call.
func PackProcessedQuery(transactionID common.Hash) ([]byte, error) {
	return contractABI.Pack(methodProcessed, [32]byte(transactionID))
}

// UnpackProcessedResult decodes the boolean returned by processedTransactions.
func UnpackProcessedResult(output []byte) (bool, error) {
	values, err := contractABI.Unpack(methodProcessed, output)
	if err != nil {
		return false, err
	}

	if len(values) != 1 {
		return false, fmt.Errorf("processedTransactions returned %d values", len(values))
	}

	processed, ok := values[0].(bool)
	if !ok {
		return false, fmt.Errorf("processedTransactions returned %T", values[0])
	}

	return processed, nil
}
