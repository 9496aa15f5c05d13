package postgres

import (
	"context"
	"fmt"

	"github.com/gabapcia/bridgerelay/internal/bridge"
)

const queryRecordEvent = `INSERT INTO event_logs
	(chain_id, kind, block_number, transaction_hash, log_index, target_chain_id, token, user_address, amount, nonce)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	ON CONFLICT (chain_id, transaction_hash, log_index) DO NOTHING`

// RecordEvent appends event to the audit log. Replays of an already recorded
// log are ignored.
func (s *Store) RecordEvent(ctx context.Context, event bridge.ChainEvent) error {
	_, err := s.db.Exec(ctx, queryRecordEvent,
		int64(event.SourceChainID),
		string(event.Kind),
		int64(event.BlockNumber),
		event.TransactionHash.Hex(),
		int64(event.LogIndex),
		int64(event.TargetChainID),
		event.Token.Hex(),
		event.User.Hex(),
		formatInt(event.Amount),
		formatInt(event.Nonce),
	)
	if err != nil {
		return fmt.Errorf("record event %s: %w", event, err)
	}
	return nil
}
