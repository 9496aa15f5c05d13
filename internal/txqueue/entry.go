package txqueue

import (
	"fmt"
	"time"

	"github.com/gabapcia/bridgerelay/internal/bridge"

	"github.com/ethereum/go-ethereum/common"
)

// Status is the lifecycle state of a queue entry.
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusProcessing Status = "PROCESSING"
	StatusCompleted  Status = "COMPLETED"
	StatusFailed     Status = "FAILED"
)

// Statuses lists every status in lifecycle order.
var Statuses = []Status{StatusPending, StatusProcessing, StatusCompleted, StatusFailed}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusFailed:
		return true
	}
	return false
}

// EntryID derives the queue id of tx. The id depends only on the chain pair
// and the source transaction hash, so replays of the same lock event collide.
func EntryID(tx bridge.Transaction) string {
	return fmt.Sprintf("%d-%d-%s", tx.SourceChainID, tx.TargetChainID, tx.TransactionID.Hex())
}

// Entry is a bridge transaction plus its relay state.
type Entry struct {
	ID         string
	Tx         bridge.Transaction
	Status     Status
	RetryCount int
	MaxRetries int
	LastError  string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// NextRetryAt is set only while the entry is FAILED with retries left.
	NextRetryAt *time.Time

	// SettlementHash is the target-chain transaction that completed the entry.
	SettlementHash common.Hash

	// Recovered marks an entry restored in PROCESSING state after a restart.
	// Its on-chain outcome is unknown until reconciled, so the flag is kept
	// across failed attempts and cleared on completion.
	Recovered bool
}

// IsExhausted reports whether the entry failed its last allowed attempt.
func (e Entry) IsExhausted() bool {
	return e.Status == StatusFailed && e.RetryCount >= e.MaxRetries
}

// IsEligible reports whether the entry may be claimed at now, ignoring claims.
func (e Entry) IsEligible(now time.Time) bool {
	switch e.Status {
	case StatusPending:
		return true
	case StatusFailed:
		return e.RetryCount < e.MaxRetries && e.NextRetryAt != nil && !e.NextRetryAt.After(now)
	}
	return false
}

// clone returns a copy sharing no mutable memory with e.
func (e Entry) clone() Entry {
	e.Tx = e.Tx.Clone()
	if e.NextRetryAt != nil {
		next := *e.NextRetryAt
		e.NextRetryAt = &next
	}
	return e
}

// Stats counts entries per status. Exhausted is the subset of Failed that
// will not be retried.
type Stats struct {
	Total      int
	Pending    int
	Processing int
	Completed  int
	Failed     int
	Exhausted  int
}

func (s *Stats) count(e Entry) {
	s.Total++
	switch e.Status {
	case StatusPending:
		s.Pending++
	case StatusProcessing:
		s.Processing++
	case StatusCompleted:
		s.Completed++
	case StatusFailed:
		s.Failed++
		if e.IsExhausted() {
			s.Exhausted++
		}
	}
}

// backoff returns base * 2^(attempt-1), saturating instead of overflowing.
func backoff(base time.Duration, attempt int) time.Duration {
	if attempt < 1 || base <= 0 {
		return base
	}

	delay := base
	for i := 1; i < attempt; i++ {
		if delay > maxBackoff/2 {
			return maxBackoff
		}
		delay *= 2
	}
	return delay
}

const maxBackoff = time.Duration(1<<63 - 1)
