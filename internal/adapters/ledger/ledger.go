package ledger

import (
	"context"
	"time"

	"scholarchain/internal/adapters/persistence/models"
)

// TransactionReceipt is the opaque correlation handle returned for a
// submitted ledger transaction. Callers must not interpret the hash
// beyond equality and lookup.
type TransactionReceipt struct {
	ID          string    `json:"id"`
	TxHash      string    `json:"txHash"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// Ledger is the narrow transactional interface the core uses to record
// facts on the external ledger service. Implementations are selected
// via configuration: a deterministic in-memory fake for tests and dev,
// and a network-backed gateway client for production.
type Ledger interface {
	// SubmitScholarshipFunding records a provider funding transaction
	// for a new scholarship offer.
	SubmitScholarshipFunding(ctx context.Context, scholarship *models.Scholarship) (*TransactionReceipt, error)

	// SubmitApplicationDecision records an application decision.
	SubmitApplicationDecision(ctx context.Context, application *models.Application) (*TransactionReceipt, error)

	// TransactionExists reports whether a previously returned hash is
	// known to the ledger.
	TransactionExists(ctx context.Context, txHash string) (bool, error)

	// AccountBalance returns the ledger balance for an address.
	AccountBalance(ctx context.Context, address string) (float64, error)
}
