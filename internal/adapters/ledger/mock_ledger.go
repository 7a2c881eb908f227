package ledger

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"hash/fnv"
	"sync"
	"time"

	"scholarchain/internal/adapters/persistence/models"

	"github.com/google/uuid"
)

// MockLedger is an in-memory ledger fake. Submissions are recorded in a
// local transaction set so TransactionExists can answer for them, and an
// optional latency simulates a slow backend while staying cancellable
// through the context. Balances are derived from the address so repeated
// queries agree.
type MockLedger struct {
	mu       sync.Mutex
	latency  time.Duration
	failWith error
	txHashes map[string]bool
}

// NewMockLedger creates a mock ledger with no artificial latency.
func NewMockLedger() *MockLedger {
	return &MockLedger{
		txHashes: make(map[string]bool),
	}
}

// SetLatency sets the simulated submission delay.
func (m *MockLedger) SetLatency(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.latency = d
}

// FailWith makes every subsequent submission fail with err. Pass nil to
// restore normal behavior.
func (m *MockLedger) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failWith = err
}

// SubmitScholarshipFunding simulates recording a funding transaction.
func (m *MockLedger) SubmitScholarshipFunding(ctx context.Context, _ *models.Scholarship) (*TransactionReceipt, error) {
	return m.submit(ctx)
}

// SubmitApplicationDecision simulates recording an application decision.
func (m *MockLedger) SubmitApplicationDecision(ctx context.Context, _ *models.Application) (*TransactionReceipt, error) {
	return m.submit(ctx)
}

// TransactionExists reports whether the hash was issued by this mock.
func (m *MockLedger) TransactionExists(_ context.Context, txHash string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.txHashes[txHash], nil
}

// AccountBalance returns a stable pseudo-balance between 10 and 110 for
// the address, mimicking the demo backend.
func (m *MockLedger) AccountBalance(_ context.Context, address string) (float64, error) {
	h := fnv.New32a()
	h.Write([]byte(address))
	return float64(10 + h.Sum32()%101), nil
}

func (m *MockLedger) submit(ctx context.Context) (*TransactionReceipt, error) {
	m.mu.Lock()
	latency := m.latency
	failWith := m.failWith
	m.mu.Unlock()

	if latency > 0 {
		timer := time.NewTimer(latency)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	} else if err := ctx.Err(); err != nil {
		return nil, err
	}

	if failWith != nil {
		return nil, failWith
	}

	hash, err := randomTxHash()
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.txHashes[hash] = true
	m.mu.Unlock()

	return &TransactionReceipt{
		ID:          uuid.NewString(),
		TxHash:      hash,
		SubmittedAt: time.Now(),
	}, nil
}

// randomTxHash generates a 0x-prefixed 32-byte hex hash, the shape the
// demo ledger used.
func randomTxHash() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return "0x" + hex.EncodeToString(buf), nil
}
