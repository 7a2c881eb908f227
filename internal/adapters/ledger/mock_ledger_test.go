package ledger

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"scholarchain/internal/adapters/persistence/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var txHashPattern = regexp.MustCompile(`^0x[0-9a-f]{64}$`)

func TestMockLedger_Submit(t *testing.T) {
	mock := NewMockLedger()

	funding, err := mock.SubmitScholarshipFunding(context.Background(), &models.Scholarship{})
	require.NoError(t, err)
	decision, err := mock.SubmitApplicationDecision(context.Background(), &models.Application{})
	require.NoError(t, err)

	for _, receipt := range []*TransactionReceipt{funding, decision} {
		assert.Regexp(t, txHashPattern, receipt.TxHash)
		assert.NotEmpty(t, receipt.ID)
		assert.False(t, receipt.SubmittedAt.IsZero())
	}
	assert.NotEqual(t, funding.TxHash, decision.TxHash)
}

func TestMockLedger_TransactionExists(t *testing.T) {
	mock := NewMockLedger()

	receipt, err := mock.SubmitScholarshipFunding(context.Background(), &models.Scholarship{})
	require.NoError(t, err)

	exists, err := mock.TransactionExists(context.Background(), receipt.TxHash)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = mock.TransactionExists(context.Background(), "0xdeadbeef")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestMockLedger_FailWith(t *testing.T) {
	mock := NewMockLedger()
	cause := errors.New("out of gas")
	mock.FailWith(cause)

	_, err := mock.SubmitApplicationDecision(context.Background(), &models.Application{})
	require.ErrorIs(t, err, cause)

	mock.FailWith(nil)
	_, err = mock.SubmitApplicationDecision(context.Background(), &models.Application{})
	require.NoError(t, err)
}

func TestMockLedger_LatencyRespectsContext(t *testing.T) {
	mock := NewMockLedger()
	mock.SetLatency(500 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := mock.SubmitApplicationDecision(ctx, &models.Application{})
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 400*time.Millisecond, "cancellation must not wait out the latency")
}

func TestMockLedger_CancelledContextWithoutLatency(t *testing.T) {
	mock := NewMockLedger()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := mock.SubmitScholarshipFunding(ctx, &models.Scholarship{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestMockLedger_AccountBalanceStable(t *testing.T) {
	mock := NewMockLedger()
	address := "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"

	first, err := mock.AccountBalance(context.Background(), address)
	require.NoError(t, err)
	second, err := mock.AccountBalance(context.Background(), address)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.GreaterOrEqual(t, first, 10.0)
	assert.LessOrEqual(t, first, 110.0)
}
