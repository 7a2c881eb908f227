package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"scholarchain/internal/adapters/persistence/models"
)

// HTTPLedger talks to the ledger gateway service over REST. The gateway
// owns signing and on-chain settlement; this client only submits facts
// and reads back receipts.
type HTTPLedger struct {
	baseURL       string
	moduleAddress string
	client        *http.Client
}

// NewHTTPLedger creates a ledger client for the given gateway URL.
func NewHTTPLedger(baseURL, moduleAddress string, timeout time.Duration) *HTTPLedger {
	return &HTTPLedger{
		baseURL:       baseURL,
		moduleAddress: moduleAddress,
		client:        &http.Client{Timeout: timeout},
	}
}

type fundingRequest struct {
	ModuleAddress string              `json:"moduleAddress"`
	Scholarship   *models.Scholarship `json:"scholarship"`
}

type decisionRequest struct {
	ModuleAddress string              `json:"moduleAddress"`
	Application   *models.Application `json:"application"`
}

// SubmitScholarshipFunding records a provider funding transaction.
func (l *HTTPLedger) SubmitScholarshipFunding(ctx context.Context, scholarship *models.Scholarship) (*TransactionReceipt, error) {
	return l.post(ctx, "/v1/transactions/scholarship-funding", fundingRequest{
		ModuleAddress: l.moduleAddress,
		Scholarship:   scholarship,
	})
}

// SubmitApplicationDecision records an application decision.
func (l *HTTPLedger) SubmitApplicationDecision(ctx context.Context, application *models.Application) (*TransactionReceipt, error) {
	return l.post(ctx, "/v1/transactions/application-decision", decisionRequest{
		ModuleAddress: l.moduleAddress,
		Application:   application,
	})
}

// TransactionExists checks a transaction hash against the gateway.
func (l *HTTPLedger) TransactionExists(ctx context.Context, txHash string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.baseURL+"/v1/transactions/"+txHash, nil)
	if err != nil {
		return false, err
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return true, nil
	case http.StatusNotFound:
		return false, nil
	default:
		return false, fmt.Errorf("ledger gateway returned status %d", resp.StatusCode)
	}
}

// AccountBalance fetches the balance for an address.
func (l *HTTPLedger) AccountBalance(ctx context.Context, address string) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.baseURL+"/v1/accounts/"+address+"/balance", nil)
	if err != nil {
		return 0, err
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("ledger gateway returned status %d", resp.StatusCode)
	}

	var body struct {
		Balance float64 `json:"balance"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, err
	}
	return body.Balance, nil
}

func (l *HTTPLedger) post(ctx context.Context, path string, payload interface{}) (*TransactionReceipt, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, l.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("ledger gateway returned status %d", resp.StatusCode)
	}

	var receipt TransactionReceipt
	if err := json.NewDecoder(resp.Body).Decode(&receipt); err != nil {
		return nil, err
	}
	return &receipt, nil
}
