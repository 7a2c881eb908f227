package services

import (
	"context"
	"log"
	"time"

	"scholarchain/internal/adapters/ledger"
	"scholarchain/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
)

// ReconcileService periodically checks that the transaction hashes
// recorded on persisted applications are still known to the ledger and
// logs any discrepancy. It is purely observational: records are never
// mutated, a missing receipt is an operator signal, not a state change.
type ReconcileService struct {
	applicationRepo repositories.ApplicationRepository
	ledger          ledger.Ledger
	cron            *cron.Cron
}

// NewReconcileService creates a new reconcile service
func NewReconcileService(applicationRepo repositories.ApplicationRepository, ldg ledger.Ledger) *ReconcileService {
	return &ReconcileService{
		applicationRepo: applicationRepo,
		ledger:          ldg,
		cron:            cron.New(),
	}
}

// Start schedules the nightly reconciliation sweep (02:30).
func (s *ReconcileService) Start() {
	s.cron.AddFunc("30 2 * * *", s.Sweep)
	s.cron.Start()
	log.Println("🚀 ReconcileService started (daily 02:30 sweep)")
}

// Stop stops the scheduler and waits for a running sweep to finish.
func (s *ReconcileService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("🛑 ReconcileService stopped")
}

// Sweep verifies every recorded transaction hash against the ledger.
func (s *ReconcileService) Sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	applications, err := s.applicationRepo.List(ctx)
	if err != nil {
		log.Printf("❌ Reconcile sweep: failed to list applications: %v", err)
		return
	}

	var missing int
	for _, app := range applications {
		if app.TxHash == "" {
			continue
		}
		known, err := s.ledger.TransactionExists(ctx, app.TxHash)
		if err != nil {
			log.Printf("❌ Reconcile sweep: ledger lookup failed for application %d: %v", app.ID, err)
			return
		}
		if !known {
			missing++
			log.Printf("⚠️ Reconcile sweep: application %d has unknown tx hash %s", app.ID, app.TxHash)
		}
	}

	log.Printf("✅ Reconcile sweep completed: %d applications checked, %d missing receipts", len(applications), missing)
}
