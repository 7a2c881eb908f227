package services

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"scholarchain/internal/adapters/ledger"
	"scholarchain/internal/adapters/persistence/models"
	"scholarchain/internal/adapters/persistence/repositories"
	"scholarchain/internal/core/domain"

	"gorm.io/gorm"
)

// SubmitPolicy is a pre-persistence hook invoked after the verdict is
// known but before the ledger call and the append. Returning an error
// aborts the submission with no record written. The hook runs inside the
// per-(applicant, scholarship) critical section, so a check-then-append
// policy cannot race with a concurrent duplicate.
type SubmitPolicy func(ctx context.Context, applications repositories.ApplicationRepository, candidate *models.Application) error

// RejectDuplicateApprovals is a SubmitPolicy that refuses a submission
// when an approved application already exists for the same
// (applicant, scholarship) pair.
func RejectDuplicateApprovals(ctx context.Context, applications repositories.ApplicationRepository, candidate *models.Application) error {
	exists, err := applications.ExistsApproved(ctx, candidate.ApplicantAddress, candidate.ScholarshipID)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrDuplicateApproval
	}
	return nil
}

// ApplicationService is the application lifecycle manager. A submission
// moves through resolve offer → validate profile → evaluate → ledger
// decision call → append, in strict sequence. Exactly one record is
// created per successful call and no record is ever mutated; duplicate
// submissions are allowed unless a SubmitPolicy rejects them.
type ApplicationService struct {
	applicationRepo repositories.ApplicationRepository
	scholarshipRepo repositories.ScholarshipRepository
	ledger          ledger.Ledger
	policy          SubmitPolicy

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewApplicationService creates a new application service
func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	scholarshipRepo repositories.ScholarshipRepository,
	ldg ledger.Ledger,
) *ApplicationService {
	return &ApplicationService{
		applicationRepo: applicationRepo,
		scholarshipRepo: scholarshipRepo,
		ledger:          ldg,
		locks:           make(map[string]*sync.Mutex),
	}
}

// UsePolicy installs a pre-persistence submit policy. Call before the
// service starts handling requests.
func (s *ApplicationService) UsePolicy(policy SubmitPolicy) {
	s.policy = policy
}

// SubmitApplicationInput represents submit application input
type SubmitApplicationInput struct {
	ScholarshipID    uint           `json:"scholarshipId"`
	ApplicantAddress string         `json:"applicantAddress"`
	Profile          domain.Profile `json:"profile"`
}

// Submit runs one application through the lifecycle and returns the
// persisted record with its terminal status. When the ledger call fails
// or times out, no record is persisted and the caller gets a
// TransactionError; a storage failure after a successful ledger call
// surfaces as a PersistenceError, never as success.
func (s *ApplicationService) Submit(ctx context.Context, input *SubmitApplicationInput) (*models.Application, error) {
	scholarship, err := s.scholarshipRepo.GetByID(ctx, input.ScholarshipID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrScholarshipNotFound
		}
		return nil, err
	}
	if !scholarship.IsActive {
		return nil, domain.ErrScholarshipInactive
	}

	if input.ApplicantAddress == "" {
		return nil, domain.NewValidationError("applicantAddress", "must not be empty")
	}
	if err := input.Profile.Validate(); err != nil {
		return nil, err
	}

	verdict := domain.Evaluate(input.Profile, scholarship.Criteria())

	application := &models.Application{
		ScholarshipID:    scholarship.ID,
		ApplicantAddress: input.ApplicantAddress,
		Level:            input.Profile.Level,
		Categories:       input.Profile.Categories,
		AnnualIncome:     input.Profile.AnnualIncome,
		Cgpa:             input.Profile.Cgpa,
		SscScore:         input.Profile.SscScore,
		Status:           domain.StatusRejected,
		DecidedAt:        time.Now(),
	}
	if verdict.IsEligible() {
		application.Status = domain.StatusApproved
		application.AwardedAmount = scholarship.Amount
	}

	unlock := s.lockPair(input.ApplicantAddress, scholarship.ID)
	defer unlock()

	if s.policy != nil {
		if err := s.policy(ctx, s.applicationRepo, application); err != nil {
			return nil, err
		}
	}

	receipt, err := s.ledger.SubmitApplicationDecision(ctx, application)
	if err != nil {
		return nil, &domain.TransactionError{Op: "submitApplicationDecision", Err: err}
	}
	application.TxHash = receipt.TxHash

	if err := s.applicationRepo.Create(ctx, application); err != nil {
		return nil, &domain.PersistenceError{Err: err}
	}

	return application, nil
}

// ListByApplicant lists applications for an applicant address in
// insertion order
func (s *ApplicationService) ListByApplicant(ctx context.Context, applicantAddress string) ([]*models.Application, error) {
	return s.applicationRepo.ListByApplicant(ctx, applicantAddress)
}

// ListByScholarship lists applications submitted against a scholarship,
// with pagination
func (s *ApplicationService) ListByScholarship(ctx context.Context, scholarshipID uint, offset, limit int) ([]*models.Application, int64, error) {
	return s.applicationRepo.ListByScholarship(ctx, scholarshipID, offset, limit)
}

// lockPair serializes check-then-append per (applicant, scholarship)
// key. Lock entries are kept for the life of the process; the key space
// is the set of pairs actually submitted.
func (s *ApplicationService) lockPair(applicantAddress string, scholarshipID uint) func() {
	key := applicantAddress + "/" + strconv.FormatUint(uint64(scholarshipID), 10)

	s.mu.Lock()
	lock, ok := s.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[key] = lock
	}
	s.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}
