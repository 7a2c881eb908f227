package services

import (
	"context"
	"errors"

	"scholarchain/internal/adapters/ledger"
	"scholarchain/internal/adapters/persistence/models"
	"scholarchain/internal/adapters/persistence/repositories"
	"scholarchain/internal/core/domain"

	"gorm.io/gorm"
)

// ScholarshipService is the registry of scholarship offers: it validates
// criteria, records the funding transaction on the ledger and appends the
// offer. Offers are immutable after creation; only visibility can change.
type ScholarshipService struct {
	scholarshipRepo repositories.ScholarshipRepository
	ledger          ledger.Ledger
}

// NewScholarshipService creates a new scholarship service
func NewScholarshipService(scholarshipRepo repositories.ScholarshipRepository, ldg ledger.Ledger) *ScholarshipService {
	return &ScholarshipService{
		scholarshipRepo: scholarshipRepo,
		ledger:          ldg,
	}
}

// CreateScholarshipInput represents create scholarship input
type CreateScholarshipInput struct {
	ProviderAddress    string                   `json:"providerAddress"`
	Amount             float64                  `json:"amount"`
	EligibleLevels     []domain.EducationLevel  `json:"eligibleLevels"`
	EligibleCategories []domain.Category        `json:"eligibleCategories"`
	MaxAnnualIncome    float64                  `json:"maxAnnualIncome"`
	MinCgpa            float64                  `json:"minCgpa"`
	MaxSscScore        float64                  `json:"maxSscScore"`
}

// Create validates the criteria, submits the funding transaction and
// persists the new offer. Nothing is persisted when the ledger call
// fails, and the ledger is never called with invalid criteria.
func (s *ScholarshipService) Create(ctx context.Context, input *CreateScholarshipInput) (*models.Scholarship, error) {
	if input.ProviderAddress == "" {
		return nil, domain.NewValidationError("providerAddress", "must not be empty")
	}

	criteria := domain.Criteria{
		Amount:             input.Amount,
		EligibleLevels:     input.EligibleLevels,
		EligibleCategories: input.EligibleCategories,
		MaxAnnualIncome:    input.MaxAnnualIncome,
		MinCgpa:            input.MinCgpa,
		MaxSscScore:        input.MaxSscScore,
	}
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	scholarship := &models.Scholarship{
		ProviderAddress:    input.ProviderAddress,
		Amount:             input.Amount,
		EligibleLevels:     input.EligibleLevels,
		EligibleCategories: input.EligibleCategories,
		MaxAnnualIncome:    input.MaxAnnualIncome,
		MinCgpa:            input.MinCgpa,
		MaxSscScore:        input.MaxSscScore,
		IsActive:           true,
	}

	receipt, err := s.ledger.SubmitScholarshipFunding(ctx, scholarship)
	if err != nil {
		return nil, &domain.TransactionError{Op: "submitScholarshipFunding", Err: err}
	}
	scholarship.TxHash = receipt.TxHash

	if err := s.scholarshipRepo.Create(ctx, scholarship); err != nil {
		return nil, &domain.PersistenceError{Err: err}
	}

	return scholarship, nil
}

// GetByID gets a scholarship by ID
func (s *ScholarshipService) GetByID(ctx context.Context, id uint) (*models.Scholarship, error) {
	scholarship, err := s.scholarshipRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrScholarshipNotFound
		}
		return nil, err
	}
	return scholarship, nil
}

// ListActive lists visible scholarships in insertion order
func (s *ScholarshipService) ListActive(ctx context.Context) ([]*models.Scholarship, error) {
	return s.scholarshipRepo.ListActive(ctx)
}

// List lists all scholarships in insertion order, including inactive ones
func (s *ScholarshipService) List(ctx context.Context) ([]*models.Scholarship, error) {
	return s.scholarshipRepo.List(ctx)
}

// SetActive toggles offer visibility
func (s *ScholarshipService) SetActive(ctx context.Context, id uint, active bool) error {
	err := s.scholarshipRepo.SetActive(ctx, id, active)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrScholarshipNotFound
	}
	return err
}
