package repositories

import (
	"context"

	"scholarchain/internal/adapters/persistence/models"
)

// ScholarshipRepository defines scholarship data access.
// Offers are append-only: there is no update or delete of criteria,
// only a visibility toggle.
type ScholarshipRepository interface {
	Create(ctx context.Context, scholarship *models.Scholarship) error
	GetByID(ctx context.Context, id uint) (*models.Scholarship, error)
	List(ctx context.Context) ([]*models.Scholarship, error)
	ListActive(ctx context.Context) ([]*models.Scholarship, error)
	SetActive(ctx context.Context, id uint, active bool) error
	Count(ctx context.Context) (int64, error)
}

// ApplicationRepository defines application data access.
// Applications are append-only; no method mutates an existing row.
type ApplicationRepository interface {
	Create(ctx context.Context, application *models.Application) error
	GetByID(ctx context.Context, id uint) (*models.Application, error)
	ListByApplicant(ctx context.Context, applicantAddress string) ([]*models.Application, error)
	ListByScholarship(ctx context.Context, scholarshipID uint, offset, limit int) ([]*models.Application, int64, error)
	List(ctx context.Context) ([]*models.Application, error)
	ExistsApproved(ctx context.Context, applicantAddress string, scholarshipID uint) (bool, error)
}
