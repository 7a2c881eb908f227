package repositories

import (
	"context"

	"scholarchain/internal/adapters/persistence/models"
	"scholarchain/internal/core/domain"

	"gorm.io/gorm"
)

// applicationRepository implements ApplicationRepository interface
type applicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

// Create appends a new application record
func (r *applicationRepository) Create(ctx context.Context, application *models.Application) error {
	return r.db.WithContext(ctx).Create(application).Error
}

// GetByID gets an application by ID
func (r *applicationRepository) GetByID(ctx context.Context, id uint) (*models.Application, error) {
	var application models.Application
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&application).Error
	if err != nil {
		return nil, err
	}
	return &application, nil
}

// ListByApplicant lists applications by exact applicant address in
// insertion order
func (r *applicationRepository) ListByApplicant(ctx context.Context, applicantAddress string) ([]*models.Application, error) {
	var applications []*models.Application
	err := r.db.WithContext(ctx).
		Where("applicant_address = ?", applicantAddress).
		Order("id ASC").
		Find(&applications).Error
	return applications, err
}

// ListByScholarship lists applications for a scholarship in insertion
// order, with pagination
func (r *applicationRepository) ListByScholarship(ctx context.Context, scholarshipID uint, offset, limit int) ([]*models.Application, int64, error) {
	var applications []*models.Application
	var total int64

	if err := r.db.WithContext(ctx).
		Model(&models.Application{}).
		Where("scholarship_id = ?", scholarshipID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Where("scholarship_id = ?", scholarshipID).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&applications).Error

	return applications, total, err
}

// List lists all applications in insertion order
func (r *applicationRepository) List(ctx context.Context) ([]*models.Application, error) {
	var applications []*models.Application
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&applications).Error
	return applications, err
}

// ExistsApproved reports whether an approved application already exists
// for the (applicant, scholarship) pair
func (r *applicationRepository) ExistsApproved(ctx context.Context, applicantAddress string, scholarshipID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Application{}).
		Where("applicant_address = ? AND scholarship_id = ? AND status = ?",
			applicantAddress, scholarshipID, domain.StatusApproved).
		Count(&count).Error
	return count > 0, err
}
