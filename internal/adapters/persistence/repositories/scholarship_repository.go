package repositories

import (
	"context"

	"scholarchain/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// scholarshipRepository implements ScholarshipRepository interface
type scholarshipRepository struct {
	db *gorm.DB
}

// NewScholarshipRepository creates a new scholarship repository
func NewScholarshipRepository(db *gorm.DB) ScholarshipRepository {
	return &scholarshipRepository{db: db}
}

// Create appends a new scholarship offer
func (r *scholarshipRepository) Create(ctx context.Context, scholarship *models.Scholarship) error {
	return r.db.WithContext(ctx).Create(scholarship).Error
}

// GetByID gets a scholarship by ID
func (r *scholarshipRepository) GetByID(ctx context.Context, id uint) (*models.Scholarship, error) {
	var scholarship models.Scholarship
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&scholarship).Error
	if err != nil {
		return nil, err
	}
	return &scholarship, nil
}

// List lists all scholarships in insertion order
func (r *scholarshipRepository) List(ctx context.Context) ([]*models.Scholarship, error) {
	var scholarships []*models.Scholarship
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&scholarships).Error
	return scholarships, err
}

// ListActive lists active scholarships in insertion order
func (r *scholarshipRepository) ListActive(ctx context.Context) ([]*models.Scholarship, error) {
	var scholarships []*models.Scholarship
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("id ASC").
		Find(&scholarships).Error
	return scholarships, err
}

// SetActive toggles offer visibility. Criteria columns are never touched.
func (r *scholarshipRepository) SetActive(ctx context.Context, id uint, active bool) error {
	result := r.db.WithContext(ctx).
		Model(&models.Scholarship{}).
		Where("id = ?", id).
		Update("is_active", active)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Count counts all scholarships
func (r *scholarshipRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Scholarship{}).Count(&count).Error
	return count, err
}
