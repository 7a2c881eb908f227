package models

import (
	"time"

	"scholarchain/internal/core/domain"

	"gorm.io/gorm"
)

// JSON field names on these models are the schema boundary shared with
// previously stored records and must not be renamed.

// Scholarship represents the scholarships table. Criteria fields are
// immutable after creation; only IsActive may be toggled later.
type Scholarship struct {
	ID                 uint                    `gorm:"primaryKey" json:"id"`
	ProviderAddress    string                  `gorm:"size:66;not null;index" json:"providerAddress"`
	Amount             float64                 `gorm:"type:decimal(15,2);not null" json:"amount"`
	EligibleLevels     []domain.EducationLevel `gorm:"serializer:json;type:text;not null" json:"eligibleLevels"`
	EligibleCategories []domain.Category       `gorm:"serializer:json;type:text;not null" json:"eligibleCategories"`
	MaxAnnualIncome    float64                 `gorm:"type:decimal(15,2);not null" json:"maxAnnualIncome"`
	MinCgpa            float64                 `gorm:"type:decimal(4,2);not null" json:"minCgpa"`
	MaxSscScore        float64                 `gorm:"type:decimal(5,2);not null" json:"maxSscScore"`
	TxHash             string                  `gorm:"size:66" json:"txHash,omitempty"`
	IsActive           bool                    `gorm:"default:true" json:"isActive"`
	CreatedAt          time.Time               `gorm:"autoCreateTime" json:"createdAt"`
}

func (Scholarship) TableName() string {
	return "scholarships"
}

// Criteria returns the offer's eligibility criteria as a by-value
// snapshot for evaluation.
func (s *Scholarship) Criteria() domain.Criteria {
	return domain.Criteria{
		Amount:             s.Amount,
		EligibleLevels:     s.EligibleLevels,
		EligibleCategories: s.EligibleCategories,
		MaxAnnualIncome:    s.MaxAnnualIncome,
		MinCgpa:            s.MinCgpa,
		MaxSscScore:        s.MaxSscScore,
	}
}

// Application represents the applications table. A row is written exactly
// once with its terminal status and is never mutated afterwards. The
// submitted profile is denormalized onto the row for audit history;
// ScholarshipID is a weak reference by id.
type Application struct {
	ID               uint                     `gorm:"primaryKey" json:"id"`
	ScholarshipID    uint                     `gorm:"not null;index" json:"scholarshipId"`
	ApplicantAddress string                   `gorm:"size:66;not null;index" json:"applicantAddress"`
	Level            domain.EducationLevel    `gorm:"size:20;not null" json:"level"`
	Categories       []domain.Category        `gorm:"serializer:json;type:text;not null" json:"categories"`
	AnnualIncome     float64                  `gorm:"type:decimal(15,2);not null" json:"annualIncome"`
	Cgpa             float64                  `gorm:"type:decimal(4,2);not null" json:"cgpa"`
	SscScore         float64                  `gorm:"type:decimal(5,2);not null" json:"sscScore"`
	Status           domain.ApplicationStatus `gorm:"size:10;not null;index" json:"status"`
	AwardedAmount    float64                  `gorm:"type:decimal(15,2)" json:"awardedAmount"`
	TxHash           string                   `gorm:"size:66" json:"txHash,omitempty"`
	DecidedAt        time.Time                `gorm:"not null" json:"decidedAt"`
	CreatedAt        time.Time                `gorm:"autoCreateTime" json:"createdAt"`
}

func (Application) TableName() string {
	return "applications"
}

// Profile returns the denormalized profile fields of the application.
func (a *Application) Profile() domain.Profile {
	return domain.Profile{
		Level:        a.Level,
		Categories:   a.Categories,
		AnnualIncome: a.AnnualIncome,
		Cgpa:         a.Cgpa,
		SscScore:     a.SscScore,
	}
}

// AutoMigrate runs auto migration for all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Scholarship{},
		&Application{},
	)
}
