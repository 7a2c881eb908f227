package config

import (
	"log"

	"scholarchain/internal/adapters/persistence/models"
	"scholarchain/internal/core/domain"

	"gorm.io/gorm"
)

// SeedDemoScholarships seeds the two demo offers once, and only when the
// scholarships table is empty. It is invoked explicitly from main behind
// SEED_DEMO_DATA, never from a read path.
func SeedDemoScholarships(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Scholarship{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("ℹ️ Scholarships already present, skipping demo seed")
		return nil
	}

	demo := []models.Scholarship{
		{
			ProviderAddress: "0x9d2c7a8b5e1f4c6d8a3b2e9f7c4d1a6b8e5f2c9d7a4b1e8f5c2d9a6b3e7f4c1d",
			Amount:          500,
			EligibleLevels: []domain.EducationLevel{
				domain.LevelMatriculation,
				domain.LevelIntermediate,
				domain.LevelUndergraduation,
			},
			EligibleCategories: []domain.Category{
				domain.CategoryOC,
				domain.CategoryBC,
				domain.CategorySC,
				domain.CategoryCT,
			},
			MaxAnnualIncome: 500000,
			MinCgpa:         7.5,
			MaxSscScore:     500,
			IsActive:        true,
		},
		{
			ProviderAddress: "0x3e8f1c6d9a2b5e7f4c1d8a6b3e9f2c5d7a4b1e8f6c3d9a2b5e7f4c1d8a6b3e9f",
			Amount:          750,
			EligibleLevels: []domain.EducationLevel{
				domain.LevelUndergraduation,
				domain.LevelPostgraduation,
			},
			EligibleCategories: []domain.Category{
				domain.CategoryOC,
				domain.CategoryBC,
			},
			MaxAnnualIncome: 300000,
			MinCgpa:         8.0,
			MaxSscScore:     550,
			IsActive:        true,
		},
	}

	for i := range demo {
		if err := db.Create(&demo[i]).Error; err != nil {
			return err
		}
		log.Printf("   Created demo scholarship: %.0f for %v", demo[i].Amount, demo[i].EligibleLevels)
	}

	log.Println("✅ Demo scholarships seeded successfully")
	return nil
}
