package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func baseCriteria() Criteria {
	return Criteria{
		Amount:             5.0,
		EligibleLevels:     []EducationLevel{LevelUndergraduation, LevelPostgraduation},
		EligibleCategories: []Category{CategoryOC, CategoryBC, CategorySC},
		MaxAnnualIncome:    500,
		MinCgpa:            7.5,
		MaxSscScore:        450,
	}
}

func baseProfile() Profile {
	return Profile{
		Level:        LevelUndergraduation,
		Categories:   []Category{CategoryBC},
		AnnualIncome: 400,
		Cgpa:         8.0,
		SscScore:     420,
	}
}

func TestEvaluate_AllPredicatesHold(t *testing.T) {
	verdict := Evaluate(baseProfile(), baseCriteria())

	assert.Equal(t, Eligible, verdict)
	assert.True(t, verdict.IsEligible())
}

func TestEvaluate_AnyFailingPredicateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *Profile)
	}{
		{
			name: "level not in eligible levels",
			mutate: func(p *Profile) {
				p.Level = LevelMatriculation
			},
		},
		{
			name: "no category intersection",
			mutate: func(p *Profile) {
				p.Categories = []Category{CategoryCT}
			},
		},
		{
			name: "income exceeds bound",
			mutate: func(p *Profile) {
				p.AnnualIncome = 600
			},
		},
		{
			name: "cgpa below minimum",
			mutate: func(p *Profile) {
				p.Cgpa = 7.4
			},
		},
		{
			name: "ssc score exceeds bound",
			mutate: func(p *Profile) {
				p.SscScore = 451
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := baseProfile()
			tt.mutate(&profile)

			verdict := Evaluate(profile, baseCriteria())

			assert.Equal(t, Ineligible, verdict)
		})
	}
}

// Category matching is intersection, not subset: one shared tag is
// enough even when other profile tags are not covered by the offer.
func TestEvaluate_CategoryIntersectionNotSubset(t *testing.T) {
	criteria := baseCriteria()
	criteria.EligibleCategories = []Category{CategorySC, CategoryCT}

	profile := baseProfile()
	profile.Categories = []Category{CategoryBC, CategorySC}

	assert.Equal(t, Eligible, Evaluate(profile, criteria))
}

// All numeric bounds are inclusive.
func TestEvaluate_BoundaryInclusivity(t *testing.T) {
	criteria := baseCriteria()

	profile := baseProfile()
	profile.AnnualIncome = criteria.MaxAnnualIncome
	profile.Cgpa = criteria.MinCgpa
	profile.SscScore = criteria.MaxSscScore

	assert.Equal(t, Eligible, Evaluate(profile, criteria))
}

func TestEvaluate_Deterministic(t *testing.T) {
	profile := baseProfile()
	criteria := baseCriteria()

	first := Evaluate(profile, criteria)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, Evaluate(profile, criteria))
	}
}

func TestEvaluate_MultipleEligibleLevels(t *testing.T) {
	criteria := baseCriteria()

	profile := baseProfile()
	profile.Level = LevelPostgraduation

	assert.Equal(t, Eligible, Evaluate(profile, criteria))
}
