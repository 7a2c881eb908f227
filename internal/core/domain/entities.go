package domain

// ApplicationStatus represents the terminal state of an application
type ApplicationStatus string

const (
	StatusApproved ApplicationStatus = "Approved"
	StatusRejected ApplicationStatus = "Rejected"
	// StatusPending is reserved for a future asynchronous ledger flow where
	// the decision is not known at submission time. No current transition
	// produces it.
	StatusPending ApplicationStatus = "Pending"
)

// Criteria holds the eligibility criteria of a scholarship offer.
// All bounds are inclusive. Criteria are immutable after the offer is
// created.
type Criteria struct {
	Amount             float64
	EligibleLevels     []EducationLevel
	EligibleCategories []Category
	MaxAnnualIncome    float64
	MinCgpa            float64
	MaxSscScore        float64
}

// Validate checks every criteria field against its domain.
func (c Criteria) Validate() error {
	if c.Amount <= 0 {
		return NewValidationError("amount", "must be greater than 0")
	}
	if len(c.EligibleLevels) == 0 {
		return NewValidationError("eligibleLevels", "must not be empty")
	}
	for _, level := range c.EligibleLevels {
		if !level.Valid() {
			return NewValidationError("eligibleLevels", "unknown education level: "+string(level))
		}
	}
	if len(c.EligibleCategories) == 0 {
		return NewValidationError("eligibleCategories", "must not be empty")
	}
	for _, cat := range c.EligibleCategories {
		if !cat.Valid() {
			return NewValidationError("eligibleCategories", "unknown category: "+string(cat))
		}
	}
	if c.MaxAnnualIncome <= 0 {
		return NewValidationError("maxAnnualIncome", "must be greater than 0")
	}
	if c.MinCgpa < CgpaMin || c.MinCgpa > CgpaMax {
		return NewValidationError("minCgpa", "must be between 0 and 10")
	}
	if c.MaxSscScore < SscScoreMin || c.MaxSscScore > SscScoreMax {
		return NewValidationError("maxSscScore", "must be between 0 and 600")
	}
	return nil
}

// Profile is the applicant-submitted input an application is decided on.
// It is transient: the lifecycle manager copies its fields onto the
// persisted application, the profile itself is never stored.
type Profile struct {
	Level        EducationLevel
	Categories   []Category
	AnnualIncome float64
	Cgpa         float64
	SscScore     float64
}

// Validate checks every profile field against its domain.
func (p Profile) Validate() error {
	if !p.Level.Valid() {
		return NewValidationError("level", "unknown education level: "+string(p.Level))
	}
	if len(p.Categories) == 0 {
		return NewValidationError("categories", "must not be empty")
	}
	for _, cat := range p.Categories {
		if !cat.Valid() {
			return NewValidationError("categories", "unknown category: "+string(cat))
		}
	}
	if p.AnnualIncome <= 0 {
		return NewValidationError("annualIncome", "must be greater than 0")
	}
	if p.Cgpa < CgpaMin || p.Cgpa > CgpaMax {
		return NewValidationError("cgpa", "must be between 0 and 10")
	}
	if p.SscScore < SscScoreMin || p.SscScore > SscScoreMax {
		return NewValidationError("sscScore", "must be between 0 and 600")
	}
	return nil
}
