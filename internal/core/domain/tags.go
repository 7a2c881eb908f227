package domain

// EducationLevel is an education-level tag an applicant reports and a
// scholarship targets.
type EducationLevel string

const (
	LevelMatriculation   EducationLevel = "matriculation"
	LevelIntermediate    EducationLevel = "intermediate"
	LevelUndergraduation EducationLevel = "undergraduation"
	LevelPostgraduation  EducationLevel = "postgraduation"
)

// AllLevels lists every valid education-level tag.
var AllLevels = []EducationLevel{
	LevelMatriculation,
	LevelIntermediate,
	LevelUndergraduation,
	LevelPostgraduation,
}

// Valid reports whether the tag is one of the known education levels.
func (l EducationLevel) Valid() bool {
	for _, known := range AllLevels {
		if l == known {
			return true
		}
	}
	return false
}

// Category is a demographic category tag used for eligibility targeting.
type Category string

const (
	CategoryOC Category = "oc"
	CategoryBC Category = "bc"
	CategorySC Category = "sc"
	CategoryCT Category = "ct"
)

// AllCategories lists every valid category tag.
var AllCategories = []Category{CategoryOC, CategoryBC, CategorySC, CategoryCT}

// Valid reports whether the tag is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range AllCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Numeric domains for criteria and profile fields.
const (
	CgpaMin     = 0.0
	CgpaMax     = 10.0
	SscScoreMin = 0.0
	SscScoreMax = 600.0
)
