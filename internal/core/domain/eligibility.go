package domain

// Verdict is the result of an eligibility evaluation.
type Verdict string

const (
	Eligible   Verdict = "Eligible"
	Ineligible Verdict = "Ineligible"
)

// IsEligible reports whether the verdict is Eligible.
func (v Verdict) IsEligible() bool {
	return v == Eligible
}

// Evaluate decides whether a profile matches the criteria of a
// scholarship offer. The applicant is eligible iff all of the following
// hold:
//
//  1. the profile level is one of the eligible levels,
//  2. at least one profile category is among the eligible categories
//     (intersection, not subset),
//  3. annual income does not exceed the maximum (inclusive),
//  4. CGPA is at least the minimum (inclusive),
//  5. SSC score does not exceed the maximum (inclusive).
//
// Evaluate is pure and deterministic: same inputs, same verdict. All
// five predicates are computed; the verdict is their logical AND.
// Malformed input is rejected by validation before evaluation, so
// Evaluate itself has no error conditions.
func Evaluate(profile Profile, criteria Criteria) Verdict {
	levelOK := levelMatches(profile.Level, criteria.EligibleLevels)
	categoryOK := categoriesIntersect(profile.Categories, criteria.EligibleCategories)
	incomeOK := profile.AnnualIncome <= criteria.MaxAnnualIncome
	cgpaOK := profile.Cgpa >= criteria.MinCgpa
	sscOK := profile.SscScore <= criteria.MaxSscScore

	if levelOK && categoryOK && incomeOK && cgpaOK && sscOK {
		return Eligible
	}
	return Ineligible
}

func levelMatches(level EducationLevel, eligible []EducationLevel) bool {
	for _, l := range eligible {
		if level == l {
			return true
		}
	}
	return false
}

func categoriesIntersect(have []Category, eligible []Category) bool {
	for _, c := range have {
		for _, e := range eligible {
			if c == e {
				return true
			}
		}
	}
	return false
}
