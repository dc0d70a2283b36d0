package service

import (
	"strings"

	"github.com/noah-isme/placement-go-api/internal/models"
)

// Candidate pairs a student account with its resolved profile. A nil profile
// means the student never filled one in and is excluded from every
// criteria-based share.
type Candidate struct {
	User    models.User
	Profile *models.Profile
}

// FilterEligible returns the subsequence of candidates satisfying every
// populated axis of the criteria, preserving input order. An empty criteria
// accepts all candidates that carry a profile. The function is total: it never
// errors and has no side effects.
func FilterEligible(candidates []Candidate, criteria models.ShareCriteria) []Candidate {
	eligible := make([]Candidate, 0, len(candidates))
	for _, candidate := range candidates {
		if matchesCriteria(candidate, criteria) {
			eligible = append(eligible, candidate)
		}
	}
	return eligible
}

func matchesCriteria(candidate Candidate, criteria models.ShareCriteria) bool {
	if candidate.Profile == nil {
		return false
	}

	education := candidate.Profile.Education.Data().Current

	if criteria.MinCGPA != nil {
		if education.CGPA == nil || *education.CGPA < *criteria.MinCGPA {
			return false
		}
	}
	if criteria.MaxCGPA != nil {
		if education.CGPA == nil || *education.CGPA > *criteria.MaxCGPA {
			return false
		}
	}

	if len(criteria.Branches) > 0 && !containsLabel(criteria.Branches, education.Branch) {
		return false
	}
	if len(criteria.Programs) > 0 && !containsLabel(criteria.Programs, education.Program) {
		return false
	}
	// Passout years are compared as their original string labels, never
	// coerced to integers.
	if len(criteria.PassoutYears) > 0 && !containsLabel(criteria.PassoutYears, education.PassoutBatch) {
		return false
	}

	if len(criteria.RequiredSkills) > 0 {
		// Only technical sections count: a "Soft Skills" item must not
		// satisfy a required skill.
		skills := candidate.Profile.Skills.Data().TechnicalItems()
		for _, required := range criteria.RequiredSkills {
			if !hasSkill(skills, required) {
				return false
			}
		}
	}

	return true
}

func containsLabel(set []string, value string) bool {
	if value == "" {
		return false
	}
	for _, label := range set {
		if label == value {
			return true
		}
	}
	return false
}

// hasSkill matches by case-insensitive substring containment, so the query
// "script" matches a "JavaScript" skill item.
func hasSkill(skills []string, query string) bool {
	needle := strings.ToLower(query)
	for _, skill := range skills {
		if strings.Contains(strings.ToLower(skill), needle) {
			return true
		}
	}
	return false
}
