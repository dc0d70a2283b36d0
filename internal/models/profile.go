package models

import (
	"math"
	"strings"
	"time"

	"gorm.io/datatypes"
)

// Address is a reusable postal address sub-document.
type Address struct {
	Street  string `json:"street,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Pincode string `json:"pincode,omitempty"`
	Country string `json:"country,omitempty"`
}

// BasicDetails holds the personal section of a student profile.
type BasicDetails struct {
	FullName         string  `json:"full_name,omitempty"`
	DateOfBirth      string  `json:"date_of_birth,omitempty"`
	Gender           string  `json:"gender,omitempty"`
	CurrentCollege   string  `json:"current_college,omitempty"`
	PermanentAddress Address `json:"permanent_address,omitempty"`
	CurrentAddress   Address `json:"current_address,omitempty"`
}

// CurrentEducation describes the degree a student is presently enrolled in.
type CurrentEducation struct {
	InstitutionName string   `json:"institution_name,omitempty"`
	Department      string   `json:"department,omitempty"`
	Program         string   `json:"program,omitempty"`
	Branch          string   `json:"branch,omitempty"`
	CurrentSemester string   `json:"current_semester,omitempty"`
	RollNumber      string   `json:"roll_number,omitempty"`
	PassoutBatch    string   `json:"passout_batch,omitempty"`
	CGPA            *float64 `json:"cgpa,omitempty"`
}

// SchoolRecord captures a historical school qualification (class X / XII).
type SchoolRecord struct {
	Institution   string   `json:"institution,omitempty"`
	Board         string   `json:"board,omitempty"`
	Program       string   `json:"program,omitempty"`
	Branch        string   `json:"branch,omitempty"`
	EducationType string   `json:"education_type,omitempty"`
	StartingYear  int      `json:"starting_year,omitempty"`
	EndingYear    int      `json:"ending_year,omitempty"`
	Percentage    *float64 `json:"percentage,omitempty"`
}

// Education groups the current degree with historical school records.
type Education struct {
	Current  CurrentEducation `json:"current,omitempty"`
	ClassX   SchoolRecord     `json:"class_x,omitempty"`
	ClassXII SchoolRecord     `json:"class_xii,omitempty"`
}

// SkillSection is a named, ordered group of free-text skill items.
type SkillSection struct {
	Name  string   `json:"name"`
	Items []string `json:"items"`
}

// SkillSet is the full set of skill sections on a profile.
type SkillSet struct {
	Sections []SkillSection `json:"sections"`
}

// Flatten returns every skill item across all sections, in section order.
func (s SkillSet) Flatten() []string {
	var items []string
	for _, section := range s.Sections {
		items = append(items, section.Items...)
	}
	return items
}

// TechnicalItems returns items from sections named "technical" (any casing,
// substring match). Soft-skill and language sections stay out of eligibility
// matching.
func (s SkillSet) TechnicalItems() []string {
	var items []string
	for _, section := range s.Sections {
		if strings.Contains(strings.ToLower(section.Name), "technical") {
			items = append(items, section.Items...)
		}
	}
	return items
}

// ProfileCompletion tracks which profile sections have been filled in.
// Overall is a cache recomputed from the three booleans on every write.
type ProfileCompletion struct {
	BasicDetails bool `json:"basic_details"`
	Education    bool `json:"education"`
	Skills       bool `json:"skills"`
	Overall      int  `json:"overall"`
}

// Recompute refreshes Overall as the rounded mean of the section flags.
func (p *ProfileCompletion) Recompute() {
	done := 0
	for _, flag := range []bool{p.BasicDetails, p.Education, p.Skills} {
		if flag {
			done++
		}
	}
	p.Overall = int(math.Round(float64(done) / 3 * 100))
}

// Profile is the one-to-one student profile document.
type Profile struct {
	ID            uint                              `gorm:"primaryKey" json:"id"`
	UserID        uint                              `gorm:"uniqueIndex;not null" json:"user_id"`
	BasicDetails  datatypes.JSONType[BasicDetails]  `json:"basic_details"`
	Education     datatypes.JSONType[Education]     `json:"education"`
	Skills        datatypes.JSONType[SkillSet]      `json:"skills"`
	PhotoURL      string                            `gorm:"size:512" json:"photo_url,omitempty"`
	PhotoPublicID string                            `gorm:"size:255" json:"-"`
	Completion    datatypes.JSONType[ProfileCompletion] `json:"completion"`
	CreatedAt     time.Time                         `json:"created_at"`
	UpdatedAt     time.Time                         `json:"updated_at"`
}
