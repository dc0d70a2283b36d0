package dto

import (
	"time"

	"github.com/noah-isme/placement-go-api/internal/models"
)

// ProjectRequest creates or replaces a portfolio project.
type ProjectRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description"`
	TechStack   string `json:"tech_stack" validate:"omitempty,max=512"`
	GithubLink  string `json:"github_link" validate:"omitempty,url,max=512"`
	LiveLink    string `json:"live_link" validate:"omitempty,url,max=512"`
}

// ExperienceRequest creates or replaces a work-history entry.
type ExperienceRequest struct {
	JobTitle         string     `json:"job_title" validate:"required,max=255"`
	CompanyName      string     `json:"company_name" validate:"required,max=255"`
	JobLocation      string     `json:"job_location" validate:"omitempty,max=255"`
	Description      string     `json:"description"`
	StartDate        time.Time  `json:"start_date" validate:"required"`
	EndDate          *time.Time `json:"end_date"`
	CurrentlyWorking bool       `json:"currently_working"`
}

// AccomplishmentRequest creates or replaces an accomplishment.
type AccomplishmentRequest struct {
	Title       string     `json:"title" validate:"required,max=255"`
	Description string     `json:"description"`
	Issuer      string     `json:"issuer" validate:"omitempty,max=255"`
	Date        *time.Time `json:"date"`
}

// CertificateRequest creates or replaces a certificate entry.
type CertificateRequest struct {
	Name          string     `json:"name" validate:"required,max=255"`
	Organization  string     `json:"organization" validate:"omitempty,max=255"`
	IssueDate     *time.Time `json:"issue_date"`
	CredentialID  string     `json:"credential_id" validate:"omitempty,max=255"`
	CredentialURL string     `json:"credential_url" validate:"omitempty,url,max=512"`
}

// ApplyProject copies request fields onto the model.
func (r ProjectRequest) ApplyProject(project *models.Project) {
	project.Title = r.Title
	project.Description = r.Description
	project.TechStack = r.TechStack
	project.GithubLink = r.GithubLink
	project.LiveLink = r.LiveLink
}

// ApplyExperience copies request fields onto the model.
func (r ExperienceRequest) ApplyExperience(experience *models.Experience) {
	experience.JobTitle = r.JobTitle
	experience.CompanyName = r.CompanyName
	experience.JobLocation = r.JobLocation
	experience.Description = r.Description
	experience.StartDate = r.StartDate
	experience.EndDate = r.EndDate
	experience.CurrentlyWorking = r.CurrentlyWorking
}

// ApplyAccomplishment copies request fields onto the model.
func (r AccomplishmentRequest) ApplyAccomplishment(accomplishment *models.Accomplishment) {
	accomplishment.Title = r.Title
	accomplishment.Description = r.Description
	accomplishment.Issuer = r.Issuer
	accomplishment.Date = r.Date
}

// ApplyCertificate copies request fields onto the model.
func (r CertificateRequest) ApplyCertificate(certificate *models.Certificate) {
	certificate.Name = r.Name
	certificate.Organization = r.Organization
	certificate.IssueDate = r.IssueDate
	certificate.CredentialID = r.CredentialID
	certificate.CredentialURL = r.CredentialURL
}
