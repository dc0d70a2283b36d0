package export

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// ResumeEducation is one education row on the resume.
type ResumeEducation struct {
	Institution string
	Degree      string
	Detail      string
	Score       string
}

// ResumeExperience is one work-history row on the resume.
type ResumeExperience struct {
	Title       string
	Company     string
	Location    string
	Start       time.Time
	End         *time.Time
	Current     bool
	Description string
}

// ResumeProject is one portfolio project on the resume.
type ResumeProject struct {
	Title       string
	TechStack   string
	Description string
	Link        string
}

// ResumeEntry is a titled line with optional detail, used for
// accomplishments and certificates.
type ResumeEntry struct {
	Title  string
	Detail string
}

// Resume is the document handed to the PDF renderer. Empty sections are
// skipped entirely.
type Resume struct {
	Name            string
	Email           string
	Department      string
	Education       []ResumeEducation
	Skills          []string
	Experiences     []ResumeExperience
	Projects        []ResumeProject
	Accomplishments []ResumeEntry
	Certificates    []ResumeEntry
}

// ResumePDFExporter renders a Resume into a single-column A4 PDF.
type ResumePDFExporter struct{}

// NewResumePDFExporter constructs a resume renderer.
func NewResumePDFExporter() *ResumePDFExporter {
	return &ResumePDFExporter{}
}

// Render produces the PDF bytes for the resume.
func (e *ResumePDFExporter) Render(resume Resume) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(0, 10, resume.Name, "", 1, "C", false, 0, "")

	contact := resume.Email
	if resume.Department != "" {
		contact = fmt.Sprintf("%s | %s", resume.Email, resume.Department)
	}
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, contact, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	if len(resume.Education) > 0 {
		e.sectionTitle(pdf, "Education")
		for _, row := range resume.Education {
			pdf.SetFont("Arial", "B", 11)
			pdf.CellFormat(0, 6, row.Institution, "", 1, "", false, 0, "")
			pdf.SetFont("Arial", "", 10)
			line := row.Degree
			if row.Detail != "" {
				line = fmt.Sprintf("%s, %s", line, row.Detail)
			}
			if row.Score != "" {
				line = fmt.Sprintf("%s (%s)", line, row.Score)
			}
			pdf.MultiCell(0, 5, line, "", "", false)
			pdf.Ln(1)
		}
	}

	if len(resume.Skills) > 0 {
		e.sectionTitle(pdf, "Skills")
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(0, 5, strings.Join(resume.Skills, ", "), "", "", false)
		pdf.Ln(1)
	}

	if len(resume.Experiences) > 0 {
		e.sectionTitle(pdf, "Experience")
		for _, row := range resume.Experiences {
			pdf.SetFont("Arial", "B", 11)
			pdf.CellFormat(0, 6, fmt.Sprintf("%s - %s", row.Title, row.Company), "", 1, "", false, 0, "")
			pdf.SetFont("Arial", "I", 9)
			pdf.CellFormat(0, 5, e.dateRange(row), "", 1, "", false, 0, "")
			if row.Description != "" {
				pdf.SetFont("Arial", "", 10)
				pdf.MultiCell(0, 5, row.Description, "", "", false)
			}
			pdf.Ln(1)
		}
	}

	if len(resume.Projects) > 0 {
		e.sectionTitle(pdf, "Projects")
		for _, row := range resume.Projects {
			title := row.Title
			if row.TechStack != "" {
				title = fmt.Sprintf("%s (%s)", title, row.TechStack)
			}
			pdf.SetFont("Arial", "B", 11)
			pdf.CellFormat(0, 6, title, "", 1, "", false, 0, "")
			if row.Description != "" {
				pdf.SetFont("Arial", "", 10)
				pdf.MultiCell(0, 5, row.Description, "", "", false)
			}
			if row.Link != "" {
				pdf.SetFont("Arial", "I", 9)
				pdf.CellFormat(0, 5, row.Link, "", 1, "", false, 0, "")
			}
			pdf.Ln(1)
		}
	}

	e.entrySection(pdf, "Accomplishments", resume.Accomplishments)
	e.entrySection(pdf, "Certificates", resume.Certificates)

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render resume pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (e *ResumePDFExporter) sectionTitle(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, strings.ToUpper(title), "B", 1, "", false, 0, "")
	pdf.Ln(1)
}

func (e *ResumePDFExporter) entrySection(pdf *gofpdf.Fpdf, title string, entries []ResumeEntry) {
	if len(entries) == 0 {
		return
	}
	e.sectionTitle(pdf, title)
	for _, entry := range entries {
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(0, 5, entry.Title, "", 1, "", false, 0, "")
		if entry.Detail != "" {
			pdf.SetFont("Arial", "", 9)
			pdf.MultiCell(0, 5, entry.Detail, "", "", false)
		}
		pdf.Ln(1)
	}
}

func (e *ResumePDFExporter) dateRange(row ResumeExperience) string {
	const layout = "Jan 2006"
	end := "Present"
	if !row.Current && row.End != nil {
		end = row.End.Format(layout)
	}
	out := fmt.Sprintf("%s - %s", row.Start.Format(layout), end)
	if row.Location != "" {
		out = fmt.Sprintf("%s | %s", out, row.Location)
	}
	return out
}
