package export

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestResumePDFExporterRender(t *testing.T) {
	exporter := NewResumePDFExporter()

	end := time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC)
	content, err := exporter.Render(Resume{
		Name:       "Asha Rao",
		Email:      "asha@example.com",
		Department: "CSE",
		Education: []ResumeEducation{
			{Institution: "NIT Trichy", Degree: "B.Tech", Detail: "Computer Science", Score: "CGPA 8.25"},
		},
		Skills: []string{"Go", "SQL", "Docker"},
		Experiences: []ResumeExperience{
			{
				Title:       "Backend Intern",
				Company:     "Streamline Systems",
				Location:    "Pune",
				Start:       time.Date(2025, time.January, 6, 0, 0, 0, 0, time.UTC),
				End:         &end,
				Description: "Built ingestion pipelines.",
			},
		},
		Projects: []ResumeProject{
			{Title: "Campus Portal", TechStack: "Go, Postgres", Description: "Placement tracking portal."},
		},
		Accomplishments: []ResumeEntry{{Title: "Hackathon winner", Detail: "Smart India Hackathon 2024"}},
		Certificates:    []ResumeEntry{{Title: "AWS Cloud Practitioner"}},
	})
	require.NoError(t, err)
	require.NotEmpty(t, content)
	require.Equal(t, "%PDF", string(content[:4]))
}

func TestResumePDFExporterRenderMinimal(t *testing.T) {
	exporter := NewResumePDFExporter()

	content, err := exporter.Render(Resume{Name: "Asha Rao", Email: "asha@example.com"})
	require.NoError(t, err)
	require.Equal(t, "%PDF", string(content[:4]))
}

func TestResumeDateRange(t *testing.T) {
	exporter := NewResumePDFExporter()
	start := time.Date(2025, time.January, 6, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC)

	require.Equal(t, "Jan 2025 - Jun 2025", exporter.dateRange(ResumeExperience{Start: start, End: &end}))
	require.Equal(t, "Jan 2025 - Present", exporter.dateRange(ResumeExperience{Start: start, Current: true}))
	require.Equal(t, "Jan 2025 - Present | Pune", exporter.dateRange(ResumeExperience{Start: start, Current: true, Location: "Pune"}))
}
