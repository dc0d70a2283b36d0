package export

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCSVExporterRender(t *testing.T) {
	exporter := NewCSVExporter()

	content, err := exporter.Render(Dataset{
		Headers: []string{"ID", "Name", "Email"},
		Rows: []map[string]string{
			{"ID": "1", "Name": "Asha Rao", "Email": "asha@example.com"},
			{"ID": "2", "Name": "Vikram Shah"},
		},
	})
	require.NoError(t, err)

	require.Equal(t, "ID,Name,Email\n1,Asha Rao,asha@example.com\n2,Vikram Shah,\n", string(content))
}

func TestCSVExporterQuotesSpecialCharacters(t *testing.T) {
	exporter := NewCSVExporter()

	content, err := exporter.Render(Dataset{
		Headers: []string{"Name", "Note"},
		Rows: []map[string]string{
			{"Name": "Rao, Asha", "Note": "said \"hi\""},
		},
	})
	require.NoError(t, err)

	require.Equal(t, "Name,Note\n\"Rao, Asha\",\"said \"\"hi\"\"\"\n", string(content))
}

func TestCSVExporterRequiresHeaders(t *testing.T) {
	exporter := NewCSVExporter()

	_, err := exporter.Render(Dataset{})
	require.Error(t, err)
}
