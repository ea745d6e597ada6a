package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"voyago/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row.
var columns = []string{
	"Application ID",
	"User ID",
	"Country ID",
	"Visa Type ID",
	"Status",
	"Applicant Name",
	"Applicant Email",
	"Travel Date",
	"Submitted At",
	"Updated At",
}

// Writer wraps csv.Writer for exporting visa applications as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteApplications converts a batch of applications to CSV rows and writes them.
func (w *Writer) WriteApplications(apps []domain.VisaApplication) error {
	for i := range apps {
		row := applicationToRow(&apps[i])
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

// applicationToRow converts a single application to a string slice. Applicant
// columns come from the stored application data; if that JSON is malformed
// they are left empty and the identifier columns still export.
func applicationToRow(app *domain.VisaApplication) []string {
	row := make([]string, len(columns))

	row[0] = app.ID.String()
	row[1] = app.UserID.String()
	if app.CountryID != nil {
		row[2] = app.CountryID.String()
	}
	if app.VisaTypeID != nil {
		row[3] = app.VisaTypeID.String()
	}
	row[4] = string(app.Status)
	row[8] = app.SubmittedAt.Format(time.RFC3339)
	row[9] = app.UpdatedAt.Format(time.RFC3339)

	if len(app.ApplicationData) == 0 {
		return row
	}
	var data map[string]any
	if err := json.Unmarshal(app.ApplicationData, &data); err != nil {
		return row
	}
	row[5] = stringField(data, "full_name")
	row[6] = stringField(data, "email")
	row[7] = stringField(data, "travel_date")

	return row
}

func stringField(data map[string]any, key string) string {
	if v, ok := data[key].(string); ok {
		return v
	}
	return ""
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a name for use in Content-Disposition. Replaces
// non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized filename for Content-Disposition header.
// Format: {sanitized_name}_{YYYY-MM-DD}.csv
func BuildFilename(name string) string {
	sanitized := SanitizeFilename(name)
	date := time.Now().Format("2006-01-02")
	return fmt.Sprintf("%s_%s.csv", sanitized, date)
}
