package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/alexanderramin/yabane/internal/domain"
)

// utf8BOM keeps spreadsheet applications from misreading the encoding.
const utf8BOM = "\xef\xbb\xbf"

var memberCSVHeader = []string{"Organization", "Name", "Role", "Email", "Note"}

// BuildMemberCSV renders members as RFC 4180 CSV: UTF-8 with BOM, CRLF line
// endings, header row first.
func BuildMemberCSV(members []*domain.Member) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(utf8BOM)

	w := csv.NewWriter(&buf)
	w.UseCRLF = true
	if err := w.Write(memberCSVHeader); err != nil {
		return nil, fmt.Errorf("writing csv header: %w", err)
	}
	for _, m := range members {
		record := []string{m.Organization, m.Name, m.Role, m.Email, m.Note}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("writing member %q: %w", m.Name, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flushing csv: %w", err)
	}
	return buf.Bytes(), nil
}

// ParseMemberCSV reads member rows for import into the given project. The
// header row is skipped; a leading BOM is tolerated. Rows shorter than the
// header are padded with empty fields.
func ParseMemberCSV(data []byte, projectID int64) ([]*domain.Member, error) {
	text := strings.TrimPrefix(string(data), utf8BOM)

	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing csv: %w", err)
	}
	if len(records) <= 1 {
		return nil, nil
	}

	var members []*domain.Member
	for _, rec := range records[1:] {
		for len(rec) < len(memberCSVHeader) {
			rec = append(rec, "")
		}
		members = append(members, &domain.Member{
			ProjectID:    projectID,
			Organization: rec[0],
			Name:         rec[1],
			Role:         rec[2],
			Email:        rec[3],
			Note:         rec[4],
		})
	}
	return members, nil
}
