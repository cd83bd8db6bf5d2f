package export

import (
	"strings"

	"github.com/alexanderramin/yabane/internal/domain"
)

// priorityLabels maps the stored priority enum to display text.
var priorityLabels = map[string]string{
	"low": "Low", "medium": "Medium", "high": "High", "critical": "Critical",
}

// issueStatusLabels maps the stored issue status enum to display text.
var issueStatusLabels = map[string]string{
	"open": "Open", "in_progress": "In progress", "resolved": "Resolved", "closed": "Closed",
}

// OverviewSheet renders the purpose block as label/value pairs. A nil
// purpose still produces the labeled skeleton.
func OverviewSheet(p *domain.Purpose) *Sheet {
	s := NewSheet("Overview")
	fields := []struct {
		label string
		value string
	}{
		{"Background", ""},
		{"Objective", ""},
		{"Scope", ""},
		{"Out of scope", ""},
		{"Assumptions", ""},
	}
	if p != nil {
		fields[0].value = p.Background
		fields[1].value = p.Objective
		fields[2].value = p.Scope
		fields[3].value = p.OutOfScope
		fields[4].value = p.Assumption
	}
	for i, f := range fields {
		s.Set(i, 0, labelCell(f.label))
		s.Set(i, 1, textCell(f.value))
		s.RowHeights[i] = 60
	}
	s.ColWidths = []float64{14, 80}
	return s
}

// MilestoneSheet renders one row per milestone with a color swatch cell.
func MilestoneSheet(milestones []*domain.Milestone) *Sheet {
	s := NewSheet("Milestones")
	for c, h := range []string{"Name", "Description", "Due", "Color"} {
		s.Set(0, c, headerCell(h))
	}
	for i, m := range milestones {
		r := i + 1
		s.Set(r, 0, textCell(m.Name))
		s.Set(r, 1, textCell(m.Description))
		s.Set(r, 2, textCell(dateString(m.DueDate)))
		s.Set(r, 3, Cell{
			Value: m.Color,
			Style: StyleSwatch,
			Fill:  strings.TrimPrefix(m.Color, "#"),
		})
	}
	s.ColWidths = []float64{24, 40, 14, 10}
	return s
}

// MemberSheet renders the stakeholder list.
func MemberSheet(members []*domain.Member) *Sheet {
	s := NewSheet("Members")
	for c, h := range []string{"Organization", "Name", "Role", "Email", "Note"} {
		s.Set(0, c, headerCell(h))
	}
	for i, m := range members {
		r := i + 1
		s.Set(r, 0, textCell(m.Organization))
		s.Set(r, 1, textCell(m.Name))
		s.Set(r, 2, textCell(m.Role))
		s.Set(r, 3, textCell(m.Email))
		s.Set(r, 4, textCell(m.Note))
	}
	s.ColWidths = []float64{20, 16, 16, 28, 40}
	return s
}

// IssueSheet renders the issue list.
func IssueSheet(issues []*domain.Issue) *Sheet {
	s := NewSheet("Issues")
	for c, h := range []string{"Title", "Description", "Priority", "Status", "Owner", "Due", "Resolution"} {
		s.Set(0, c, headerCell(h))
	}
	for i, iss := range issues {
		r := i + 1
		s.Set(r, 0, textCell(iss.Title))
		s.Set(r, 1, textCell(iss.Description))
		s.Set(r, 2, textCell(enumLabel(priorityLabels, string(iss.Priority))))
		s.Set(r, 3, textCell(enumLabel(issueStatusLabels, string(iss.Status))))
		s.Set(r, 4, textCell(iss.Owner))
		s.Set(r, 5, textCell(dateString(iss.DueDate)))
		s.Set(r, 6, textCell(iss.Resolution))
	}
	s.ColWidths = []float64{30, 40, 10, 12, 12, 12, 40}
	return s
}

func enumLabel(labels map[string]string, v string) string {
	if l, ok := labels[v]; ok {
		return l
	}
	return v
}
