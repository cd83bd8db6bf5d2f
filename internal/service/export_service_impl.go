package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/yabane/internal/domain"
	"github.com/alexanderramin/yabane/internal/export"
	"github.com/alexanderramin/yabane/internal/repository"
)

type exportService struct {
	arrows     repository.ArrowRepo
	items      repository.WbsItemRepo
	milestones repository.MilestoneRepo
	members    repository.MemberRepo
	issues     repository.IssueRepo
	purposes   repository.PurposeRepo
	observer   UseCaseObserver
}

func NewExportService(
	arrows repository.ArrowRepo,
	items repository.WbsItemRepo,
	milestones repository.MilestoneRepo,
	members repository.MemberRepo,
	issues repository.IssueRepo,
	purposes repository.PurposeRepo,
	observers ...UseCaseObserver,
) ExportService {
	return &exportService{
		arrows:     arrows,
		items:      items,
		milestones: milestones,
		members:    members,
		issues:     issues,
		purposes:   purposes,
		observer:   useCaseObserverOrNoop(observers),
	}
}

// Workbook builds the selected sheets in their fixed order and serializes
// them to xlsx bytes.
func (s *exportService) Workbook(ctx context.Context, projectID int64, sections ExportSections) (data []byte, err error) {
	startedAt := time.Now().UTC()
	var sheetNames []string
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "export-workbook",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Err:       err,
			Fields:    map[string]any{"project_id": projectID, "sheets": sheetNames},
		})
	}()

	var sheets []*export.Sheet

	if sections.Overview {
		purpose, err := s.purposes.GetByProject(ctx, projectID)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		sheets = append(sheets, export.OverviewSheet(purpose))
	}

	var arrows []*domain.Arrow
	if sections.Arrows || sections.Wbs {
		arrows, err = s.arrows.ListByProject(ctx, projectID)
		if err != nil {
			return nil, err
		}
	}
	if sections.Arrows {
		sheets = append(sheets, export.ArrowSheet(arrows))
	}
	if sections.Wbs {
		items, err := s.items.ListByProject(ctx, projectID)
		if err != nil {
			return nil, err
		}
		sheets = append(sheets, export.WbsSheet(arrows, items))
	}
	if sections.Milestones {
		milestones, err := s.milestones.ListByProject(ctx, projectID)
		if err != nil {
			return nil, err
		}
		sheets = append(sheets, export.MilestoneSheet(milestones))
	}
	if sections.Members {
		members, err := s.members.ListByProject(ctx, projectID)
		if err != nil {
			return nil, err
		}
		sheets = append(sheets, export.MemberSheet(members))
	}
	if sections.Issues {
		issues, err := s.issues.ListByProject(ctx, projectID)
		if err != nil {
			return nil, err
		}
		sheets = append(sheets, export.IssueSheet(issues))
	}

	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sections selected")
	}
	for _, sh := range sheets {
		sheetNames = append(sheetNames, sh.Name)
	}

	var buf bytes.Buffer
	if err := export.WriteWorkbook(&buf, sheets); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
