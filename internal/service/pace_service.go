package service

import (
	"context"
	"fmt"
	"time"

	"github.com/avandermeer/hearthplan/internal/domain"
	"github.com/avandermeer/hearthplan/internal/pace"
	"github.com/avandermeer/hearthplan/internal/planner"
	"github.com/avandermeer/hearthplan/internal/repository"
)

// WorkbookGauge pairs a workbook with its derived pace picture.
type WorkbookGauge struct {
	Workbook *domain.WorkbookConfig
	Result   domain.PaceGaugeResult
}

// PaceService manages workbook pacing configs and answers "are we on
// track?" questions against them.
type PaceService struct {
	workbooks repository.WorkbookRepo
	newID     planner.IDGen
	now       func() time.Time
}

func NewPaceService(workbooks repository.WorkbookRepo, newID planner.IDGen, now func() time.Time) *PaceService {
	if now == nil {
		now = time.Now
	}
	return &PaceService{workbooks: workbooks, newID: newID, now: now}
}

// AddWorkbook stores a new workbook config, assigning an ID when absent.
func (s *PaceService) AddWorkbook(ctx context.Context, w *domain.WorkbookConfig) error {
	if w.Name == "" {
		return fmt.Errorf("workbook needs a name")
	}
	if w.TotalUnits <= 0 {
		return fmt.Errorf("workbook %q needs a positive unit total", w.Name)
	}
	if w.ID == "" {
		w.ID = s.newID()
	}
	if w.UnitLabel == "" {
		w.UnitLabel = "pages"
	}
	if w.SchoolDaysPerWeek <= 0 {
		w.SchoolDaysPerWeek = 5
	}
	return s.workbooks.Create(ctx, w)
}

// RecordProgress moves the workbook's position and returns the updated
// config.
func (s *PaceService) RecordProgress(ctx context.Context, workbookID string, currentUnit int) (*domain.WorkbookConfig, error) {
	w, err := s.workbooks.GetByID(ctx, workbookID)
	if err != nil {
		return nil, err
	}
	if currentUnit < 0 {
		currentUnit = 0
	}
	w.CurrentUnit = currentUnit
	if err := s.workbooks.Update(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

// Gauge computes the pace picture for one workbook as of today.
func (s *PaceService) Gauge(ctx context.Context, workbookID string) (*WorkbookGauge, error) {
	w, err := s.workbooks.GetByID(ctx, workbookID)
	if err != nil {
		return nil, err
	}
	result := pace.CalculatePace(*w, s.now().UTC())
	return &WorkbookGauge{Workbook: w, Result: result}, nil
}

// GaugeAll computes pace for every workbook a child is working through.
func (s *PaceService) GaugeAll(ctx context.Context, childID string) ([]WorkbookGauge, error) {
	workbooks, err := s.workbooks.ListByChild(ctx, childID)
	if err != nil {
		return nil, err
	}
	today := s.now().UTC()
	gauges := make([]WorkbookGauge, 0, len(workbooks))
	for _, w := range workbooks {
		gauges = append(gauges, WorkbookGauge{Workbook: w, Result: pace.CalculatePace(*w, today)})
	}
	return gauges, nil
}

// ListWorkbooks returns a child's workbook configs.
func (s *PaceService) ListWorkbooks(ctx context.Context, childID string) ([]*domain.WorkbookConfig, error) {
	return s.workbooks.ListByChild(ctx, childID)
}

// RemoveWorkbook deletes a workbook config.
func (s *PaceService) RemoveWorkbook(ctx context.Context, workbookID string) error {
	return s.workbooks.Delete(ctx, workbookID)
}
