package pace

import (
	"fmt"
	"math"
	"time"

	"github.com/avandermeer/hearthplan/internal/domain"
)

// Status thresholds, expressed as delta relative to the required weekly
// rate.
const (
	aheadThreshold  = 0.20
	onTrackFloor    = -0.10
	behindFloor     = -0.30
	daysPerWeek     = 7.0
	hoursPerDaySpan = 24.0
)

// WeeksRemaining returns the (possibly fractional) weeks between today and
// target, floored at zero for past dates.
func WeeksRemaining(today, target time.Time) float64 {
	days := math.Ceil(target.Sub(today).Hours() / hoursPerDaySpan)
	if days <= 0 {
		return 0
	}
	return days / daysPerWeek
}

// CalculatePace derives required vs planned throughput toward the target
// finish date. A nil planned rate assumes the family is exactly on the
// required pace.
func CalculatePace(cfg domain.WorkbookConfig, today time.Time) domain.PaceGaugeResult {
	unitsRemaining := cfg.TotalUnits - cfg.CurrentUnit
	if unitsRemaining < 0 {
		unitsRemaining = 0
	}

	weeks := WeeksRemaining(today, cfg.TargetFinishDate)

	requiredPerWeek := float64(unitsRemaining)
	if weeks > 0 {
		requiredPerWeek = float64(unitsRemaining) / weeks
	}

	planned := requiredPerWeek
	if cfg.PlannedPerWeek != nil {
		planned = *cfg.PlannedPerWeek
	}
	delta := planned - requiredPerWeek

	result := domain.PaceGaugeResult{
		UnitsRemaining:  unitsRemaining,
		WeeksRemaining:  weeks,
		RequiredPerWeek: requiredPerWeek,
		PlannedPerWeek:  planned,
		Delta:           delta,
		Status:          classify(weeks, unitsRemaining, delta, requiredPerWeek),
	}

	if planned > 0 {
		weeksToFinish := math.Ceil(float64(unitsRemaining) / planned)
		finish := today.AddDate(0, 0, int(weeksToFinish)*7)
		result.ProjectedFinish = &finish
		buffer := int(math.Floor(weeks*daysPerWeek - float64(unitsRemaining)/planned*daysPerWeek))
		if buffer < 0 {
			buffer = 0
		}
		result.BufferDays = buffer
	}

	result.Suggestion = suggestion(result, cfg.UnitLabel)
	return result
}

func classify(weeks float64, unitsRemaining int, delta, required float64) domain.PaceStatus {
	if weeks <= 0 {
		if unitsRemaining <= 0 {
			return domain.PaceOnTrack
		}
		return domain.PaceCritical
	}
	switch {
	case delta >= aheadThreshold*required:
		return domain.PaceAhead
	case delta >= onTrackFloor*required:
		return domain.PaceOnTrack
	case delta >= behindFloor*required:
		return domain.PaceBehind
	default:
		return domain.PaceCritical
	}
}

func suggestion(r domain.PaceGaugeResult, unitLabel string) string {
	if unitLabel == "" {
		unitLabel = "pages"
	}
	switch r.Status {
	case domain.PaceAhead:
		return fmt.Sprintf("Ahead of pace with %d %s to go — a light week or two is affordable.", r.UnitsRemaining, unitLabel)
	case domain.PaceOnTrack:
		return fmt.Sprintf("On track: about %.1f %s per week keeps the target date.", r.RequiredPerWeek, unitLabel)
	case domain.PaceBehind:
		return fmt.Sprintf("Behind pace: plan %.1f %s per week, but %.1f are needed — add one short catch-up block.", r.PlannedPerWeek, unitLabel, r.RequiredPerWeek)
	default:
		return fmt.Sprintf("Critical: %d %s remain and the target date is at risk — trim the workbook or move the date.", r.UnitsRemaining, unitLabel)
	}
}
