package domain

import "time"

// WorkbookConfig identifies one workbook and its pacing target.
type WorkbookConfig struct {
	ID                string
	ChildID           string
	Name              string
	UnitLabel         string
	TotalUnits        int
	CurrentUnit       int
	TargetFinishDate  time.Time
	SchoolDaysPerWeek int
	PlannedPerWeek    *float64 // nil = assume exactly the required rate
}

// PaceGaugeResult is the derived pacing picture for one workbook.
type PaceGaugeResult struct {
	UnitsRemaining  int
	WeeksRemaining  float64
	RequiredPerWeek float64
	PlannedPerWeek  float64
	Delta           float64
	Status          PaceStatus
	ProjectedFinish *time.Time // nil when the planned rate is zero
	BufferDays      int
	Suggestion      string
}
