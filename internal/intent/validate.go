package intent

import (
	"fmt"

	"github.com/avandermeer/hearthplan/internal/domain"
)

// Validate re-checks the structural constraints of an adjustment.
// Adjustments can be constructed programmatically as well as parsed, and
// the operators themselves apply whatever they are given, so callers run
// this before applying anything of uncertain origin.
func Validate(adj domain.Adjustment) error {
	switch a := adj.(type) {
	case domain.LightenDay:
		if domain.WeekdayIndex(a.Day) < 0 {
			return fmt.Errorf("lighten_day: %q is not a plan weekday", a.Day)
		}
	case domain.MoveSubject:
		if a.Subject == "" {
			return fmt.Errorf("move_subject: subject is required")
		}
		if len(a.ToDays) == 0 {
			return fmt.Errorf("move_subject: at least one target day is required")
		}
		for _, day := range a.ToDays {
			if domain.WeekdayIndex(day) < 0 {
				return fmt.Errorf("move_subject: %q is not a plan weekday", day)
			}
		}
	case domain.ReduceSubject:
		if a.Subject == "" {
			return fmt.Errorf("reduce_subject: subject is required")
		}
		if a.Factor <= 0 || a.Factor >= 1 {
			return fmt.Errorf("reduce_subject: factor must be strictly between 0 and 1, got %g", a.Factor)
		}
	case domain.CapSubjectTime:
		if a.Subject == "" {
			return fmt.Errorf("cap_subject_time: subject is required")
		}
		if a.MaxMinutesPerDay <= 0 {
			return fmt.Errorf("cap_subject_time: cap must be positive, got %d", a.MaxMinutesPerDay)
		}
	case nil:
		return fmt.Errorf("adjustment is nil")
	default:
		return fmt.Errorf("unknown adjustment variant %T", adj)
	}
	return nil
}
