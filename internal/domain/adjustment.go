package domain

import (
	"encoding/json"
	"fmt"
)

// Adjustment is the closed set of plan-reshaping operators. Each variant is
// a struct so operator application can pattern-match exhaustively instead of
// dispatching on strings.
type Adjustment interface {
	adjustment()
	Kind() AdjustmentKind
}

type AdjustmentKind string

const (
	KindLightenDay     AdjustmentKind = "lighten_day"
	KindMoveSubject    AdjustmentKind = "move_subject"
	KindReduceSubject  AdjustmentKind = "reduce_subject"
	KindCapSubjectTime AdjustmentKind = "cap_subject_time"
)

// LightenDay halves the day's non-essential items and, if the day is still
// over budget, parks half of them.
type LightenDay struct {
	Day Weekday `json:"day"`
}

// MoveSubject confines a subject's items to the given days by toggling
// acceptance; it never creates items on target days.
type MoveSubject struct {
	Subject SubjectBucket `json:"subject"`
	ToDays  []Weekday     `json:"to_days"`
}

// ReduceSubject scales a subject's item minutes by Factor (ceiling).
type ReduceSubject struct {
	Subject SubjectBucket `json:"subject"`
	Factor  float64       `json:"factor"`
}

// CapSubjectTime clamps a subject's item minutes down to a per-day maximum.
type CapSubjectTime struct {
	Subject          SubjectBucket `json:"subject"`
	MaxMinutesPerDay int           `json:"max_minutes_per_day"`
}

func (LightenDay) adjustment()     {}
func (MoveSubject) adjustment()    {}
func (ReduceSubject) adjustment()  {}
func (CapSubjectTime) adjustment() {}

func (LightenDay) Kind() AdjustmentKind     { return KindLightenDay }
func (MoveSubject) Kind() AdjustmentKind    { return KindMoveSubject }
func (ReduceSubject) Kind() AdjustmentKind  { return KindReduceSubject }
func (CapSubjectTime) Kind() AdjustmentKind { return KindCapSubjectTime }

// EncodeAdjustment serializes an adjustment for document storage.
func EncodeAdjustment(adj Adjustment) (kind AdjustmentKind, doc []byte, err error) {
	doc, err = json.Marshal(adj)
	if err != nil {
		return "", nil, fmt.Errorf("encoding %s adjustment: %w", adj.Kind(), err)
	}
	return adj.Kind(), doc, nil
}

// DecodeAdjustment reverses EncodeAdjustment.
func DecodeAdjustment(kind AdjustmentKind, doc []byte) (Adjustment, error) {
	switch kind {
	case KindLightenDay:
		var a LightenDay
		if err := json.Unmarshal(doc, &a); err != nil {
			return nil, fmt.Errorf("decoding lighten_day: %w", err)
		}
		return a, nil
	case KindMoveSubject:
		var a MoveSubject
		if err := json.Unmarshal(doc, &a); err != nil {
			return nil, fmt.Errorf("decoding move_subject: %w", err)
		}
		return a, nil
	case KindReduceSubject:
		var a ReduceSubject
		if err := json.Unmarshal(doc, &a); err != nil {
			return nil, fmt.Errorf("decoding reduce_subject: %w", err)
		}
		return a, nil
	case KindCapSubjectTime:
		var a CapSubjectTime
		if err := json.Unmarshal(doc, &a); err != nil {
			return nil, fmt.Errorf("decoding cap_subject_time: %w", err)
		}
		return a, nil
	default:
		return nil, fmt.Errorf("unknown adjustment kind %q", kind)
	}
}
