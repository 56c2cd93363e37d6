package planner

import (
	"testing"

	"github.com/avandermeer/hearthplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func appBlocks() []domain.AppBlock {
	return []domain.AppBlock{
		{Label: "Reading Eggs", DefaultMinutes: 15},
		{Label: "Math app", DefaultMinutes: 10},
	}
}

func TestGenerateDraftPlan_EmptyInputsSeedAppBlocksOnly(t *testing.T) {
	plan := GenerateDraftPlan(GenerateInput{
		HoursPerDay: 2,
		AppBlocks:   appBlocks(),
		NewID:       NewSequenceGen("it"),
	})

	total := 0
	for i, day := range plan.Days {
		assert.Equal(t, domain.Weekdays[i], day.Day)
		assert.Equal(t, 120, day.TimeBudgetMinutes)
		require.Len(t, day.Items, 2)
		for _, item := range day.Items {
			assert.True(t, item.IsAppBlock)
			assert.True(t, item.Accepted)
		}
		total += len(day.Items)
	}
	assert.Equal(t, 10, total)
	assert.Empty(t, plan.SkipSuggestions)
	assert.NotEmpty(t, plan.MinimumWinText)
}

func TestGenerateDraftPlan_EmergingSkillRepsEveryDay(t *testing.T) {
	snap := &domain.SkillSnapshot{
		ChildID: "child-1",
		PrioritySkills: []domain.PrioritySkill{
			{Tag: "motor.handwriting.letters", Label: "Letter formation", Level: domain.LevelEmerging},
		},
	}
	plan := GenerateDraftPlan(GenerateInput{
		Snapshot:    snap,
		HoursPerDay: 1,
		NewID:       NewSequenceGen("it"),
	})

	for _, day := range plan.Days {
		require.Len(t, day.Items, 1, string(day.Day))
		item := day.Items[0]
		assert.Equal(t, "Letter formation (micro rep)", item.Title)
		assert.Equal(t, 8, item.EstimatedMinutes)
		assert.Equal(t, []string{"motor.handwriting.letters"}, item.SkillTags)
	}
}

func TestGenerateDraftPlan_DevelopingSkillHitsMonWedFri(t *testing.T) {
	snap := &domain.SkillSnapshot{
		ChildID: "child-1",
		PrioritySkills: []domain.PrioritySkill{
			{Tag: "math.subtraction.regroup", Label: "Regrouping", Level: domain.LevelDeveloping},
		},
	}
	plan := GenerateDraftPlan(GenerateInput{
		Snapshot:    snap,
		HoursPerDay: 1,
		NewID:       NewSequenceGen("it"),
	})

	for i, day := range plan.Days {
		if i == 0 || i == 2 || i == 4 {
			require.Len(t, day.Items, 1, string(day.Day))
			assert.Equal(t, 15, day.Items[0].EstimatedMinutes)
		} else {
			assert.Empty(t, day.Items, string(day.Day))
		}
	}
}

func TestGenerateDraftPlan_GreedyPlacementPrefersMostRemaining(t *testing.T) {
	assignments := []domain.AssignmentCandidate{
		{ID: "a1", Subject: domain.SubjectMath, WorkbookName: "MM", LessonName: "p1", EstimatedMinutes: 20, Action: domain.ActionKeep},
		{ID: "a2", Subject: domain.SubjectMath, WorkbookName: "MM", LessonName: "p2", EstimatedMinutes: 20, Action: domain.ActionKeep},
		{ID: "a3", Subject: domain.SubjectMath, WorkbookName: "MM", LessonName: "p3", EstimatedMinutes: 20, Action: domain.ActionKeep},
	}
	plan := GenerateDraftPlan(GenerateInput{
		HoursPerDay: 1,
		Assignments: assignments,
		NewID:       NewSequenceGen("it"),
	})

	// All budgets tie at 60: ties resolve to the earliest day scanned.
	assert.Equal(t, "a1", plan.Days[0].Items[0].AssignmentID)
	assert.Equal(t, "a2", plan.Days[1].Items[0].AssignmentID)
	assert.Equal(t, "a3", plan.Days[2].Items[0].AssignmentID)
}

func TestGenerateDraftPlan_ModifyShrinksToSixtyPercent(t *testing.T) {
	assignments := []domain.AssignmentCandidate{
		{ID: "a1", Subject: domain.SubjectMath, WorkbookName: "MM", LessonName: "long page", EstimatedMinutes: 25, Action: domain.ActionKeep},
	}
	plan := GenerateDraftPlan(GenerateInput{
		HoursPerDay: 1,
		Assignments: assignments,
		NewID:       NewSequenceGen("it"),
	})

	// 25 min trips the long-task rule, so the item lands modified: ceil(25*0.6).
	require.Len(t, plan.Days[0].Items, 1)
	assert.Equal(t, 15, plan.Days[0].Items[0].EstimatedMinutes)
	require.Len(t, plan.SkipSuggestions, 1)
	assert.Equal(t, "long task", plan.SkipSuggestions[0].Reason)
	require.NotNil(t, plan.Days[0].Items[0].SkipSuggestion)
}

func TestGenerateDraftPlan_SkippedAssignmentsAreDropped(t *testing.T) {
	assignments := []domain.AssignmentCandidate{
		{ID: "a1", Subject: domain.SubjectMath, WorkbookName: "MM", LessonName: "p1", EstimatedMinutes: 15, Action: domain.ActionSkip},
	}
	plan := GenerateDraftPlan(GenerateInput{
		HoursPerDay: 1,
		Assignments: assignments,
		NewID:       NewSequenceGen("it"),
	})

	for _, day := range plan.Days {
		assert.Empty(t, day.Items)
	}
}

func TestGenerateDraftPlan_BudgetsAreSoft(t *testing.T) {
	// App blocks alone exceed the day: remaining clamps to 0 but items stay.
	plan := GenerateDraftPlan(GenerateInput{
		HoursPerDay: 0.25,
		AppBlocks:   appBlocks(),
		Assignments: []domain.AssignmentCandidate{
			{ID: "a1", Subject: domain.SubjectMath, WorkbookName: "MM", LessonName: "p1", EstimatedMinutes: 10, Action: domain.ActionKeep},
		},
		NewID: NewSequenceGen("it"),
	})

	require.Len(t, plan.Days[0].Items, 3)
	assert.Greater(t, plan.Days[0].AcceptedMinutes(), plan.Days[0].TimeBudgetMinutes)
}

func TestGenerateDraftPlan_AdjustmentsApplyInOrder(t *testing.T) {
	assignments := []domain.AssignmentCandidate{
		{ID: "a1", Subject: domain.SubjectMath, WorkbookName: "MM", LessonName: "p1", EstimatedMinutes: 18, Action: domain.ActionKeep},
	}
	// 18-minute item: cap to 10 then halve => 5; the reverse would be 9.
	plan := GenerateDraftPlan(GenerateInput{
		HoursPerDay: 2,
		Assignments: assignments,
		Adjustments: []domain.Adjustment{
			domain.CapSubjectTime{Subject: domain.SubjectMath, MaxMinutesPerDay: 10},
			domain.ReduceSubject{Subject: domain.SubjectMath, Factor: 0.5},
		},
		NewID: NewSequenceGen("it"),
	})

	require.Len(t, plan.Days[0].Items, 1)
	assert.Equal(t, 5, plan.Days[0].Items[0].EstimatedMinutes)
}
