package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dbhook-notifier/internal/models"
)

var mealPlanRule = Rule{Schema: "public", Table: "meal_plan", Inserts: true}

var userRule = Rule{
	Schema:          "public",
	Table:           "user",
	Inserts:         true,
	OnboardingField: "onboarding",
}

func event(typ, schema, table string, rec, old models.Record) *models.ChangeEvent {
	return &models.ChangeEvent{Type: typ, Schema: schema, Table: table, Record: rec, OldRecord: old}
}

func TestMealPlanRule(t *testing.T) {
	tests := []struct {
		name string
		ev   *models.ChangeEvent
		want Decision
	}{
		{"insert matches", event("INSERT", "public", "meal_plan", nil, nil), HandleInsert},
		{"update ignored", event("UPDATE", "public", "meal_plan", nil, nil), Ignore},
		{"delete ignored", event("DELETE", "public", "meal_plan", nil, nil), Ignore},
		{"wrong table", event("INSERT", "public", "user", nil, nil), Ignore},
		{"wrong schema", event("INSERT", "audit", "meal_plan", nil, nil), Ignore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mealPlanRule.Decide(tt.ev))
		})
	}
}

func TestUserRule(t *testing.T) {
	tests := []struct {
		name string
		ev   *models.ChangeEvent
		want Decision
	}{
		{
			"insert matches",
			event("INSERT", "public", "user", models.Record{"email": "a@b.c"}, nil),
			HandleInsert,
		},
		{
			"onboarding false to true",
			event("UPDATE", "public", "user",
				models.Record{"onboarding": true},
				models.Record{"onboarding": false}),
			HandleOnboarding,
		},
		{
			"onboarding absent to true",
			event("UPDATE", "public", "user",
				models.Record{"onboarding": true},
				models.Record{}),
			HandleOnboarding,
		},
		{
			"onboarding already true",
			event("UPDATE", "public", "user",
				models.Record{"onboarding": true},
				models.Record{"onboarding": true}),
			Ignore,
		},
		{
			"onboarding stays false",
			event("UPDATE", "public", "user",
				models.Record{"onboarding": false},
				models.Record{"onboarding": false}),
			Ignore,
		},
		{
			"onboarding true to false",
			event("UPDATE", "public", "user",
				models.Record{"onboarding": false},
				models.Record{"onboarding": true}),
			Ignore,
		},
		{
			"onboarding non-boolean",
			event("UPDATE", "public", "user",
				models.Record{"onboarding": "true"},
				models.Record{}),
			Ignore,
		},
		{
			"delete ignored",
			event("DELETE", "public", "user", nil, nil),
			Ignore,
		},
		{
			"wrong table update",
			event("UPDATE", "public", "meal_plan",
				models.Record{"onboarding": true},
				models.Record{}),
			Ignore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, userRule.Decide(tt.ev))
		})
	}
}

func TestRuleWithoutOnboardingFieldIgnoresUpdates(t *testing.T) {
	ev := event("UPDATE", "public", "meal_plan",
		models.Record{"onboarding": true}, models.Record{})
	assert.Equal(t, Ignore, mealPlanRule.Decide(ev))
}
