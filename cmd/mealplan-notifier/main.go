package main

import (
	"dbhook-notifier/internal/app"
	"dbhook-notifier/internal/compose"
	"dbhook-notifier/internal/config"
	"dbhook-notifier/internal/email"
	"dbhook-notifier/internal/filter"
	"dbhook-notifier/internal/models"
	"dbhook-notifier/internal/server"
)

func main() {
	app.Run(func(cfg *config.Config) server.Notifier {
		return server.Notifier{
			Name: "meal-plan-created",
			Rule: filter.Rule{Schema: "public", Table: "meal_plan", Inserts: true},
			Compose: func(_ filter.Decision, rec models.Record) email.Message {
				return compose.MealPlanCreated(cfg.Email.AdminRecipient, rec)
			},
		}
	})
}
