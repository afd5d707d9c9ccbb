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
			Name: "user-lifecycle",
			Rule: filter.Rule{
				Schema:          "public",
				Table:           "user",
				Inserts:         true,
				OnboardingField: "onboarding",
			},
			Compose: func(d filter.Decision, rec models.Record) email.Message {
				if d == filter.HandleOnboarding {
					return compose.UserOnboarded(cfg.Email.AdminRecipient, rec)
				}
				return compose.UserCreated(cfg.Email.AdminRecipient, rec)
			},
		}
	})
}
