// Package compose builds notification emails from change-event records.
// Bodies are plain string interpolation; absent fields render as empty text.
package compose

import (
	"fmt"

	"dbhook-notifier/internal/email"
	"dbhook-notifier/internal/models"
)

// MealPlanCreated builds the alert for a new meal plan row.
func MealPlanCreated(to string, rec models.Record) email.Message {
	subject := fmt.Sprintf("New meal plan created: %s", rec.Field("id"))
	html := fmt.Sprintf(
		"<h2>New meal plan</h2>"+
			"<p><b>ID:</b> %s</p>"+
			"<p><b>User:</b> %s</p>"+
			"<p><b>Start date:</b> %s</p>"+
			"<p><b>End date:</b> %s</p>"+
			"<p><b>Created at:</b> %s</p>",
		rec.Field("id"), rec.Field("user_id"), rec.Field("start_date"),
		rec.Field("end_date"), rec.Field("created_at"))

	return email.Message{To: to, Subject: subject, HTML: html}
}

// UserCreated builds the alert for a new user row. The subject prefers the
// user's email and falls back to the row id.
func UserCreated(to string, rec models.Record) email.Message {
	who := rec.Field("email")
	if who == "" {
		who = rec.Field("id")
	}
	subject := fmt.Sprintf("New user signed up: %s", who)
	html := fmt.Sprintf(
		"<h2>New user</h2>"+
			"<p><b>Name:</b> %s %s</p>"+
			"<p><b>Email:</b> %s</p>"+
			"<p><b>Phone:</b> %s</p>"+
			"<p><b>Created at:</b> %s</p>",
		rec.Field("name"), rec.Field("last_name"), rec.Field("email"),
		rec.Field("phone_number"), rec.Field("created_at"))

	return email.Message{To: to, Subject: subject, HTML: html}
}

// UserOnboarded builds the alert for a user who just completed onboarding.
func UserOnboarded(to string, rec models.Record) email.Message {
	who := rec.Field("email")
	if who == "" {
		who = rec.Field("id")
	}
	subject := fmt.Sprintf("User completed onboarding: %s", who)
	html := fmt.Sprintf(
		"<h2>User onboarded</h2>"+
			"<p><b>Name:</b> %s %s</p>"+
			"<p><b>Phone:</b> %s</p>"+
			"<p><b>Email:</b> %s</p>"+
			"<p><b>Delivery address:</b> %s</p>"+
			"<p><b>Mode:</b> %s</p>",
		rec.Field("name"), rec.Field("last_name"), rec.Field("phone_number"),
		rec.Field("email"), rec.Field("delivery_address"), DeliveryMode(rec))

	return email.Message{To: to, Subject: subject, HTML: html}
}

// DeliveryMode classifies how the user's meals are provided. self_built_diet
// wins over non_akli_partner, which wins over akli_partner.
func DeliveryMode(rec models.Record) string {
	switch {
	case rec.Bool("self_built_diet"):
		return "self_built_diet"
	case rec.Bool("non_akli_partner"):
		return "non_akli_partner"
	case rec.Bool("akli_partner"):
		return "akli_partner"
	default:
		return "none"
	}
}
