package app

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/habitcoach-backend/internal/transport/middleware"
	"github.com/heartmarshall/habitcoach-backend/internal/transport/rest"
)

// handlers groups every REST handler mounted on the router.
type handlers struct {
	health    *rest.HealthHandler
	users     *rest.UserHandler
	goals     *rest.GoalHandler
	checkins  *rest.CheckInHandler
	reminders *rest.ReminderHandler
	templates *rest.TemplateHandler
	chat      *rest.ChatHandler
}

// newRouter registers all routes. Endpoints that trigger text generation
// are wrapped by generate.
func newRouter(h handlers, generate middleware.Middleware, reg *prometheus.Registry) *http.ServeMux {
	mux := http.NewServeMux()

	// Health and metrics.
	mux.HandleFunc("GET /live", h.health.Live)
	mux.HandleFunc("GET /ready", h.health.Ready)
	mux.HandleFunc("GET /health", h.health.Health)
	mux.Handle("GET /metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	// Users.
	mux.HandleFunc("POST /users", h.users.Create)
	mux.HandleFunc("GET /users/{id}", h.users.Get)
	mux.HandleFunc("PUT /users/{id}/preferences", h.users.UpdatePreferences)

	// Goals.
	mux.HandleFunc("GET /goals", h.goals.List)
	mux.HandleFunc("POST /goals", h.goals.Create)
	mux.HandleFunc("GET /goals/{id}", h.goals.Get)
	mux.HandleFunc("PUT /goals/{id}", h.goals.Update)
	mux.HandleFunc("DELETE /goals/{id}", h.goals.Deactivate)

	// Check-ins.
	mux.Handle("POST /checkins", generate(http.HandlerFunc(h.checkins.Create)))
	mux.HandleFunc("GET /checkins", h.checkins.List)
	mux.HandleFunc("GET /checkin-stats", h.checkins.Stats)

	// Reminders and the message audit log.
	mux.Handle("POST /generate-reminder", generate(http.HandlerFunc(h.reminders.Generate)))
	mux.Handle("GET /batch-reminders", generate(http.HandlerFunc(h.reminders.Batch)))
	mux.HandleFunc("GET /ai-messages", h.reminders.ListAIMessages)

	// Prompt templates.
	mux.HandleFunc("GET /prompt-templates", h.templates.List)
	mux.HandleFunc("POST /prompt-templates", h.templates.Create)
	mux.HandleFunc("GET /prompt-templates/{id}", h.templates.Get)
	mux.HandleFunc("PUT /prompt-templates/{id}", h.templates.Update)
	mux.HandleFunc("DELETE /prompt-templates/{id}", h.templates.Deactivate)

	// Chat.
	mux.HandleFunc("POST /channels", h.chat.RequestChannel)
	mux.HandleFunc("POST /messages", h.chat.SendMessage)
	mux.HandleFunc("GET /messages", h.chat.ListMessages)

	return mux
}
