package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/habitcoach-backend/internal/domain"
	"github.com/heartmarshall/habitcoach-backend/internal/service/template"
)

type templateService interface {
	CreateTemplate(ctx context.Context, input template.CreateTemplateInput) (*domain.PromptTemplate, error)
	GetTemplate(ctx context.Context, id uuid.UUID) (*domain.PromptTemplate, error)
	ListTemplates(ctx context.Context) ([]domain.PromptTemplate, error)
	UpdateTemplate(ctx context.Context, input template.UpdateTemplateInput) (*domain.PromptTemplate, error)
	DeactivateTemplate(ctx context.Context, id uuid.UUID) error
}

// TemplateHandler serves /prompt-templates.
type TemplateHandler struct {
	svc templateService
	log *slog.Logger
}

// NewTemplateHandler creates a TemplateHandler.
func NewTemplateHandler(svc templateService, logger *slog.Logger) *TemplateHandler {
	return &TemplateHandler{svc: svc, log: logger.With("handler", "template")}
}

type createTemplateRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Content     string   `json:"content"`
	Variables   []string `json:"variables"`
}

// updateTemplateRequest leaves a field unchanged when it is absent. An
// explicit empty variables list clears the variables.
type updateTemplateRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Content     *string  `json:"content"`
	Variables   []string `json:"variables"`
	IsActive    *bool    `json:"is_active"`
}

// List handles GET /prompt-templates.
func (h *TemplateHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListTemplates(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	out := make([]templateResponse, 0, len(list))
	for i := range list {
		out = append(out, toTemplateResponse(&list[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// Create handles POST /prompt-templates.
func (h *TemplateHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTemplateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	tpl, err := h.svc.CreateTemplate(r.Context(), template.CreateTemplateInput{
		Name:        req.Name,
		Description: req.Description,
		Content:     req.Content,
		Variables:   req.Variables,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTemplateResponse(tpl))
}

// Get handles GET /prompt-templates/{id}.
func (h *TemplateHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "template_id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	tpl, err := h.svc.GetTemplate(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toTemplateResponse(tpl))
}

// Update handles PUT /prompt-templates/{id}.
func (h *TemplateHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "template_id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	var req updateTemplateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	tpl, err := h.svc.UpdateTemplate(r.Context(), template.UpdateTemplateInput{
		TemplateID:  id,
		Name:        req.Name,
		Description: req.Description,
		Content:     req.Content,
		Variables:   req.Variables,
		IsActive:    req.IsActive,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toTemplateResponse(tpl))
}

// Deactivate handles DELETE /prompt-templates/{id}.
func (h *TemplateHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "template_id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	if err := h.svc.DeactivateTemplate(r.Context(), id); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
