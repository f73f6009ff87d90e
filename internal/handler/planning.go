package handler

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/wok10-dev/shift-planner/backend/internal/domain"
	"github.com/wok10-dev/shift-planner/backend/internal/repository"
	"github.com/wok10-dev/shift-planner/backend/internal/utils"
)

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.successResponse(w, r, "service is up", map[string]string{"status": "healthy"})
}

func (h *Handler) readPlanning(r *http.Request) (*domain.WeekPlanning, error) {
	planning := &domain.WeekPlanning{}
	if err := h.readJSON(r, planning); err != nil {
		return nil, err
	}
	if err := h.validate.Struct(planning); err != nil {
		return nil, err
	}
	if err := utils.ValidateWeekPlanning(planning); err != nil {
		return nil, err
	}
	if planning.Employees == nil {
		planning.Employees = []domain.EmployeeWeek{}
	}
	return planning, nil
}

func (h *Handler) GetCurrentPlanning(w http.ResponseWriter, r *http.Request) {
	planning := r.Context().Value(PlanningCtx).(*domain.WeekPlanning)

	h.successResponse(w, r, "current planning retrieved", planning)
}

// CreatePlanning replaces the current planning and writes it to a new workbook,
// which becomes the session's planning file.
func (h *Handler) CreatePlanning(w http.ResponseWriter, r *http.Request) {
	planning, err := h.readPlanning(r)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	path := filepath.Join(h.config.Storage.TemplateDir, fmt.Sprintf("planning_%s.xlsx", uuid.NewString()))
	if err := h.codec.EncodeFile(path, planning); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if err := h.repository.SetCurrentPlanning(planning); err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if err := h.repository.SetPlanningFile(path); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "planning created", planning)
}

// UpdatePlanning replaces the current planning and, when the session has a
// planning file, rewrites it.
func (h *Handler) UpdatePlanning(w http.ResponseWriter, r *http.Request) {
	planning, err := h.readPlanning(r)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.repository.SetCurrentPlanning(planning); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	path, err := h.repository.GetPlanningFile()
	switch {
	case err == nil:
		if err := h.codec.ReEncode(path, planning); err != nil {
			h.internalServerError(w, r, err)
			return
		}
	case errors.Is(err, repository.ErrNotFound):
		// nothing to rewrite
	default:
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "planning updated", planning)
}

func (h *Handler) ClearPlanning(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.repository.ClearSession(); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "planning cleared", nil)
}
