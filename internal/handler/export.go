package handler

import (
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/wok10-dev/shift-planner/backend/internal/domain"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportExcel encodes the current planning into the export directory and sends
// it back as an attachment.
func (h *Handler) ExportExcel(w http.ResponseWriter, r *http.Request) {
	planning := r.Context().Value(PlanningCtx).(*domain.WeekPlanning)

	path := filepath.Join(h.config.Storage.ExportDir, fmt.Sprintf("planning_%s.xlsx", uuid.NewString()))
	if err := h.codec.EncodeFile(path, planning); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	filename := fmt.Sprintf("planning_semaine%d_%d_%s.xlsx", planning.WeekNumber, planning.Year, time.Now().Format(fileTimestampLayout))

	if err := h.repository.AddHistoryEntry(&domain.HistoryEntry{
		Type:       domain.HistoryExportExcel,
		Filename:   filename,
		WeekNumber: &planning.WeekNumber,
		Year:       &planning.Year,
	}); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	http.ServeFile(w, r, path)
}
