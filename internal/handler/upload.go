package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wok10-dev/shift-planner/backend/internal/domain"
	"github.com/wok10-dev/shift-planner/backend/internal/grid"
)

const fileTimestampLayout = "20060102_150405"

type uploadResult struct {
	FileID   string `json:"file_id"`
	Filename string `json:"filename"`
}

func saveUpload(src io.Reader, path string) error {
	dst, err := os.Create(path)
	if err != nil {
		return err
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return err
	}

	return dst.Close()
}

// UploadExcel stores an uploaded workbook, decodes it and makes the result the
// current planning. The stored file becomes the planning file.
func (h *Handler) UploadExcel(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.config.Server.MaxUploadSize)
	if err := r.ParseMultipartForm(h.config.Server.MaxUploadSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxBytesErr):
			h.errorResponse(w, r, fmt.Sprintf("file is larger than %d bytes", maxBytesErr.Limit))
		default:
			h.badRequest(w, r, err)
		}
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		switch {
		case errors.Is(err, http.ErrMissingFile):
			h.errorResponse(w, r, "no file uploaded")
		default:
			h.badRequest(w, r, err)
		}
		return
	}
	defer file.Close()

	if !strings.EqualFold(filepath.Ext(header.Filename), ".xlsx") {
		h.errorResponse(w, r, "file must be an Excel workbook (.xlsx)")
		return
	}

	name := fmt.Sprintf("excel_%s_%s.xlsx", time.Now().Format(fileTimestampLayout), uuid.NewString()[:8])
	path := filepath.Join(h.config.Storage.UploadDir, name)

	h.mu.Lock()
	defer h.mu.Unlock()

	if err := saveUpload(file, path); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	fileID, err := h.repository.AddUploadedFile(path)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	planning, err := h.codec.DecodeFile(path)
	if err != nil {
		switch {
		case errors.Is(err, grid.ErrEmptyGrid), errors.Is(err, grid.ErrMissingNameColumn):
			h.errorResponse(w, r, fmt.Sprintf("cannot read planning: %v", err))
		default:
			// excelize could not open it at all
			h.errorResponse(w, r, "file is not a readable Excel workbook")
		}
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

	if err := h.repository.AddHistoryEntry(&domain.HistoryEntry{
		Type:       domain.HistoryImportExcel,
		Filename:   header.Filename,
		WeekNumber: &planning.WeekNumber,
		Year:       &planning.Year,
	}); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "Excel file uploaded and loaded", uploadResult{
		FileID:   fileID,
		Filename: header.Filename,
	})
}
