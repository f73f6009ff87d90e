package handler

import "net/http"

func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	entries, err := h.repository.GetHistory()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "history retrieved", entries)
}
