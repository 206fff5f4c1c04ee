package handler

import (
	"net/http"
)

func (h *ServiceHandler) Categories(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	resp, err := h.service.GetCategories(ctx)
	if err != nil {
		h.sendError(ctx, w, "Categories", err)
		return
	}

	h.sendJSON(ctx, w, http.StatusOK, resp)
}

func (h *ServiceHandler) RecentErrors(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	h.sendJSON(ctx, w, http.StatusOK, h.service.RecentErrors(ctx))
}
