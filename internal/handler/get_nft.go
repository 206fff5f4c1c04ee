package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/WeGoWinPrikitiw/pico-sub001/internal/service"
)

func (h *ServiceHandler) GetNFT(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := service.GetNFTRequest{TokenID: chi.URLParam(r, "id")}

	resp, err := h.service.GetNFT(ctx, &req)
	if err != nil {
		h.sendError(ctx, w, "GetNFT", err)
		return
	}

	h.sendJSON(ctx, w, http.StatusOK, resp)
}
