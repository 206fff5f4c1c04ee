package handler

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/WeGoWinPrikitiw/pico-sub001/internal/service"
)

func (h *ServiceHandler) ListNFTs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := parseListNFTsRequest(r.URL.Query())

	resp, err := h.service.ListNFTs(ctx, req)
	if err != nil {
		h.sendError(ctx, w, "ListNFTs", err)
		return
	}

	h.sendJSON(ctx, w, http.StatusOK, resp)
}

// parseListNFTsRequest leaves unparseable page numbers at zero so the
// service applies its defaults.
func parseListNFTsRequest(q url.Values) *service.ListNFTsRequest {
	req := &service.ListNFTsRequest{
		Search:   q.Get("search"),
		MinPrice: q.Get("minPrice"),
		MaxPrice: q.Get("maxPrice"),
		Category: q.Get("category"),
		Status:   q.Get("status"),
		Rarity:   q.Get("rarity"),
		Sort:     q.Get("sort"),
	}

	if page, err := strconv.Atoi(q.Get("page")); err == nil {
		req.Page = page
	}
	if pageSize, err := strconv.Atoi(q.Get("pageSize")); err == nil {
		req.PageSize = pageSize
	}

	return req
}
