package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/unrolled/render"

	"github.com/WeGoWinPrikitiw/pico-sub001/internal/service"
	"github.com/WeGoWinPrikitiw/pico-sub001/pkg/errlog"
)

type Handler interface {
	ListNFTs(w http.ResponseWriter, r *http.Request)
	GetNFT(w http.ResponseWriter, r *http.Request)
	Categories(w http.ResponseWriter, r *http.Request)
	RecentErrors(w http.ResponseWriter, r *http.Request)
	Health(w http.ResponseWriter, r *http.Request)
}

type ServiceHandler struct {
	service service.MarketplaceService
	logger  *slog.Logger
	cfg     *Config
	render  *render.Render
}

type ErrorResponse struct {
	Error string      `json:"error"`
	Kind  errlog.Kind `json:"kind"`
}

func NewServiceHandler(
	srv service.MarketplaceService,
	logger *slog.Logger,
	cfg *Config,
	render *render.Render,
) *ServiceHandler {
	return &ServiceHandler{
		service: srv,
		logger:  logger,
		cfg:     cfg,
		render:  render,
	}
}

func (h *ServiceHandler) sendJSON(ctx context.Context, w io.Writer, status int, body any) {
	if err := h.render.JSON(w, status, body); err != nil {
		h.logger.ErrorContext(ctx, "render JSON error", slog.Any("error", err))
	}
}

// sendError picks the status from the error's classification.
func (h *ServiceHandler) sendError(ctx context.Context, w io.Writer, op string, err error) {
	kind := errlog.Classify(err)
	status := kind.HTTPStatus()

	if status >= http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, op+" error", slog.Any("error", err), slog.String("kind", string(kind)))
	} else {
		h.logger.WarnContext(ctx, op+" error", slog.Any("error", err), slog.String("kind", string(kind)))
	}

	h.sendJSON(ctx, w, status, ErrorResponse{
		Error: err.Error(),
		Kind:  kind,
	})
}
