package stats

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/discvault/pkg/handlers"
	"github.com/JaimeStill/discvault/pkg/routes"
)

type Handler struct {
	sys    System
	logger *slog.Logger
}

func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{sys: sys, logger: logger}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/stats",
		Tags:        []string{"Stats"},
		Description: "Collection statistics",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.Summary, OpenAPI: Spec.Summary},
		},
		Schemas: Spec.Schemas(),
	}
}

func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	result, err := h.sys.Summary(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
