package lookup

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/discvault/pkg/handlers"
	"github.com/JaimeStill/discvault/pkg/routes"
)

// Handler exposes barcode lookups over HTTP.
type Handler struct {
	sys    System
	logger *slog.Logger
}

func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger,
	}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/lookup",
		Tags:        []string{"Lookup"},
		Description: "MusicBrainz release lookup",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/barcode/{barcode}", Handler: h.Barcode, OpenAPI: Spec.Barcode},
		},
		Schemas: Spec.Schemas(),
	}
}

// Barcode handles GET /lookup/barcode/{barcode}.
func (h *Handler) Barcode(w http.ResponseWriter, r *http.Request) {
	release, err := h.sys.LookupBarcode(r.Context(), r.PathValue("barcode"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, release)
}
