package scan

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/JaimeStill/discvault/pkg/handlers"
	"github.com/JaimeStill/discvault/pkg/routes"
)

// Handler exposes barcode scanning over HTTP.
type Handler struct {
	sys    System
	logger *slog.Logger
}

func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{sys: sys, logger: logger}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/scan",
		Tags:        []string{"Scan"},
		Description: "Barcode scan and import",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/{barcode}", Handler: h.Scan, OpenAPI: Spec.Scan},
		},
	}
}

// Scan handles POST /scan/{barcode}. Optional query parameters:
// location_id, media_type and cover (true to download the cover image).
func (h *Handler) Scan(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	opts := Options{MediaType: q.Get("media_type")}
	if v := q.Get("location_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil || id <= 0 {
			handlers.RespondError(w, h.logger, http.StatusBadRequest, handlers.ErrInvalidID)
			return
		}
		opts.LocationID = &id
	}
	opts.FetchCover, _ = strconv.ParseBool(q.Get("cover"))

	result, err := h.sys.Scan(r.Context(), r.PathValue("barcode"), opts)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, result)
}
