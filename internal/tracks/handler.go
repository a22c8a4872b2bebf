package tracks

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/discvault/pkg/handlers"
	"github.com/JaimeStill/discvault/pkg/routes"
)

// MaxTextSize bounds the size of pasted tracklist text.
const MaxTextSize int64 = 1 << 20

// Handler serves the tracklist preview endpoint.
type Handler struct {
	logger *slog.Logger
}

func NewHandler(logger *slog.Logger) *Handler {
	return &Handler{logger: logger}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/tracks",
		Tags:        []string{"Tracks"},
		Description: "Tracklist parsing",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/parse", Handler: h.Parse, OpenAPI: Spec.Parse},
		},
		Schemas: Spec.Schemas(),
	}
}

// Parse handles POST /tracks/parse and returns the rows recovered from CSV text
// without storing them.
func (h *Handler) Parse(w http.ResponseWriter, r *http.Request) {
	text, err := ReadText(r)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	parsed, err := ParseCSV(text)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, parsed)
}

// ReadText reads a text/plain request body bounded by MaxTextSize.
func ReadText(r *http.Request) (string, error) {
	body := http.MaxBytesReader(nil, r.Body, MaxTextSize)
	data, err := io.ReadAll(body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidCSV, err)
	}
	return string(data), nil
}
