package web

import (
	"io/fs"
	"net/http"
	"path"

	"github.com/JaimeStill/discvault/pkg/routes"
)

// DistServer serves files from subdir of fsys for request paths under prefix.
func DistServer(fsys fs.FS, subdir, prefix string) http.HandlerFunc {
	sub, err := fs.Sub(fsys, subdir)
	if err != nil {
		return http.NotFound
	}
	return http.StripPrefix(prefix, http.FileServerFS(sub)).ServeHTTP
}

// PublicFile serves a single named file from subdir of fsys.
func PublicFile(fsys fs.FS, subdir, name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := fs.ReadFile(fsys, path.Join(subdir, name))
		if err != nil {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", contentType(name))
		w.Write(data)
	}
}

// PublicFileRoutes returns a GET route at "/<name>" for each file.
func PublicFileRoutes(fsys fs.FS, subdir string, names ...string) []routes.Route {
	result := make([]routes.Route, 0, len(names))
	for _, name := range names {
		result = append(result, routes.Route{
			Method:  http.MethodGet,
			Pattern: "/" + name,
			Handler: PublicFile(fsys, subdir, name),
		})
	}
	return result
}

// ServeEmbeddedFile serves data with the given content type.
func ServeEmbeddedFile(data []byte, contentType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(http.StatusOK)
		w.Write(data)
	}
}

func contentType(name string) string {
	switch path.Ext(name) {
	case ".ico":
		return "image/x-icon"
	case ".png":
		return "image/png"
	case ".svg":
		return "image/svg+xml"
	case ".webmanifest":
		return "application/manifest+json"
	case ".js":
		return "text/javascript; charset=utf-8"
	case ".css":
		return "text/css; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}
