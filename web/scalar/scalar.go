// Package scalar serves the interactive API reference using Scalar UI.
// The page loads the Scalar bundle and points it at the generated OpenAPI document.
package scalar

import (
	"bytes"
	_ "embed"
	"html/template"
	"net/http"

	"github.com/JaimeStill/discvault/pkg/module"
	"github.com/JaimeStill/discvault/pkg/web"
)

//go:embed index.html
var indexHTML string

var index = template.Must(template.New("index.html").Parse(indexHTML))

// NewModule creates the docs module mounted at prefix. specURL is the
// absolute path of the OpenAPI document the reference renders.
func NewModule(prefix, specURL string) (*module.Module, error) {
	var buf bytes.Buffer
	if err := index.Execute(&buf, struct{ SpecURL string }{specURL}); err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", web.ServeEmbeddedFile(buf.Bytes(), "text/html; charset=utf-8"))

	return module.New(prefix, mux), nil
}
