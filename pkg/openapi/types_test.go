package openapi_test

import (
	"testing"

	"github.com/JaimeStill/discvault/pkg/openapi"
)

func TestRefs(t *testing.T) {
	if got := openapi.SchemaRef("Album").Ref; got != "#/components/schemas/Album" {
		t.Errorf("SchemaRef() = %q", got)
	}
	if got := openapi.ResponseRef("NotFound").Ref; got != "#/components/responses/NotFound" {
		t.Errorf("ResponseRef() = %q", got)
	}
}

func TestRequestBodyJSON(t *testing.T) {
	body := openapi.RequestBodyJSON("CreateAlbumCommand", true)

	if !body.Required {
		t.Error("Required = false, want true")
	}
	if body.Content["application/json"].Schema.Ref != "#/components/schemas/CreateAlbumCommand" {
		t.Errorf("Schema.Ref = %q", body.Content["application/json"].Schema.Ref)
	}
}

func TestPathParam(t *testing.T) {
	param := openapi.PathParam("id", "Album ID")

	if param.In != "path" || !param.Required {
		t.Errorf("param = %+v, want required path parameter", param)
	}
	if param.Schema.Type != "integer" || param.Schema.Format != "int64" {
		t.Errorf("Schema = %+v, want integer/int64", param.Schema)
	}

	str := openapi.StringPathParam("barcode", "UPC/EAN")
	if str.Schema.Type != "string" {
		t.Errorf("StringPathParam Schema.Type = %q, want string", str.Schema.Type)
	}
}

func TestPageParams(t *testing.T) {
	params := openapi.PageParams("Search title")

	names := []string{"page", "page_size", "search", "sort"}
	if len(params) != len(names) {
		t.Fatalf("len(PageParams) = %d, want %d", len(params), len(names))
	}
	for i, name := range names {
		if params[i].Name != name || params[i].In != "query" {
			t.Errorf("params[%d] = %s/%s, want %s/query", i, params[i].Name, params[i].In, name)
		}
	}
}

func TestPageResultSchema(t *testing.T) {
	schema := openapi.PageResultSchema("Album")

	data := schema.Properties["data"]
	if data == nil || data.Items.Ref != "#/components/schemas/Album" {
		t.Error("data items do not reference Album")
	}
}
