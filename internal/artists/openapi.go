package artists

import "github.com/JaimeStill/discvault/pkg/openapi"

type spec struct {
	List   *openapi.Operation
	Find   *openapi.Operation
	Create *openapi.Operation
	Update *openapi.Operation
	Delete *openapi.Operation
}

// Spec contains OpenAPI operation definitions for artist endpoints.
var Spec = spec{
	List: &openapi.Operation{
		Summary:     "List artists",
		Description: "Returns a paginated list of artists with optional filtering and sorting",
		Parameters: append(
			openapi.PageParams("Search query (matches name)"),
			openapi.QueryParam("name", "string", "Filter by artist name (contains)", false),
		),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Paginated list of artists", "ArtistPageResult"),
		},
	},
	Find: &openapi.Operation{
		Summary: "Get artist by ID",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Artist ID"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Artist", "Artist"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Create: &openapi.Operation{
		Summary:     "Create artist",
		RequestBody: openapi.RequestBodyJSON("CreateArtistCommand", true),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Artist created", "Artist"),
			400: openapi.ResponseRef("BadRequest"),
			409: openapi.ResponseRef("Conflict"),
		},
	},
	Update: &openapi.Operation{
		Summary: "Update artist",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Artist ID"),
		},
		RequestBody: openapi.RequestBodyJSON("UpdateArtistCommand", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Artist updated", "Artist"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
			409: openapi.ResponseRef("Conflict"),
		},
	},
	Delete: &openapi.Operation{
		Summary:     "Delete artist",
		Description: "Removes an artist and its album credits",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Artist ID"),
		},
		Responses: map[int]*openapi.Response{
			204: {Description: "Artist deleted"},
			404: openapi.ResponseRef("NotFound"),
		},
	},
}

func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Artist": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":         {Type: "integer", Format: "int64"},
				"name":       {Type: "string"},
				"created_at": {Type: "string", Format: "date-time"},
				"updated_at": {Type: "string", Format: "date-time"},
			},
		},
		"CreateArtistCommand": {
			Type:     "object",
			Required: []string{"name"},
			Properties: map[string]*openapi.Schema{
				"name": {Type: "string", Example: "Miles Davis"},
			},
		},
		"UpdateArtistCommand": {
			Type:     "object",
			Required: []string{"name"},
			Properties: map[string]*openapi.Schema{
				"name": {Type: "string"},
			},
		},
		"ArtistPageResult": openapi.PageResultSchema("Artist"),
	}
}
