package genres

import "github.com/JaimeStill/discvault/pkg/openapi"

type spec struct {
	List   *openapi.Operation
	Find   *openapi.Operation
	Create *openapi.Operation
	Update *openapi.Operation
	Delete *openapi.Operation
}

var Spec = spec{
	List: &openapi.Operation{
		Summary: "List genres",
		Parameters: append(
			openapi.PageParams("Search query (matches name and description)"),
			openapi.QueryParam("name", "string", "Filter by genre name (contains)", false),
		),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Paginated list of genres", "GenrePageResult"),
		},
	},
	Find: &openapi.Operation{
		Summary: "Get genre by ID",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Genre ID"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Genre", "Genre"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Create: &openapi.Operation{
		Summary:     "Create genre",
		RequestBody: openapi.RequestBodyJSON("GenreCommand", true),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Genre created", "Genre"),
			400: openapi.ResponseRef("BadRequest"),
			409: openapi.ResponseRef("Conflict"),
		},
	},
	Update: &openapi.Operation{
		Summary: "Update genre",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Genre ID"),
		},
		RequestBody: openapi.RequestBodyJSON("GenreCommand", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Genre updated", "Genre"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
			409: openapi.ResponseRef("Conflict"),
		},
	},
	Delete: &openapi.Operation{
		Summary:     "Delete genre",
		Description: "Removes a genre; albums filed under it are left without a genre",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Genre ID"),
		},
		Responses: map[int]*openapi.Response{
			204: {Description: "Genre deleted"},
			404: openapi.ResponseRef("NotFound"),
		},
	},
}

func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Genre": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":          {Type: "integer", Format: "int64"},
				"name":        {Type: "string"},
				"description": {Type: "string"},
				"created_at":  {Type: "string", Format: "date-time"},
				"updated_at":  {Type: "string", Format: "date-time"},
			},
		},
		"GenreCommand": {
			Type:     "object",
			Required: []string{"name"},
			Properties: map[string]*openapi.Schema{
				"name":        {Type: "string", Example: "Jazz"},
				"description": {Type: "string"},
			},
		},
		"GenrePageResult": openapi.PageResultSchema("Genre"),
	}
}
