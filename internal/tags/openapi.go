package tags

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
		Summary: "List tags",
		Parameters: append(
			openapi.PageParams("Search query (matches name)"),
			openapi.QueryParam("name", "string", "Filter by tag name (contains)", false),
		),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Paginated list of tags", "TagPageResult"),
		},
	},
	Find: &openapi.Operation{
		Summary: "Get tag by ID",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Tag ID"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Tag", "Tag"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Create: &openapi.Operation{
		Summary:     "Create tag",
		Description: "Creates a tag. Color defaults to #CCCCCC",
		RequestBody: openapi.RequestBodyJSON("CreateTagCommand", true),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Tag created", "Tag"),
			400: openapi.ResponseRef("BadRequest"),
			409: openapi.ResponseRef("Conflict"),
		},
	},
	Update: &openapi.Operation{
		Summary:     "Update tag",
		Description: "Renames a tag and optionally changes its color",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Tag ID"),
		},
		RequestBody: openapi.RequestBodyJSON("UpdateTagCommand", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Tag updated", "Tag"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
			409: openapi.ResponseRef("Conflict"),
		},
	},
	Delete: &openapi.Operation{
		Summary: "Delete tag",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Tag ID"),
		},
		Responses: map[int]*openapi.Response{
			204: {Description: "Tag deleted"},
			404: openapi.ResponseRef("NotFound"),
		},
	},
}

func (spec) Schemas() map[string]*openapi.Schema {
	command := &openapi.Schema{
		Type:     "object",
		Required: []string{"name"},
		Properties: map[string]*openapi.Schema{
			"name":  {Type: "string", Example: "Favourites"},
			"color": {Type: "string", Description: "Hex color (#RGB or #RRGGBB)", Example: "#135BEC"},
		},
	}

	return map[string]*openapi.Schema{
		"Tag": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":         {Type: "integer", Format: "int64"},
				"name":       {Type: "string"},
				"color":      {Type: "string", Default: DefaultColor},
				"created_at": {Type: "string", Format: "date-time"},
				"updated_at": {Type: "string", Format: "date-time"},
			},
		},
		"CreateTagCommand": command,
		"UpdateTagCommand": command,
		"TagPageResult":    openapi.PageResultSchema("Tag"),
	}
}
