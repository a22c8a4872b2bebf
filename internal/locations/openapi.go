package locations

import "github.com/JaimeStill/discvault/pkg/openapi"

type spec struct {
	List   *openapi.Operation
	Find   *openapi.Operation
	Create *openapi.Operation
	Update *openapi.Operation
	Delete *openapi.Operation
}

// Spec contains OpenAPI operation definitions for location endpoints.
var Spec = spec{
	List: &openapi.Operation{
		Summary:     "List locations",
		Description: "Returns a paginated list of storage locations",
		Parameters: append(
			openapi.PageParams("Search query (matches name, storage type, section and shelf)"),
			openapi.QueryParam("name", "string", "Filter by location name (contains)", false),
			openapi.QueryParam("storage_type", "string", "Filter by storage type (exact)", false),
		),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Paginated list of locations", "LocationPageResult"),
		},
	},
	Find: &openapi.Operation{
		Summary: "Get location by ID",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Location ID"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Location", "Location"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Create: &openapi.Operation{
		Summary:     "Create location",
		RequestBody: openapi.RequestBodyJSON("LocationCommand", true),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Location created", "Location"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	Update: &openapi.Operation{
		Summary: "Update location",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Location ID"),
		},
		RequestBody: openapi.RequestBodyJSON("LocationCommand", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Location updated", "Location"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Delete: &openapi.Operation{
		Summary:     "Delete location",
		Description: "Removes a location; albums stored there are left without a location",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Location ID"),
		},
		Responses: map[int]*openapi.Response{
			204: {Description: "Location deleted"},
			404: openapi.ResponseRef("NotFound"),
		},
	},
}

func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Location": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":           {Type: "integer", Format: "int64"},
				"name":         {Type: "string"},
				"storage_type": {Type: "string"},
				"section":      {Type: "string"},
				"shelf":        {Type: "string"},
				"position":     {Type: "string"},
				"created_at":   {Type: "string", Format: "date-time"},
				"updated_at":   {Type: "string", Format: "date-time"},
			},
		},
		"LocationCommand": {
			Type:     "object",
			Required: []string{"name", "storage_type"},
			Properties: map[string]*openapi.Schema{
				"name":         {Type: "string", Example: "Living room rack"},
				"storage_type": {Type: "string", Example: "Shelf"},
				"section":      {Type: "string"},
				"shelf":        {Type: "string"},
				"position":     {Type: "string"},
			},
		},
		"LocationPageResult": openapi.PageResultSchema("Location"),
	}
}
