package stats

import "github.com/JaimeStill/discvault/pkg/openapi"

type spec struct {
	Summary *openapi.Operation
}

var Spec = spec{
	Summary: &openapi.Operation{
		Summary:     "Collection statistics",
		Description: "Counts of albums, artists, genres, tags and locations, with album breakdowns by media type and decade",
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Collection statistics", "Stats"),
		},
	},
}

func (spec) Schemas() map[string]*openapi.Schema {
	bucket := &openapi.Schema{
		Type: "object",
		Properties: map[string]*openapi.Schema{
			"key":   {Type: "string"},
			"count": {Type: "integer"},
		},
	}

	return map[string]*openapi.Schema{
		"Stats": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"albums":      {Type: "integer", Description: "Albums not archived"},
				"archived":    {Type: "integer"},
				"artists":     {Type: "integer"},
				"genres":      {Type: "integer"},
				"tags":        {Type: "integer"},
				"locations":   {Type: "integer"},
				"tracks":      {Type: "integer"},
				"covers":      {Type: "integer", Description: "Albums with a stored cover"},
				"media_types": {Type: "array", Items: bucket},
				"decades":     {Type: "array", Items: bucket},
			},
		},
	}
}
