package tracks

import "github.com/JaimeStill/discvault/pkg/openapi"

type spec struct {
	Parse *openapi.Operation
}

var Spec = spec{
	Parse: &openapi.Operation{
		Summary:     "Parse tracklist",
		Description: "Parses CSV tracklist text (number, title, duration) without storing it",
		RequestBody: openapi.RequestBodyText("CSV rows, one track per line"),
		Responses: map[int]*openapi.Response{
			200: {
				Description: "Parsed tracks",
				Content: map[string]*openapi.MediaType{
					"application/json": {Schema: &openapi.Schema{Type: "array", Items: openapi.SchemaRef("ParsedTrack")}},
				},
			},
			400: openapi.ResponseRef("BadRequest"),
		},
	},
}

func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Track": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":        {Type: "integer", Format: "int64"},
				"album_id":  {Type: "integer", Format: "int64"},
				"disc_no":   {Type: "integer"},
				"disc_name": {Type: "string"},
				"track_no":  {Type: "integer"},
				"title":     {Type: "string"},
				"duration":  {Type: "string", Description: "m:ss"},
			},
		},
		"TrackInput": {
			Type:     "object",
			Required: []string{"title"},
			Properties: map[string]*openapi.Schema{
				"disc_no":   {Type: "integer", Default: 1},
				"disc_name": {Type: "string"},
				"track_no":  {Type: "integer", Description: "Defaults to the position in the list"},
				"title":     {Type: "string"},
				"duration":  {Type: "string"},
			},
		},
		"ReplaceTracksCommand": {
			Type:     "object",
			Required: []string{"tracks"},
			Properties: map[string]*openapi.Schema{
				"tracks": {Type: "array", Items: openapi.SchemaRef("TrackInput")},
			},
		},
		"ParsedTrack": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"track_no": {Type: "integer"},
				"title":    {Type: "string"},
				"duration": {Type: "string"},
				"disc_no":  {Type: "integer"},
			},
		},
	}
}
