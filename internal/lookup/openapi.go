package lookup

import "github.com/JaimeStill/discvault/pkg/openapi"

type spec struct {
	Barcode *openapi.Operation
}

var Spec = spec{
	Barcode: &openapi.Operation{
		Summary:     "Look up barcode",
		Description: "Resolves a UPC/EAN barcode to the first matching MusicBrainz release, including tracklist and genres when available",
		Parameters: []*openapi.Parameter{
			openapi.StringPathParam("barcode", "UPC/EAN barcode (8 to 14 digits)"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Matching release", "Release"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
			502: openapi.ResponseRef("BadGateway"),
		},
	},
}

func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Release": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"title":      {Type: "string"},
				"year":       {Type: "integer"},
				"artists":    {Type: "array", Items: &openapi.Schema{Type: "string"}},
				"genres":     {Type: "array", Items: &openapi.Schema{Type: "string"}},
				"barcode":    {Type: "string"},
				"mbid":       {Type: "string", Format: "uuid"},
				"catalog_no": {Type: "string"},
				"cover_url":  {Type: "string", Format: "uri"},
				"tracks":     {Type: "array", Items: openapi.SchemaRef("ReleaseTrack")},
			},
		},
		"ReleaseTrack": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"track_no":  {Type: "integer"},
				"title":     {Type: "string"},
				"duration":  {Type: "string", Description: "m:ss"},
				"disc_no":   {Type: "integer"},
				"disc_name": {Type: "string"},
			},
		},
	}
}
