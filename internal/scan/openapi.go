package scan

import "github.com/JaimeStill/discvault/pkg/openapi"

type spec struct {
	Scan *openapi.Operation
}

var Spec = spec{
	Scan: &openapi.Operation{
		Summary:     "Scan barcode",
		Description: "Looks up a barcode on MusicBrainz and imports the release as a new album with artists, genre tags and tracks",
		Parameters: []*openapi.Parameter{
			openapi.StringPathParam("barcode", "UPC/EAN barcode (8 to 14 digits)"),
			openapi.QueryParam("location_id", "integer", "Storage location for the new album", false),
			openapi.QueryParam("media_type", "string", "Media type (default CD)", false),
			openapi.QueryParam("cover", "boolean", "Download the cover image after import", false),
		},
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Album imported", "AlbumDetail"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
			409: openapi.ResponseRef("Conflict"),
			502: openapi.ResponseRef("BadGateway"),
		},
	},
}
