package albums

import (
	"maps"

	"github.com/JaimeStill/discvault/pkg/openapi"
)

type spec struct {
	List          *openapi.Operation
	Find          *openapi.Operation
	Create        *openapi.Operation
	Import        *openapi.Operation
	Update        *openapi.Operation
	Delete        *openapi.Operation
	Archive       *openapi.Operation
	Restore       *openapi.Operation
	AddArtist     *openapi.Operation
	RemoveArtist  *openapi.Operation
	AddTag        *openapi.Operation
	RemoveTag     *openapi.Operation
	ReplaceTracks *openapi.Operation
	ImportTracks  *openapi.Operation
	UploadCover   *openapi.Operation
	Cover         *openapi.Operation
	FetchCover    *openapi.Operation
}

var idParam = openapi.PathParam("id", "Album ID")

// Spec contains OpenAPI operation definitions for album endpoints.
var Spec = spec{
	List: &openapi.Operation{
		Summary:     "List albums",
		Description: "Returns a paginated list of albums. Archived albums are excluded unless requested",
		Parameters: append(
			openapi.PageParams("Search query (matches title, catalog number, barcode and notes)"),
			openapi.QueryParam("title", "string", "Filter by title (contains)", false),
			openapi.QueryParam("artist", "string", "Filter by credited artist name (contains)", false),
			openapi.QueryParam("year", "integer", "Filter by release year", false),
			openapi.QueryParam("media_type", "string", "Filter by media type", false),
			openapi.QueryParam("upc_ean", "string", "Filter by barcode", false),
			openapi.QueryParam("location_id", "integer", "Filter by storage location", false),
			openapi.QueryParam("genre_id", "integer", "Filter by genre", false),
			openapi.QueryParam("artist_id", "integer", "Filter by credited artist", false),
			openapi.QueryParam("tag_id", "integer", "Filter by tag", false),
			openapi.QueryParam("archived", "string", "true for archived only, all for both", false),
		),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Paginated list of albums", "AlbumPageResult"),
		},
	},
	Find: &openapi.Operation{
		Summary:     "Get album by ID",
		Description: "Returns the album with its genre, location, credits, tags and tracklist",
		Parameters:  []*openapi.Parameter{idParam},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Album detail", "AlbumDetail"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Create: &openapi.Operation{
		Summary:     "Create album",
		RequestBody: openapi.RequestBodyJSON("AlbumCommand", true),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Album created", "Album"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	Import: &openapi.Operation{
		Summary:     "Import album",
		Description: "Creates an album with artists, tags and tracks in one transaction. Artists and tags are matched by name and created when missing",
		RequestBody: openapi.RequestBodyJSON("ImportAlbumCommand", true),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Album imported", "AlbumDetail"),
			400: openapi.ResponseRef("BadRequest"),
			409: openapi.ResponseRef("Conflict"),
		},
	},
	Update: &openapi.Operation{
		Summary:     "Update album",
		Parameters:  []*openapi.Parameter{idParam},
		RequestBody: openapi.RequestBodyJSON("AlbumCommand", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Album updated", "Album"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Delete: &openapi.Operation{
		Summary:     "Delete album",
		Description: "Removes an album, its links, tracks and stored cover",
		Parameters:  []*openapi.Parameter{idParam},
		Responses: map[int]*openapi.Response{
			204: {Description: "Album deleted"},
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Archive: &openapi.Operation{
		Summary:    "Archive album",
		Parameters: []*openapi.Parameter{idParam},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Album archived", "Album"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Restore: &openapi.Operation{
		Summary:    "Restore archived album",
		Parameters: []*openapi.Parameter{idParam},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Album restored", "Album"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	AddArtist: &openapi.Operation{
		Summary:     "Credit artist",
		Description: "Links an artist to the album. Relinking an artist updates the role",
		Parameters: []*openapi.Parameter{
			idParam,
			openapi.PathParam("artist_id", "Artist ID"),
			openapi.QueryParam("role", "string", "Credit role (default Main)", false),
		},
		Responses: map[int]*openapi.Response{
			204: {Description: "Artist linked"},
			404: openapi.ResponseRef("NotFound"),
		},
	},
	RemoveArtist: &openapi.Operation{
		Summary: "Remove artist credit",
		Parameters: []*openapi.Parameter{
			idParam,
			openapi.PathParam("artist_id", "Artist ID"),
		},
		Responses: map[int]*openapi.Response{
			204: {Description: "Artist unlinked"},
			404: openapi.ResponseRef("NotFound"),
		},
	},
	AddTag: &openapi.Operation{
		Summary: "Tag album",
		Parameters: []*openapi.Parameter{
			idParam,
			openapi.PathParam("tag_id", "Tag ID"),
		},
		Responses: map[int]*openapi.Response{
			204: {Description: "Tag linked"},
			404: openapi.ResponseRef("NotFound"),
		},
	},
	RemoveTag: &openapi.Operation{
		Summary: "Untag album",
		Parameters: []*openapi.Parameter{
			idParam,
			openapi.PathParam("tag_id", "Tag ID"),
		},
		Responses: map[int]*openapi.Response{
			204: {Description: "Tag unlinked"},
			404: openapi.ResponseRef("NotFound"),
		},
	},
	ReplaceTracks: &openapi.Operation{
		Summary:     "Replace tracklist",
		Parameters:  []*openapi.Parameter{idParam},
		RequestBody: openapi.RequestBodyJSON("ReplaceTracksCommand", true),
		Responses: map[int]*openapi.Response{
			200: {Description: "Stored tracks", Content: trackList},
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	ImportTracks: &openapi.Operation{
		Summary:     "Import tracklist from CSV",
		Description: "Parses CSV text and replaces the album's tracklist",
		Parameters:  []*openapi.Parameter{idParam},
		RequestBody: openapi.RequestBodyText("CSV tracklist"),
		Responses: map[int]*openapi.Response{
			200: {Description: "Stored tracks", Content: trackList},
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	UploadCover: &openapi.Operation{
		Summary:    "Upload cover",
		Parameters: []*openapi.Parameter{idParam},
		RequestBody: &openapi.RequestBody{
			Required: true,
			Content: map[string]*openapi.MediaType{
				"multipart/form-data": {
					Schema: &openapi.Schema{
						Type:     "object",
						Required: []string{"file"},
						Properties: map[string]*openapi.Schema{
							"file": {Type: "string", Format: "binary", Description: "jpeg, png, gif or webp image"},
						},
					},
				},
			},
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Cover stored", "Album"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
			413: openapi.ResponseRef("TooLarge"),
		},
	},
	Cover: &openapi.Operation{
		Summary:    "Get cover image",
		Parameters: []*openapi.Parameter{idParam},
		Responses: map[int]*openapi.Response{
			200: {
				Description: "Cover image",
				Content: map[string]*openapi.MediaType{
					"image/*": {Schema: &openapi.Schema{Type: "string", Format: "binary"}},
				},
			},
			404: openapi.ResponseRef("NotFound"),
		},
	},
	FetchCover: &openapi.Operation{
		Summary:     "Fetch cover from cover_url",
		Description: "Downloads the album's cover_url into storage",
		Parameters:  []*openapi.Parameter{idParam},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Cover stored", "Album"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
			413: openapi.ResponseRef("TooLarge"),
			502: openapi.ResponseRef("BadGateway"),
		},
	},
}

var trackList = map[string]*openapi.MediaType{
	"application/json": {Schema: &openapi.Schema{Type: "array", Items: openapi.SchemaRef("Track")}},
}

func (spec) Schemas() map[string]*openapi.Schema {
	album := map[string]*openapi.Schema{
		"id":          {Type: "integer", Format: "int64"},
		"title":       {Type: "string"},
		"year":        {Type: "integer"},
		"upc_ean":     {Type: "string"},
		"catalog_no":  {Type: "string"},
		"spars_code":  {Type: "string", Example: "ADD"},
		"cover_url":   {Type: "string", Format: "uri"},
		"has_cover":   {Type: "boolean"},
		"media_type":  {Type: "string", Default: DefaultMediaType},
		"notes":       {Type: "string"},
		"genre_id":    {Type: "integer", Format: "int64"},
		"location_id": {Type: "integer", Format: "int64"},
		"created_at":  {Type: "string", Format: "date-time"},
		"updated_at":  {Type: "string", Format: "date-time"},
		"archived_at": {Type: "string", Format: "date-time"},
	}

	detail := map[string]*openapi.Schema{
		"genre":    openapi.SchemaRef("Genre"),
		"location": openapi.SchemaRef("Location"),
		"artists":  {Type: "array", Items: openapi.SchemaRef("AlbumCredit")},
		"tags":     {Type: "array", Items: openapi.SchemaRef("Tag")},
		"tracks":   {Type: "array", Items: openapi.SchemaRef("Track")},
	}
	maps.Copy(detail, album)

	return map[string]*openapi.Schema{
		"Album":       {Type: "object", Properties: album},
		"AlbumDetail": {Type: "object", Properties: detail},
		"AlbumCredit": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":   {Type: "integer", Format: "int64"},
				"name": {Type: "string"},
				"role": {Type: "string", Default: DefaultRole},
			},
		},
		"AlbumCommand": {
			Type:     "object",
			Required: []string{"title"},
			Properties: map[string]*openapi.Schema{
				"title":       {Type: "string", Example: "Kind of Blue"},
				"year":        {Type: "integer", Example: 1959},
				"upc_ean":     {Type: "string"},
				"catalog_no":  {Type: "string"},
				"spars_code":  {Type: "string", Description: "Three of A or D"},
				"cover_url":   {Type: "string", Format: "uri"},
				"media_type":  {Type: "string", Default: DefaultMediaType},
				"notes":       {Type: "string"},
				"genre_id":    {Type: "integer", Format: "int64"},
				"location_id": {Type: "integer", Format: "int64"},
			},
		},
		"ImportAlbumCommand": {
			Type:     "object",
			Required: []string{"album"},
			Properties: map[string]*openapi.Schema{
				"album":   openapi.SchemaRef("AlbumCommand"),
				"artists": {Type: "array", Items: &openapi.Schema{Type: "string"}},
				"tags":    {Type: "array", Items: &openapi.Schema{Type: "string"}},
				"tracks":  {Type: "array", Items: openapi.SchemaRef("TrackInput")},
			},
		},
		"AlbumPageResult": openapi.PageResultSchema("Album"),
	}
}
