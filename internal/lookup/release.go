package lookup

// Release is a MusicBrainz release reduced to the fields needed to catalogue a disc.
type Release struct {
	Title     string   `json:"title"`
	Year      *int     `json:"year"`
	Artists   []string `json:"artists"`
	Genres    []string `json:"genres"`
	Barcode   string   `json:"barcode"`
	MBID      string   `json:"mbid"`
	CatalogNo *string  `json:"catalog_no"`
	CoverURL  *string  `json:"cover_url"`
	Tracks    []Track  `json:"tracks"`
}

// Track is a single entry of a release tracklist.
type Track struct {
	TrackNo  int     `json:"track_no"`
	Title    string  `json:"title"`
	Duration *string `json:"duration"`
	DiscNo   int     `json:"disc_no"`
	DiscName string  `json:"disc_name"`
}

// wire types for the MusicBrainz JSON web service

type searchResponse struct {
	Releases []mbRelease `json:"releases"`
}

type mbRelease struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Date         string          `json:"date"`
	Barcode      string          `json:"barcode"`
	ArtistCredit []artistCredit  `json:"artist-credit"`
	LabelInfo    []labelInfo     `json:"label-info"`
	Tags         []mbTag         `json:"tags"`
	ReleaseGroup *mbReleaseGroup `json:"release-group"`
	Media        []mbMedium      `json:"media"`
}

type artistCredit struct {
	Name   string `json:"name"`
	Artist struct {
		Name string `json:"name"`
	} `json:"artist"`
}

type labelInfo struct {
	CatalogNumber string `json:"catalog-number"`
}

type mbTag struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type mbReleaseGroup struct {
	Tags []mbTag `json:"tags"`
}

type mbMedium struct {
	Format string    `json:"format"`
	Title  string    `json:"title"`
	Tracks []mbTrack `json:"tracks"`
}

type mbTrack struct {
	Number    string `json:"number"`
	Position  int    `json:"position"`
	Title     string `json:"title"`
	Length    *int   `json:"length"`
	Recording struct {
		Title string `json:"title"`
	} `json:"recording"`
}
