package stats

// Stats summarizes the collection for the dashboard.
type Stats struct {
	Albums    int `json:"albums"`
	Archived  int `json:"archived"`
	Artists   int `json:"artists"`
	Genres    int `json:"genres"`
	Tags      int `json:"tags"`
	Locations int `json:"locations"`
	Tracks    int `json:"tracks"`
	Covers    int `json:"covers"`

	MediaTypes []Bucket `json:"media_types"`
	Decades    []Bucket `json:"decades"`
}

// Bucket is a labeled album count.
type Bucket struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}
