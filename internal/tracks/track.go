package tracks

// Track is one entry of an album tracklist.
type Track struct {
	ID       int64   `json:"id"`
	AlbumID  int64   `json:"album_id"`
	DiscNo   int     `json:"disc_no"`
	DiscName *string `json:"disc_name"`
	TrackNo  int     `json:"track_no"`
	Title    string  `json:"title"`
	Duration *string `json:"duration"`
}

// Input describes a track to store when replacing a tracklist.
type Input struct {
	DiscNo   int     `json:"disc_no"`
	DiscName *string `json:"disc_name,omitempty"`
	TrackNo  int     `json:"track_no"`
	Title    string  `json:"title"`
	Duration *string `json:"duration,omitempty"`
}

// ReplaceCommand carries the complete new tracklist for an album.
type ReplaceCommand struct {
	Tracks []Input `json:"tracks"`
}

// ParsedTrack is a row recovered from pasted CSV text.
type ParsedTrack struct {
	TrackNo  int     `json:"track_no"`
	Title    string  `json:"title"`
	Duration *string `json:"duration"`
	DiscNo   int     `json:"disc_no"`
}

// Inputs converts parsed rows into replace inputs.
func Inputs(parsed []ParsedTrack) []Input {
	inputs := make([]Input, len(parsed))
	for i, p := range parsed {
		inputs[i] = Input{
			DiscNo:   p.DiscNo,
			TrackNo:  p.TrackNo,
			Title:    p.Title,
			Duration: p.Duration,
		}
	}
	return inputs
}
