package tracks

import (
	"fmt"
	"strings"

	"github.com/JaimeStill/discvault/pkg/query"
	"github.com/JaimeStill/discvault/pkg/repository"
)

var projection = query.NewProjectionMap("public", "tracks", "t").
	Project("id", "ID").
	Project("album_id", "AlbumID").
	Project("disc_no", "DiscNo").
	Project("disc_name", "DiscName").
	Project("track_no", "TrackNo").
	Project("title", "Title").
	Project("duration", "Duration")

func scanTrack(s repository.Scanner) (Track, error) {
	var t Track
	err := s.Scan(&t.ID, &t.AlbumID, &t.DiscNo, &t.DiscName, &t.TrackNo, &t.Title, &t.Duration)
	return t, err
}

func normalize(inputs []Input) ([]Input, error) {
	out := make([]Input, len(inputs))
	for i, in := range inputs {
		in.Title = strings.TrimSpace(in.Title)
		if in.Title == "" {
			return nil, fmt.Errorf("%w: track %d has no title", ErrInvalidTrack, i+1)
		}
		if in.TrackNo < 1 {
			in.TrackNo = i + 1
		}
		if in.DiscNo < 1 {
			in.DiscNo = 1
		}
		in.DiscName = trimmed(in.DiscName)
		in.Duration = trimmed(in.Duration)
		out[i] = in
	}
	return out, nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
