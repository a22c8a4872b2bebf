package lookup

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/JaimeStill/discvault/internal/tracks"
)

const maxGenres = 5

func toRelease(barcode string, found mbRelease, detail *mbRelease, coverArtURL string) Release {
	r := Release{
		Title:   found.Title,
		Year:    releaseYear(found.Date),
		Artists: creditNames(found.ArtistCredit),
		Genres:  []string{},
		Barcode: barcode,
		MBID:    found.ID,
		Tracks:  []Track{},
	}

	if len(found.LabelInfo) > 0 && found.LabelInfo[0].CatalogNumber != "" {
		c := found.LabelInfo[0].CatalogNumber
		r.CatalogNo = &c
	}

	if found.ID != "" {
		u := fmt.Sprintf("%s/release/%s/front-250", strings.TrimRight(coverArtURL, "/"), found.ID)
		r.CoverURL = &u
	}

	if detail != nil {
		r.Genres = topGenres(detail)
		r.Tracks = tracklist(detail.Media)
	}

	return r
}

func releaseYear(date string) *int {
	if len(date) < 4 {
		return nil
	}
	y, err := strconv.Atoi(date[:4])
	if err != nil || y <= 0 {
		return nil
	}
	return &y
}

func creditNames(credits []artistCredit) []string {
	names := make([]string, 0, len(credits))
	for _, c := range credits {
		name := c.Artist.Name
		if name == "" {
			name = c.Name
		}
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}

// topGenres prefers release tags and falls back to release-group tags.
func topGenres(detail *mbRelease) []string {
	tags := detail.Tags
	if len(tags) == 0 && detail.ReleaseGroup != nil {
		tags = detail.ReleaseGroup.Tags
	}

	sorted := make([]mbTag, len(tags))
	copy(sorted, tags)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Count > sorted[j].Count
	})

	genres := make([]string, 0, maxGenres)
	for _, t := range sorted {
		if len(genres) == maxGenres {
			break
		}
		if t.Name == "" {
			continue
		}
		genres = append(genres, titleCase(t.Name))
	}
	return genres
}

func tracklist(media []mbMedium) []Track {
	result := make([]Track, 0)
	for i, m := range media {
		discNo := i + 1
		discName := m.Format
		if discName == "" {
			discName = fmt.Sprintf("Disc %d", discNo)
		}

		for j, t := range m.Tracks {
			no, err := strconv.Atoi(t.Number)
			if err != nil {
				no = t.Position
			}
			if no < 1 {
				no = j + 1
			}

			title := t.Recording.Title
			if title == "" {
				title = t.Title
			}

			var duration *string
			if t.Length != nil && *t.Length > 0 {
				d := tracks.FormatDuration(*t.Length)
				duration = &d
			}

			result = append(result, Track{
				TrackNo:  no,
				Title:    title,
				Duration: duration,
				DiscNo:   discNo,
				DiscName: discName,
			})
		}
	}
	return result
}

// titleCase upper-cases the first letter of every run of letters and lower-cases the rest.
func titleCase(s string) string {
	var b strings.Builder
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
			continue
		}
		b.WriteRune(r)
		prevLetter = false
	}
	return b.String()
}
