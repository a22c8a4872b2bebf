package tracks

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseCSV reads a pasted tracklist. Rows carry no header and are interpreted by column count:
//
//	3+ columns: number, title, duration
//	2 columns:  number, title when the first column is an integer, else title, duration
//	1 column:   title
//
// A missing or malformed number falls back to the row's line. Empty lines are
// skipped; a row of empty fields still yields a "Track N" placeholder. Empty
// text yields an empty tracklist.
func ParseCSV(text string) ([]ParsedTrack, error) {
	text = strings.TrimSpace(text)

	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	r.LazyQuotes = true

	parsed := make([]ParsedTrack, 0)
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidCSV, err)
		}
		line, _ := r.FieldPos(0)
		parsed = append(parsed, parseRow(row, line))
	}

	return parsed, nil
}

func parseRow(row []string, line int) ParsedTrack {
	t := ParsedTrack{TrackNo: line, DiscNo: 1}

	var title, duration string
	switch {
	case len(row) >= 3:
		if n, err := strconv.Atoi(strings.TrimSpace(row[0])); err == nil {
			t.TrackNo = n
		}
		title, duration = row[1], row[2]
	case len(row) == 2:
		if n, err := strconv.Atoi(strings.TrimSpace(row[0])); err == nil {
			t.TrackNo = n
			title = row[1]
		} else {
			title, duration = row[0], row[1]
		}
	default:
		title = row[0]
	}

	t.Title = strings.TrimSpace(title)
	if t.Title == "" {
		t.Title = fmt.Sprintf("Track %d", line)
	}
	if d := strings.TrimSpace(duration); d != "" {
		t.Duration = &d
	}
	return t
}

// FormatDuration renders a millisecond length as m:ss.
func FormatDuration(ms int) string {
	s := ms / 1000
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}
