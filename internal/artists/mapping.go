package artists

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/JaimeStill/discvault/pkg/query"
	"github.com/JaimeStill/discvault/pkg/repository"
)

var projection = query.NewProjectionMap("public", "artists", "ar").
	Project("id", "ID").
	Project("name", "Name").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{Field: "Name"}

func scanArtist(s repository.Scanner) (Artist, error) {
	var a Artist
	err := s.Scan(&a.ID, &a.Name, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

// Filters contains optional filtering criteria for artist queries.
type Filters struct {
	Name *string
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var name *string
	if n := values.Get("name"); n != "" {
		name = &n
	}

	return Filters{
		Name: name,
	}
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.WhereContains("Name", f.Name)
}

func validName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: name is required", ErrInvalid)
	}
	return name, nil
}
