package genres

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/JaimeStill/discvault/pkg/query"
	"github.com/JaimeStill/discvault/pkg/repository"
)

var projection = query.NewProjectionMap("public", "genres", "g").
	Project("id", "ID").
	Project("name", "Name").
	Project("description", "Description").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{Field: "Name"}

const returning = "RETURNING id, name, description, created_at, updated_at"

func scanGenre(s repository.Scanner) (Genre, error) {
	var g Genre
	err := s.Scan(&g.ID, &g.Name, &g.Description, &g.CreatedAt, &g.UpdatedAt)
	return g, err
}

type Filters struct {
	Name *string
}

func FiltersFromQuery(values url.Values) Filters {
	var name *string
	if n := values.Get("name"); n != "" {
		name = &n
	}
	return Filters{Name: name}
}

func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.WhereContains("Name", f.Name)
}

func validate(name string, description *string) (string, *string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", nil, fmt.Errorf("%w: name is required", ErrInvalid)
	}
	if description != nil {
		d := strings.TrimSpace(*description)
		if d == "" {
			description = nil
		} else {
			description = &d
		}
	}
	return name, description, nil
}
