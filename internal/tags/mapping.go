package tags

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/JaimeStill/discvault/pkg/query"
	"github.com/JaimeStill/discvault/pkg/repository"
)

var projection = query.NewProjectionMap("public", "tags", "tg").
	Project("id", "ID").
	Project("name", "Name").
	Project("color", "Color").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{Field: "Name"}

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

func scanTag(s repository.Scanner) (Tag, error) {
	var t Tag
	err := s.Scan(&t.ID, &t.Name, &t.Color, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

type Filters struct {
	Name *string
}

func FiltersFromQuery(values url.Values) Filters {
	var name *string
	if n := values.Get("name"); n != "" {
		name = &n
	}

	return Filters{
		Name: name,
	}
}

func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.WhereContains("Name", f.Name)
}

// Validate trims name and color and checks them. An empty color is returned empty.
func Validate(name, color string) (string, string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", "", fmt.Errorf("%w: name is required", ErrInvalid)
	}

	color = strings.TrimSpace(color)
	if color != "" && !hexColor.MatchString(color) {
		return "", "", fmt.Errorf("%w: color %q is not a hex color", ErrInvalid, color)
	}
	return name, strings.ToUpper(color), nil
}
