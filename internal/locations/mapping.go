package locations

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/JaimeStill/discvault/pkg/query"
	"github.com/JaimeStill/discvault/pkg/repository"
)

var projection = query.NewProjectionMap("public", "locations", "l").
	Project("id", "ID").
	Project("name", "Name").
	Project("storage_type", "StorageType").
	Project("section", "Section").
	Project("shelf", "Shelf").
	Project("position", "Position").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{Field: "Name"}

const returning = "RETURNING id, name, storage_type, section, shelf, position, created_at, updated_at"

func scanLocation(s repository.Scanner) (Location, error) {
	var l Location
	err := s.Scan(&l.ID, &l.Name, &l.StorageType, &l.Section, &l.Shelf, &l.Position, &l.CreatedAt, &l.UpdatedAt)
	return l, err
}

// Filters contains optional filtering criteria for location queries.
type Filters struct {
	Name        *string
	StorageType *string
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters
	if n := values.Get("name"); n != "" {
		f.Name = &n
	}
	if st := values.Get("storage_type"); st != "" {
		f.StorageType = &st
	}
	return f
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	b.WhereContains("Name", f.Name)
	if f.StorageType != nil {
		b.WhereEquals("StorageType", *f.StorageType)
	}
	return b
}

// Validate trims the command and checks required fields.
func (c Command) Validate() (Command, error) {
	c.Name = strings.TrimSpace(c.Name)
	c.StorageType = strings.TrimSpace(c.StorageType)
	if c.Name == "" {
		return c, fmt.Errorf("%w: name is required", ErrInvalid)
	}
	if c.StorageType == "" {
		return c, fmt.Errorf("%w: storage_type is required", ErrInvalid)
	}
	c.Section = optional(c.Section)
	c.Shelf = optional(c.Shelf)
	c.Position = optional(c.Position)
	return c, nil
}

func optional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
