package tags

import "time"

// DefaultColor is assigned to tags created without a color.
const DefaultColor = "#CCCCCC"

// Tag is a free-form label attached to albums.
type Tag struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateCommand contains the data required to create a tag.
type CreateCommand struct {
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// UpdateCommand contains the data required to update a tag.
// An empty Color keeps the current color.
type UpdateCommand struct {
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}
