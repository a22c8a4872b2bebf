package artists

import "time"

// Artist is a performer credited on one or more albums.
type Artist struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateCommand contains the data required to create an artist.
type CreateCommand struct {
	Name string `json:"name"`
}

// UpdateCommand contains the data required to rename an artist.
type UpdateCommand struct {
	Name string `json:"name"`
}
