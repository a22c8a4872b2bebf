package genres

import "time"

// Genre is the primary musical genre assigned to an album.
type Genre struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateCommand struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

type UpdateCommand struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}
