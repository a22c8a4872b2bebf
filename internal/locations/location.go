package locations

import "time"

// Location is a physical place where discs are kept, such as a shelf or a box.
type Location struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	StorageType string    `json:"storage_type"`
	Section     *string   `json:"section"`
	Shelf       *string   `json:"shelf"`
	Position    *string   `json:"position"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Command contains the writable fields of a location, used for both create and update.
type Command struct {
	Name        string  `json:"name"`
	StorageType string  `json:"storage_type"`
	Section     *string `json:"section,omitempty"`
	Shelf       *string `json:"shelf,omitempty"`
	Position    *string `json:"position,omitempty"`
}
