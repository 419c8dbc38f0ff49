package domain

import "time"

// Timestamps carries the creation/update audit columns shared by all entities.
type Timestamps struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
