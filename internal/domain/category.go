package domain

import "time"

// Category groups catalog equipment (excavators, scaffolding, power tools).
// Names are unique case-insensitively.
type Category struct {
	ID          int64
	Name        string
	Description *string
	Icon        string

	IsActive bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
