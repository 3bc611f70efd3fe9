package entity

import "time"

// Category representa una categoría de artículos del catálogo.
type Category struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
