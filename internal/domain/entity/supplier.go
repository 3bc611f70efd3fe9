package entity

import "time"

// Supplier representa un proveedor de artículos del catálogo.
type Supplier struct {
	ID            string
	Name          string
	ContactPerson string
	Email         string
	Phone         string
	Address       string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
