package domain

import "time"

// Product mirrors the catalog resource served by the backend API. The
// storefront never stores products; it only renders and forwards them.
type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       int64     `json:"price"`
	Stock       int       `json:"stock"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Category    string    `json:"category,omitempty"`
	Active      *bool     `json:"active,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty"`
}

// ProductInput is the admin create/update payload. Pointer fields are
// omitted from a PATCH when nil so the backend keeps the current value.
type ProductInput struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Price       *int64  `json:"price,omitempty"`
	Stock       *int    `json:"stock,omitempty"`
	ImageURL    *string `json:"imageUrl,omitempty"`
	Category    *string `json:"category,omitempty"`
	Active      *bool   `json:"active,omitempty"`
}
