package model

// Category groups products on the public site.
type Category struct {
	Base
	Title       string  `json:"title" db:"title"`
	Description string  `json:"description" db:"description"`
	ImageURL    *string `json:"imageUrl" db:"image_url"`
}
