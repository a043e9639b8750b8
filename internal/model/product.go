package model

// Product is an item of the export catalogue. Category is populated by
// the repository when the product belongs to one.
type Product struct {
	Base
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    *string   `json:"imageUrl"`
	PdfURL      *string   `json:"pdfUrl"`
	CategoryID  *int64    `json:"categoryId"`
	Category    *Category `json:"category"`
}
