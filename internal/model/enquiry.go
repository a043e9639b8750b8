package model

import "time"

// Enquiry is a customer contact/interest record. It is immutable once
// stored. Product is nil when the enquiry is not tied to a product.
type Enquiry struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Country   *string   `json:"country"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Product   *Product  `json:"product"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewEnquiry builds an unsaved enquiry without a product association.
func NewEnquiry(firstName, lastName string, country *string, email, message string) *Enquiry {
	return &Enquiry{
		FirstName: firstName,
		LastName:  lastName,
		Country:   country,
		Email:     email,
		Message:   message,
	}
}

// FullName is used in notifications and logs.
func (e *Enquiry) FullName() string {
	return e.FirstName + " " + e.LastName
}
