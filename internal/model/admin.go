package model

// Admin is a back-office account. Email is unique and is the login identity.
type Admin struct {
	Base
	Email string `json:"email" db:"email"`

	// Password is the bcrypt hash, never the plaintext.
	Password string `json:"-" db:"password"`
}
