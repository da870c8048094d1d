package model

import "time"

// Contact is a single address-book entry. ID and CreatedAt are assigned by
// the repository at insert time and never change afterwards; Email and
// Message are always empty strings (not null) when absent.
type Contact struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// ContactInput carries the caller-supplied fields for creating a contact.
// Name and Phone are required; Email and Message are optional.
type ContactInput struct {
	Name    string
	Phone   string
	Email   string
	Message string
}
