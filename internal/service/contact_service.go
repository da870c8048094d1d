package service

import (
	"context"
	"errors"

	"github.com/contactdesk/backend/internal/model"
)

// Validation sentinels. Their messages are user-facing and returned verbatim
// in error response bodies.
var (
	ErrNameRequired  = errors.New("Name is required")
	ErrPhoneRequired = errors.New("Phone is required")
	ErrIDRequired    = errors.New("Contact ID is required")
)

// ContactService defines the business logic for managing contacts.
type ContactService interface {
	// Create validates and normalizes the input, persists a new contact and
	// returns it with ID and CreatedAt populated. Name is checked before
	// Phone; the first failing check's error is returned.
	Create(ctx context.Context, in model.ContactInput) (*model.Contact, error)

	// List returns all contacts, newest first.
	List(ctx context.Context) ([]*model.Contact, error)

	// Delete removes the contact with the given id. Returns ErrIDRequired
	// for a blank id and repository.ErrNotFound for an unknown one.
	Delete(ctx context.Context, id string) error
}
