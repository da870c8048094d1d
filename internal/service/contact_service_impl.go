package service

import (
	"context"
	"strings"

	"github.com/contactdesk/backend/internal/model"
	"github.com/contactdesk/backend/internal/repository"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo repository.ContactRepository
}

// NewContactService creates a ContactService backed by the given repository.
func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactServiceImpl{repo: repo}
}

// Create trims every field, rejects blank name/phone (in that order) and
// persists the contact. Optional fields are stored as empty strings, never
// null. Email format is a client concern and is not checked here.
func (s *contactServiceImpl) Create(ctx context.Context, in model.ContactInput) (*model.Contact, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	phone := strings.TrimSpace(in.Phone)
	if phone == "" {
		return nil, ErrPhoneRequired
	}

	c := &model.Contact{
		Name:    name,
		Phone:   phone,
		Email:   strings.TrimSpace(in.Email),
		Message: strings.TrimSpace(in.Message),
	}

	if err := s.repo.Insert(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// List returns all contacts in the repository's newest-first order.
func (s *contactServiceImpl) List(ctx context.Context) ([]*model.Contact, error) {
	return s.repo.List(ctx)
}

// Delete removes a contact by id after checking the id is present.
func (s *contactServiceImpl) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrIDRequired
	}
	return s.repo.Delete(ctx, id)
}
