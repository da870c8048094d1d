package ui

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/contactdesk/backend/pkg/contactapi"
)

// Field names used by the form's draft and error map.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldPhone   = "phone"
	FieldMessage = "message"
	FieldSubmit  = "submit"
)

// Messages shown by the form.
const (
	nameRequiredMessage  = "Name is required"
	phoneRequiredMessage = "Phone is required"
	invalidEmailMessage  = "Please enter a valid email address"
	submitFailedMessage  = "Failed to submit contact. Please try again."
	successMessage       = "Contact added successfully!"
)

// successDisplayDuration is how long the success banner stays up.
const successDisplayDuration = 2 * time.Second

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// errValidationFailed is returned by Submit when the draft fails validation;
// the specifics live in the form's error map.
var errValidationFailed = errors.New("form validation failed")

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// ContactCreator is the slice of the API client the form needs.
type ContactCreator interface {
	Create(ctx context.Context, in contactapi.CreateContactParams) (*contactapi.Contact, error)
}

// Form holds the draft state of the contact creation form: field values, a
// per-field error map, a submitting flag and a transient success message.
// Safe for concurrent use; the success banner clears itself from a timer
// goroutine.
type Form struct {
	mu      sync.Mutex
	client  ContactCreator
	onAdded func(*contactapi.Contact)

	draft      contactapi.CreateContactParams
	errors     map[string]string
	submitting bool
	success    string

	successTTL time.Duration
	successGen int
}

// NewForm creates a Form submitting through client. onAdded is called with
// the server's created record after a successful submit; it may be nil.
func NewForm(client ContactCreator, onAdded func(*contactapi.Contact)) *Form {
	return &Form{
		client:     client,
		onAdded:    onAdded,
		errors:     make(map[string]string),
		successTTL: successDisplayDuration,
	}
}

// SetField updates one draft field. Editing a field that currently has an
// error clears that error immediately.
func (f *Form) SetField(field, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch field {
	case FieldName:
		f.draft.Name = value
	case FieldEmail:
		f.draft.Email = value
	case FieldPhone:
		f.draft.Phone = value
	case FieldMessage:
		f.draft.Message = value
	default:
		return
	}

	delete(f.errors, field)
}

// Draft returns a copy of the current field values.
func (f *Form) Draft() contactapi.CreateContactParams {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

// FieldError returns the current error message for a field, or "".
func (f *Form) FieldError(field string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errors[field]
}

// Submitting reports whether a submit is in flight.
func (f *Form) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

// SuccessMessage returns the transient success banner text, or "".
func (f *Form) SuccessMessage() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.success
}

// IsValid reports whether the draft would pass validation. It gates the
// submit control and is recomputed on every edit; it does not touch the
// error map.
func (f *Form) IsValid() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.checkName() == "" && f.checkPhone() == "" && f.checkEmail() == ""
}

// Validate re-runs the field checks and repopulates the error map, guarding
// against stale IsValid gating. Returns true when the draft is submittable.
func (f *Form) Validate() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.validateLocked()
}

func (f *Form) validateLocked() bool {
	f.errors = make(map[string]string)
	if msg := f.checkName(); msg != "" {
		f.errors[FieldName] = msg
	}
	if msg := f.checkPhone(); msg != "" {
		f.errors[FieldPhone] = msg
	}
	if msg := f.checkEmail(); msg != "" {
		f.errors[FieldEmail] = msg
	}
	return len(f.errors) == 0
}

func (f *Form) checkName() string {
	if isBlank(f.draft.Name) {
		return nameRequiredMessage
	}
	return ""
}

func (f *Form) checkPhone() string {
	if isBlank(f.draft.Phone) {
		return phoneRequiredMessage
	}
	return ""
}

// checkEmail accepts a blank email: the field is optional.
func (f *Form) checkEmail() string {
	if f.draft.Email != "" && !emailPattern.MatchString(f.draft.Email) {
		return invalidEmailMessage
	}
	return ""
}

// Submit runs the submit protocol: validate, send the create request, and on
// success clear the draft, show a success banner that clears itself, and
// notify the parent with the created record. On failure the draft stays
// intact and a generic submit error is set. The submitting flag covers the
// whole round trip.
func (f *Form) Submit(ctx context.Context) error {
	f.mu.Lock()
	if !f.validateLocked() {
		f.mu.Unlock()
		return errValidationFailed
	}
	f.submitting = true
	draft := f.draft
	f.mu.Unlock()

	contact, err := f.client.Create(ctx, draft)

	f.mu.Lock()
	f.submitting = false
	if err != nil {
		f.errors[FieldSubmit] = submitFailedMessage
		f.mu.Unlock()
		return err
	}

	f.draft = contactapi.CreateContactParams{}
	f.success = successMessage
	f.successGen++
	gen := f.successGen
	ttl := f.successTTL
	f.mu.Unlock()

	time.AfterFunc(ttl, func() {
		f.mu.Lock()
		// a newer banner supersedes this timer
		if f.successGen == gen {
			f.success = ""
		}
		f.mu.Unlock()
	})

	if f.onAdded != nil {
		f.onAdded(contact)
	}
	return nil
}
