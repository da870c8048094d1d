package ui

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/contactdesk/backend/pkg/contactapi"
)

// ---------------------------------------------------------------------------
// mock creator
// ---------------------------------------------------------------------------

type mockCreator struct {
	createFunc func(ctx context.Context, in contactapi.CreateContactParams) (*contactapi.Contact, error)
}

func (m *mockCreator) Create(ctx context.Context, in contactapi.CreateContactParams) (*contactapi.Contact, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, in)
	}
	return &contactapi.Contact{}, nil
}

func fillValidDraft(f *Form) {
	f.SetField(FieldName, "Jane Doe")
	f.SetField(FieldPhone, "555-1234")
}

// ---------------------------------------------------------------------------
// validity gating
// ---------------------------------------------------------------------------

func TestForm_IsValid_RequiresNameAndPhone(t *testing.T) {
	f := NewForm(&mockCreator{}, nil)

	if f.IsValid() {
		t.Error("empty form must not be valid")
	}

	f.SetField(FieldName, "Jane")
	if f.IsValid() {
		t.Error("form without phone must not be valid")
	}

	f.SetField(FieldPhone, "555")
	if !f.IsValid() {
		t.Error("form with name and phone must be valid")
	}

	f.SetField(FieldName, "   ")
	if f.IsValid() {
		t.Error("whitespace-only name must not be valid")
	}
}

// TestForm_IsValid_EmailOptional verifies an invalid email disables submit
// and clearing the field re-enables it.
func TestForm_IsValid_EmailOptional(t *testing.T) {
	f := NewForm(&mockCreator{}, nil)
	fillValidDraft(f)

	f.SetField(FieldEmail, "not-an-email")
	if f.IsValid() {
		t.Error("invalid email must disable submit")
	}

	f.SetField(FieldEmail, "")
	if !f.IsValid() {
		t.Error("blank email is optional and must re-enable submit")
	}

	f.SetField(FieldEmail, "jane@example.com")
	if !f.IsValid() {
		t.Error("well-formed email must be valid")
	}
}

func TestForm_IsValid_EmailPattern(t *testing.T) {
	cases := []struct {
		email string
		valid bool
	}{
		{"jane@example.com", true},
		{"a@b.co", true},
		{"no-at-sign", false},
		{"two@@example.com", false},
		{"no-dot@example", false},
		{"spaces in@example.com", false},
	}

	for _, tc := range cases {
		f := NewForm(&mockCreator{}, nil)
		fillValidDraft(f)
		f.SetField(FieldEmail, tc.email)
		if got := f.IsValid(); got != tc.valid {
			t.Errorf("email %q: expected valid=%v, got %v", tc.email, tc.valid, got)
		}
	}
}

// ---------------------------------------------------------------------------
// Validate + error map
// ---------------------------------------------------------------------------

func TestForm_Validate_PopulatesErrors(t *testing.T) {
	f := NewForm(&mockCreator{}, nil)
	f.SetField(FieldEmail, "bad-email")

	if f.Validate() {
		t.Fatal("expected validation failure")
	}
	if f.FieldError(FieldName) == "" {
		t.Error("expected name error")
	}
	if f.FieldError(FieldPhone) == "" {
		t.Error("expected phone error")
	}
	if f.FieldError(FieldEmail) == "" {
		t.Error("expected email error")
	}
}

// TestForm_SetField_ClearsError verifies editing an errored field clears that
// error immediately, before the next submit.
func TestForm_SetField_ClearsError(t *testing.T) {
	f := NewForm(&mockCreator{}, nil)
	f.Validate()

	if f.FieldError(FieldName) == "" {
		t.Fatal("expected name error after validation")
	}

	f.SetField(FieldName, "J")
	if f.FieldError(FieldName) != "" {
		t.Error("editing the name field must clear its error")
	}
	if f.FieldError(FieldPhone) == "" {
		t.Error("other fields keep their errors")
	}
}

// ---------------------------------------------------------------------------
// Submit protocol
// ---------------------------------------------------------------------------

func TestForm_Submit_Success(t *testing.T) {
	created := &contactapi.Contact{ID: "new-1", Name: "Jane Doe", Phone: "555-1234", CreatedAt: time.Now()}
	var sent contactapi.CreateContactParams
	mock := &mockCreator{
		createFunc: func(ctx context.Context, in contactapi.CreateContactParams) (*contactapi.Contact, error) {
			sent = in
			return created, nil
		},
	}

	var notified *contactapi.Contact
	f := NewForm(mock, func(c *contactapi.Contact) { notified = c })
	fillValidDraft(f)
	f.SetField(FieldMessage, "hello")

	if err := f.Submit(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sent.Name != "Jane Doe" || sent.Message != "hello" {
		t.Errorf("draft not sent as-is: %+v", sent)
	}
	if notified == nil || notified.ID != "new-1" {
		t.Errorf("parent must be notified with the created record, got %+v", notified)
	}
	if d := f.Draft(); d != (contactapi.CreateContactParams{}) {
		t.Errorf("draft must be cleared after success, got %+v", d)
	}
	if f.SuccessMessage() == "" {
		t.Error("expected success message after submit")
	}
	if f.Submitting() {
		t.Error("submitting flag must be cleared")
	}
}

// TestForm_Submit_SuccessMessageAutoClears exercises the fixed-delay banner
// clear with a shortened TTL.
func TestForm_Submit_SuccessMessageAutoClears(t *testing.T) {
	f := NewForm(&mockCreator{}, nil)
	f.successTTL = 10 * time.Millisecond
	fillValidDraft(f)

	if err := f.Submit(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.SuccessMessage() == "" {
		t.Fatal("expected success message right after submit")
	}

	deadline := time.Now().Add(time.Second)
	for f.SuccessMessage() != "" {
		if time.Now().After(deadline) {
			t.Fatal("success message never cleared")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestForm_Submit_ValidationFailureSkipsRequest(t *testing.T) {
	mock := &mockCreator{
		createFunc: func(ctx context.Context, in contactapi.CreateContactParams) (*contactapi.Contact, error) {
			t.Error("Create must not be called when validation fails")
			return nil, nil
		},
	}
	f := NewForm(mock, nil)

	if err := f.Submit(context.Background()); err == nil {
		t.Error("expected an error for an invalid draft")
	}
	if f.FieldError(FieldName) == "" {
		t.Error("expected name error populated by submit-time validation")
	}
}

// TestForm_Submit_FailureKeepsDraft verifies a failed request sets a generic
// submit error and leaves the draft intact.
func TestForm_Submit_FailureKeepsDraft(t *testing.T) {
	mock := &mockCreator{
		createFunc: func(ctx context.Context, in contactapi.CreateContactParams) (*contactapi.Contact, error) {
			return nil, errors.New("network down")
		},
	}
	notified := false
	f := NewForm(mock, func(*contactapi.Contact) { notified = true })
	fillValidDraft(f)

	if err := f.Submit(context.Background()); err == nil {
		t.Fatal("expected error")
	}

	if f.FieldError(FieldSubmit) == "" {
		t.Error("expected generic submit error")
	}
	if d := f.Draft(); d.Name != "Jane Doe" || d.Phone != "555-1234" {
		t.Errorf("draft must survive a failed submit, got %+v", d)
	}
	if notified {
		t.Error("parent must not be notified on failure")
	}
	if f.SuccessMessage() != "" {
		t.Error("no success message on failure")
	}
	if f.Submitting() {
		t.Error("submitting flag must be cleared even on failure")
	}
}
