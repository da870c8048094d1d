package ui

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/contactdesk/backend/pkg/contactapi"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortMode selects the ordering of the rendered contact list. It is a
// presentation concern only and never touches the canonical collection.
type SortMode string

const (
	SortNameAsc    SortMode = "name-asc"
	SortNameDesc   SortMode = "name-desc"
	SortDateNewest SortMode = "date-newest"
	SortDateOldest SortMode = "date-oldest"
)

// EmptyListMessage is the placeholder rendered instead of the table when the
// collection is empty.
const EmptyListMessage = "No contacts yet. Add your first contact above."

// nameCollator performs locale-aware name comparison so lowercase and
// uppercase names interleave by letter, not by byte value.
var nameCollator = collate.New(language.Und)

// SortContacts returns a sorted copy of contacts. The input slice is never
// mutated. Unknown modes return the copy in input order.
func SortContacts(contacts []*contactapi.Contact, mode SortMode) []*contactapi.Contact {
	sorted := make([]*contactapi.Contact, len(contacts))
	copy(sorted, contacts)

	switch mode {
	case SortNameAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return nameCollator.CompareString(sorted[i].Name, sorted[j].Name) < 0
		})
	case SortNameDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return nameCollator.CompareString(sorted[j].Name, sorted[i].Name) < 0
		})
	case SortDateNewest:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
		})
	case SortDateOldest:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
		})
	}
	return sorted
}

// ContactDeleter is the slice of the API client the list view needs.
type ContactDeleter interface {
	Delete(ctx context.Context, id string) error
}

// pendingDelete identifies the contact named in the confirmation dialog.
type pendingDelete struct {
	ID   string
	Name string
}

// ListView holds the list's local UI state: the selected sort mode and the
// delete-confirmation dialog. The contact collection itself is owned by the
// parent Page and passed into Sorted on each render.
type ListView struct {
	mu        sync.Mutex
	client    ContactDeleter
	onDeleted func(id string)

	sortMode   SortMode
	dialogOpen bool
	pending    *pendingDelete
}

// NewListView creates a ListView deleting through client. onDeleted is
// called with the removed id after a successful delete; it may be nil.
func NewListView(client ContactDeleter, onDeleted func(id string)) *ListView {
	return &ListView{
		client:    client,
		onDeleted: onDeleted,
		sortMode:  SortDateNewest,
	}
}

// SortMode returns the currently selected sort mode.
func (v *ListView) SortMode() SortMode {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.sortMode
}

// SetSortMode selects a sort mode for subsequent Sorted calls.
func (v *ListView) SetSortMode(mode SortMode) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.sortMode = mode
}

// Sorted returns the view's ordering of contacts without mutating them.
func (v *ListView) Sorted(contacts []*contactapi.Contact) []*contactapi.Contact {
	return SortContacts(contacts, v.SortMode())
}

// RequestDelete opens the confirmation dialog for the given contact.
func (v *ListView) RequestDelete(id, name string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.pending = &pendingDelete{ID: id, Name: name}
	v.dialogOpen = true
}

// CancelDelete closes the dialog without deleting anything.
func (v *ListView) CancelDelete() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.dialogOpen = false
	v.pending = nil
}

// DialogOpen reports whether the confirmation dialog is showing.
func (v *ListView) DialogOpen() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.dialogOpen
}

// PendingDelete returns the contact the dialog is asking about.
func (v *ListView) PendingDelete() (id, name string, ok bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.pending == nil {
		return "", "", false
	}
	return v.pending.ID, v.pending.Name, true
}

// ConfirmDelete issues the delete request for the pending contact. On
// success the parent is notified so it can drop the record from the
// canonical collection. The dialog closes in every outcome; a failure is
// only logged, never surfaced to the user.
func (v *ListView) ConfirmDelete(ctx context.Context) {
	v.mu.Lock()
	if v.pending == nil {
		v.mu.Unlock()
		return
	}
	id := v.pending.ID
	v.mu.Unlock()

	err := v.client.Delete(ctx, id)
	if err != nil {
		slog.Error("delete contact failed", "id", id, "error", err)
	} else if v.onDeleted != nil {
		v.onDeleted(id)
	}

	v.mu.Lock()
	v.dialogOpen = false
	v.pending = nil
	v.mu.Unlock()
}
