package ui

import (
	"context"
	"sync"

	"github.com/contactdesk/backend/pkg/contactapi"
)

// LoadErrorMessage is shown when the initial fetch fails. There is no retry.
const LoadErrorMessage = "Failed to load contacts. Please make sure the API server is running."

// ContactLister is the slice of the API client the page needs.
type ContactLister interface {
	List(ctx context.Context) ([]*contactapi.Contact, error)
}

// Page owns the canonical contact collection for a session. It is fetched
// once by Load and afterwards mutated only through OnContactAdded and
// OnContactDeleted — children never touch the collection directly.
type Page struct {
	mu       sync.Mutex
	client   ContactLister
	contacts []*contactapi.Contact
	loading  bool
	loadErr  string
}

// NewPage creates a Page in the loading state.
func NewPage(client ContactLister) *Page {
	return &Page{client: client, loading: true}
}

// Load fetches the full contact list once and stores it newest first. On
// failure the error message is set and the collection stays empty. The
// loading flag drops once the fetch settles either way.
func (p *Page) Load(ctx context.Context) {
	contacts, err := p.client.List(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.loading = false
	if err != nil {
		p.loadErr = LoadErrorMessage
		return
	}
	p.contacts = SortContacts(contacts, SortDateNewest)
}

// Contacts returns a copy of the canonical collection.
func (p *Page) Contacts() []*contactapi.Contact {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]*contactapi.Contact, len(p.contacts))
	copy(out, p.contacts)
	return out
}

// Loading reports whether the initial fetch is still in flight.
func (p *Page) Loading() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loading
}

// LoadError returns the initial-fetch error message, or "".
func (p *Page) LoadError() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loadErr
}

// OnContactAdded prepends the newly created record. The server's create
// response is taken as authoritative; no re-fetch happens.
func (p *Page) OnContactAdded(c *contactapi.Contact) {
	if c == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.contacts = append([]*contactapi.Contact{c}, p.contacts...)
}

// OnContactDeleted removes the contact with the given id from the
// canonical collection.
func (p *Page) OnContactDeleted(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	kept := p.contacts[:0]
	for _, c := range p.contacts {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	p.contacts = kept
}
