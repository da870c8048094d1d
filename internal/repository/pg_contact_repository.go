package repository

import (
	"context"
	"time"

	"github.com/contactdesk/backend/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ContactRepository defines the persistence interface for contacts.
// It is defined here (in repository) to avoid an import cycle with service.
type ContactRepository interface {
	// Insert persists a new contact and populates c.ID and c.CreatedAt.
	Insert(ctx context.Context, c *model.Contact) error

	// List returns all contacts ordered by CreatedAt descending.
	List(ctx context.Context) ([]*model.Contact, error)

	// Delete removes the contact with the given id. Returns ErrNotFound
	// when no such contact exists.
	Delete(ctx context.Context, id string) error
}

// PgContactRepository is the PostgreSQL implementation of ContactRepository.
type PgContactRepository struct {
	pool *pgxpool.Pool
}

// NewPgContactRepository creates a PgContactRepository backed by the given pool.
func NewPgContactRepository(pool *pgxpool.Pool) *PgContactRepository {
	return &PgContactRepository{pool: pool}
}

// Ensure PgContactRepository implements ContactRepository at compile time.
var _ ContactRepository = (*PgContactRepository)(nil)

// Insert assigns the id and creation timestamp here rather than in the
// database so both are set exactly once, in one place.
func (r *PgContactRepository) Insert(ctx context.Context, c *model.Contact) error {
	c.ID = uuid.NewString()
	c.CreatedAt = time.Now().UTC()

	_, err := r.pool.Exec(ctx,
		`INSERT INTO contacts (id, name, phone, email, message, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID, c.Name, c.Phone, c.Email, c.Message, c.CreatedAt,
	)
	return err
}

// List returns every contact, newest first.
func (r *PgContactRepository) List(ctx context.Context) ([]*model.Contact, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id::text, name, phone, email, message, created_at
		 FROM contacts
		 ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contacts []*model.Contact
	for rows.Next() {
		var c model.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.Message, &c.CreatedAt); err != nil {
			return nil, err
		}
		contacts = append(contacts, &c)
	}
	return contacts, rows.Err()
}

// Delete removes one contact by id. The id is compared as text so a
// malformed identifier reports ErrNotFound instead of a query error.
func (r *PgContactRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM contacts WHERE id::text = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
