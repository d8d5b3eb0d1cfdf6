package listing

import "context"

// Repository is the persistence boundary for listings. Implementations
// must honor a transaction carried in the context and enforce slug
// uniqueness with a store-level constraint, surfacing violations as
// ErrSlugTaken.
type Repository interface {
	// Create inserts a new listing. Returns ErrSlugTaken when the slug
	// is already present.
	Create(ctx context.Context, l *Listing) error

	// FindBySlug returns the listing regardless of approval state, or
	// ErrNotFound.
	FindBySlug(ctx context.Context, slug string) (*Listing, error)

	// FindApprovedBySlug returns the listing only when it is approved,
	// or ErrNotFound.
	FindApprovedBySlug(ctx context.Context, slug string) (*Listing, error)

	// FindApproved returns all approved listings, featured first, then
	// by name case-insensitively.
	FindApproved(ctx context.Context) ([]*Listing, error)

	// CountBySlug counts rows holding the exact slug.
	CountBySlug(ctx context.Context, slug string) (int64, error)

	// Count counts all rows.
	Count(ctx context.Context) (int64, error)

	// Approve idempotently sets the publication flag for the slug.
	// Returns ErrNotFound when no such listing exists.
	Approve(ctx context.Context, slug string) error
}
