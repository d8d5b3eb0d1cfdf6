package mock

import (
	"context"
	"sort"
	"strings"
	"sync"

	"spectra-directory/domain/listing"
)

// ListingRepository is an in-memory implementation of
// listing.Repository for tests. Any of the *Func fields can be set to
// override the default behavior of a single method.
type ListingRepository struct {
	mu       sync.Mutex
	listings map[string]*listing.Listing // keyed by slug

	CreateFunc      func(ctx context.Context, l *listing.Listing) error
	FindBySlugFunc  func(ctx context.Context, slug string) (*listing.Listing, error)
	CountBySlugFunc func(ctx context.Context, slug string) (int64, error)
	ApproveFunc     func(ctx context.Context, slug string) error
}

func NewListingRepository() *ListingRepository {
	return &ListingRepository{listings: make(map[string]*listing.Listing)}
}

// Add stores a listing directly, bypassing any overrides.
func (m *ListingRepository) Add(l *listing.Listing) {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *l
	m.listings[l.Slug] = &copied
}

// Get returns the stored listing for a slug, or nil.
func (m *ListingRepository) Get(slug string) *listing.Listing {
	m.mu.Lock()
	defer m.mu.Unlock()
	if l, ok := m.listings[slug]; ok {
		copied := *l
		return &copied
	}
	return nil
}

func (m *ListingRepository) Create(ctx context.Context, l *listing.Listing) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, l)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.listings[l.Slug]; exists {
		return listing.ErrSlugTaken
	}
	copied := *l
	m.listings[l.Slug] = &copied
	return nil
}

func (m *ListingRepository) FindBySlug(ctx context.Context, slug string) (*listing.Listing, error) {
	if m.FindBySlugFunc != nil {
		return m.FindBySlugFunc(ctx, slug)
	}
	if l := m.Get(slug); l != nil {
		return l, nil
	}
	return nil, listing.ErrNotFound
}

func (m *ListingRepository) FindApprovedBySlug(ctx context.Context, slug string) (*listing.Listing, error) {
	l := m.Get(slug)
	if l == nil || !l.IsApproved {
		return nil, listing.ErrNotFound
	}
	return l, nil
}

func (m *ListingRepository) FindApproved(ctx context.Context) ([]*listing.Listing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var approved []*listing.Listing
	for _, l := range m.listings {
		if l.IsApproved {
			copied := *l
			approved = append(approved, &copied)
		}
	}
	sort.SliceStable(approved, func(i, j int) bool {
		if approved[i].IsFeatured != approved[j].IsFeatured {
			return approved[i].IsFeatured
		}
		return strings.ToLower(approved[i].Name) < strings.ToLower(approved[j].Name)
	})
	return approved, nil
}

func (m *ListingRepository) CountBySlug(ctx context.Context, slug string) (int64, error) {
	if m.CountBySlugFunc != nil {
		return m.CountBySlugFunc(ctx, slug)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.listings[slug]; ok {
		return 1, nil
	}
	return 0, nil
}

func (m *ListingRepository) Count(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.listings)), nil
}

func (m *ListingRepository) Approve(ctx context.Context, slug string) error {
	if m.ApproveFunc != nil {
		return m.ApproveFunc(ctx, slug)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.listings[slug]
	if !ok {
		return listing.ErrNotFound
	}
	l.IsApproved = true
	return nil
}
