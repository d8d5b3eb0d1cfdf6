package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"spectra-directory/domain/listing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *ListingRepository {
	t.Helper()

	cfg := &Config{
		Path:     filepath.Join(t.TempDir(), "test.db"),
		LogLevel: "silent",
	}
	db, err := cfg.Connect()
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return NewListingRepository(db)
}

func newListing(name, slug string) *listing.Listing {
	return listing.NewSubmission(listing.SubmissionParams{
		Name:             name,
		WebsiteURL:       "https://" + slug + ".example",
		ShortDescription: "desc",
	}, slug)
}

func TestCreateAndFindBySlug(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	l := newListing("Acme AI", "acme-ai")
	require.NoError(t, repo.Create(ctx, l))

	found, err := repo.FindBySlug(ctx, "acme-ai")
	require.NoError(t, err)
	assert.Equal(t, l.ID, found.ID)
	assert.Equal(t, "Acme AI", found.Name)
	assert.False(t, found.IsApproved)

	_, err = repo.FindBySlug(ctx, "missing")
	assert.ErrorIs(t, err, listing.ErrNotFound)
}

func TestCreateDuplicateSlug(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newListing("Acme AI", "acme-ai")))

	err := repo.Create(ctx, newListing("Acme AI Again", "acme-ai"))
	assert.ErrorIs(t, err, listing.ErrSlugTaken)
}

func TestCountBySlug(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	count, err := repo.CountBySlug(ctx, "acme-ai")
	require.NoError(t, err)
	assert.Zero(t, count)

	require.NoError(t, repo.Create(ctx, newListing("Acme AI", "acme-ai")))

	count, err = repo.CountBySlug(ctx, "acme-ai")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestApprove(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newListing("Acme AI", "acme-ai")))

	require.NoError(t, repo.Approve(ctx, "acme-ai"))
	found, err := repo.FindBySlug(ctx, "acme-ai")
	require.NoError(t, err)
	assert.True(t, found.IsApproved)

	// Approving again is a no-op, not an error.
	require.NoError(t, repo.Approve(ctx, "acme-ai"))

	assert.ErrorIs(t, repo.Approve(ctx, "missing"), listing.ErrNotFound)
}

func TestFindApprovedFiltersAndOrders(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	draft := newListing("Draft Tool", "draft-tool")
	require.NoError(t, repo.Create(ctx, draft))

	banana := newListing("Banana", "banana")
	banana.IsApproved = true
	require.NoError(t, repo.Create(ctx, banana))

	apple := newListing("apple", "apple")
	apple.IsApproved = true
	require.NoError(t, repo.Create(ctx, apple))

	featured := newListing("zeppelin", "zeppelin")
	featured.IsApproved = true
	featured.IsFeatured = true
	require.NoError(t, repo.Create(ctx, featured))

	approved, err := repo.FindApproved(ctx)
	require.NoError(t, err)

	require.Len(t, approved, 3, "drafts must never appear in public views")
	assert.Equal(t, "zeppelin", approved[0].Slug, "featured listings come first")
	assert.Equal(t, "apple", approved[1].Slug, "name ordering is case-insensitive")
	assert.Equal(t, "banana", approved[2].Slug)
}

func TestFindApprovedBySlugExcludesDrafts(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newListing("Acme AI", "acme-ai")))

	_, err := repo.FindApprovedBySlug(ctx, "acme-ai")
	assert.ErrorIs(t, err, listing.ErrNotFound)

	require.NoError(t, repo.Approve(ctx, "acme-ai"))

	found, err := repo.FindApprovedBySlug(ctx, "acme-ai")
	require.NoError(t, err)
	assert.True(t, found.IsApproved)
}

func TestUnitOfWorkCommitAndRollback(t *testing.T) {
	repo := newTestRepo(t)
	uow := NewUnitOfWork(repo.db)
	ctx := context.Background()

	err := uow.Execute(ctx, func(ctx context.Context) error {
		return repo.Create(ctx, newListing("Committed", "committed"))
	})
	require.NoError(t, err)

	_, err = repo.FindBySlug(ctx, "committed")
	assert.NoError(t, err)

	rollbackErr := assert.AnError
	err = uow.Execute(ctx, func(ctx context.Context) error {
		if err := repo.Create(ctx, newListing("Rolled Back", "rolled-back")); err != nil {
			return err
		}
		return rollbackErr
	})
	assert.ErrorIs(t, err, rollbackErr)

	_, err = repo.FindBySlug(ctx, "rolled-back")
	assert.ErrorIs(t, err, listing.ErrNotFound)
}
